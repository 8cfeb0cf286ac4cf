// internal/ledger/admin.go
package ledger

import (
	"context"
	"net/http"
)

const companiesEndpoint = "/api/admin/companies"

// Company é uma empresa (tenant) administrada pelo backend.
type Company struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj,omitempty"`
	Plan string `json:"plan,omitempty"`
}

// CreateCompany cria uma empresa via endpoint administrativo. Requer um
// token de super admin.
func (c *Client) CreateCompany(ctx context.Context, company Company) (Company, error) {
	var created Company
	err := c.do(ctx, http.MethodPost, companiesEndpoint, nil, company, &created)
	return created, err
}

// ListCompanies lista as empresas cadastradas.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := c.do(ctx, http.MethodGet, companiesEndpoint, nil, nil, &companies)
	return companies, err
}
