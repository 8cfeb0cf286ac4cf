// internal/ledger/accounts.go
package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

const accountsEndpoint = "/api/accounts"

// CreateAccount cria uma conta genérica (boleto, pagamento ou investimento).
func (c *Client) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPost, accountsEndpoint, nil, req, &account)
	return account, err
}

// ListAccounts busca as contas de um período.
func (c *Client) ListAccounts(ctx context.Context, startDate, endDate string) ([]domain.Account, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	var accounts []domain.Account
	err := c.do(ctx, http.MethodGet, accountsEndpoint, query, nil, &accounts)
	return accounts, err
}

// UpdateAccount aplica uma atualização parcial; o caso típico é marcar uma
// conta como paga sem tocar nos demais campos.
func (c *Client) UpdateAccount(ctx context.Context, id string, req domain.UpdateAccountRequest) (domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPatch, accountsEndpoint+"/"+id, nil, req, &account)
	return account, err
}

// DeleteAccount remove uma conta.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, accountsEndpoint+"/"+id, nil, nil, nil)
}
