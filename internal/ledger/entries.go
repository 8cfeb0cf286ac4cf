// internal/ledger/entries.go
package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

const entriesEndpoint = "/api/financial-entries"

// CreateEntry cria um lançamento de receita.
func (c *Client) CreateEntry(ctx context.Context, req domain.CreateEntryRequest) (domain.FinancialEntry, error) {
	var entry domain.FinancialEntry
	err := c.do(ctx, http.MethodPost, entriesEndpoint, nil, req, &entry)
	return entry, err
}

// ListEntries busca os lançamentos de um período. Datas no formato
// YYYY-MM-DD; strings vazias omitem o filtro correspondente.
func (c *Client) ListEntries(ctx context.Context, startDate, endDate string) ([]domain.FinancialEntry, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	var entries []domain.FinancialEntry
	err := c.do(ctx, http.MethodGet, entriesEndpoint, query, nil, &entries)
	return entries, err
}

// GetEntry busca um lançamento pelo id.
func (c *Client) GetEntry(ctx context.Context, id string) (domain.FinancialEntry, error) {
	var entry domain.FinancialEntry
	err := c.do(ctx, http.MethodGet, entriesEndpoint+"/"+id, nil, nil, &entry)
	return entry, err
}

// UpdateEntry substitui valor, data e modalidade de um lançamento.
func (c *Client) UpdateEntry(ctx context.Context, id string, req domain.UpdateEntryRequest) (domain.FinancialEntry, error) {
	var entry domain.FinancialEntry
	err := c.do(ctx, http.MethodPut, entriesEndpoint+"/"+id, nil, req, &entry)
	return entry, err
}

// DeleteEntry remove um lançamento.
func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, entriesEndpoint+"/"+id, nil, nil, nil)
}
