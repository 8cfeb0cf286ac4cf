// internal/ledger/modalities.go
package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

const modalitiesEndpoint = "/api/payment-modalities"

// CreateModality cadastra uma modalidade de pagamento.
func (c *Client) CreateModality(ctx context.Context, req domain.CreateModalityRequest) (domain.PaymentModality, error) {
	var modality domain.PaymentModality
	err := c.do(ctx, http.MethodPost, modalitiesEndpoint, nil, req, &modality)
	return modality, err
}

// ListModalities lista as modalidades; onlyActive filtra as inativas.
func (c *Client) ListModalities(ctx context.Context, onlyActive bool) ([]domain.PaymentModality, error) {
	query := url.Values{}
	if onlyActive {
		query.Set("only_active", "true")
	} else {
		query.Set("only_active", "false")
	}

	var modalities []domain.PaymentModality
	err := c.do(ctx, http.MethodGet, modalitiesEndpoint, query, nil, &modalities)
	return modalities, err
}

// ToggleModality alterna o estado ativo/inativo. Modalidades em uso normal
// são desativadas, não deletadas.
func (c *Client) ToggleModality(ctx context.Context, id string) (domain.PaymentModality, error) {
	var modality domain.PaymentModality
	err := c.do(ctx, http.MethodPatch, modalitiesEndpoint+"/"+id+"/toggle", nil, struct{}{}, &modality)
	return modality, err
}

// DeleteModality remove uma modalidade.
func (c *Client) DeleteModality(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, modalitiesEndpoint+"/"+id, nil, nil, nil)
}
