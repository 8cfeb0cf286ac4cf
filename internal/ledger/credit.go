// internal/ledger/credit.go
package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

const creditEndpoint = "/api/credit-purchases"

// CreateCreditPurchase cria uma compra no crediário; o backend gera as
// parcelas a partir do número de parcelas e do intervalo.
func (c *Client) CreateCreditPurchase(ctx context.Context, req domain.CreditPurchase) (domain.CreditPurchaseResponse, error) {
	var resp domain.CreditPurchaseResponse
	err := c.do(ctx, http.MethodPost, creditEndpoint, nil, req, &resp)
	return resp, err
}

// GetCreditPurchase busca uma compra com as parcelas.
func (c *Client) GetCreditPurchase(ctx context.Context, id string) (domain.CreditPurchaseResponse, error) {
	var resp domain.CreditPurchaseResponse
	err := c.do(ctx, http.MethodGet, creditEndpoint+"/"+id, nil, nil, &resp)
	return resp, err
}

// CancelCreditPurchase cancela a compra; o backend propaga o cancelamento
// para as parcelas ainda pendentes.
func (c *Client) CancelCreditPurchase(ctx context.Context, id string) (domain.CreditPurchaseResponse, error) {
	var resp domain.CreditPurchaseResponse
	err := c.do(ctx, http.MethodPatch, creditEndpoint+"/"+id+"/cancel", nil, struct{}{}, &resp)
	return resp, err
}

// PayInstallment quita uma parcela; o backend cria o lançamento vinculado.
func (c *Client) PayInstallment(ctx context.Context, purchaseID, installmentID string, modalityID string) (domain.CreditInstallment, error) {
	payload := map[string]string{}
	if modalityID != "" {
		payload["modality_id"] = modalityID
	}

	path := fmt.Sprintf("%s/%s/installments/%s/pay", creditEndpoint, purchaseID, installmentID)
	var installment domain.CreditInstallment
	err := c.do(ctx, http.MethodPost, path, nil, payload, &installment)
	return installment, err
}

// UnpayInstallment desfaz a quitação de uma parcela.
func (c *Client) UnpayInstallment(ctx context.Context, purchaseID, installmentID string) (domain.CreditInstallment, error) {
	path := fmt.Sprintf("%s/%s/installments/%s/unpay", creditEndpoint, purchaseID, installmentID)
	var installment domain.CreditInstallment
	err := c.do(ctx, http.MethodPost, path, nil, struct{}{}, &installment)
	return installment, err
}
