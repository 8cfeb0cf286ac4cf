// internal/domain/models.go
package domain

// FinancialEntry representa um lançamento de receita no backend.
type FinancialEntry struct {
	ID           string  `json:"id,omitempty"`
	Value        float64 `json:"value"`
	Date         string  `json:"date"`
	ModalityID   string  `json:"modality_id"`
	ModalityName string  `json:"modality_name,omitempty"`
	Description  string  `json:"description,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// CreateEntryRequest é o payload de POST /api/financial-entries.
type CreateEntryRequest struct {
	Value           float64 `json:"value"`
	Date            string  `json:"date"`
	ModalityID      string  `json:"modality_id"`
	Description     string  `json:"description,omitempty"`
	IsCreditPayment bool    `json:"is_credit_payment,omitempty"`
}

// UpdateEntryRequest é o payload de PUT /api/financial-entries/{id}.
type UpdateEntryRequest struct {
	Value      float64 `json:"value"`
	Date       string  `json:"date"`
	ModalityID string  `json:"modality_id"`
}

// PaymentModality representa uma modalidade de pagamento cadastrada no backend.
type PaymentModality struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name"`
	Color               string  `json:"color"`
	BankName            string  `json:"bank_name,omitempty"`
	FeePercentage       float64 `json:"fee_percentage,omitempty"`
	RentalFee           float64 `json:"rental_fee,omitempty"`
	IsActive            bool    `json:"is_active"`
	IsCreditPlan        bool    `json:"is_credit_plan"`
	AllowsAnticipation  bool    `json:"allows_anticipation"`
	AllowsCreditPayment bool    `json:"allows_credit_payment"`
}

// CreateModalityRequest é o payload de POST /api/payment-modalities.
type CreateModalityRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Tipos possíveis de uma conta genérica.
const (
	AccountTypeBoleto     = "boleto"
	AccountTypePayment    = "payment"
	AccountTypeInvestment = "investment"
)

// Account representa uma conta (boleto, pagamento ou investimento).
type Account struct {
	ID          string  `json:"id,omitempty"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Paid        bool    `json:"paid"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// CreateAccountRequest é o payload de POST /api/accounts. Paid é omitido
// quando nulo porque boletos são criados sem o campo.
type CreateAccountRequest struct {
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Paid        *bool   `json:"paid,omitempty"`
}

// UpdateAccountRequest é o payload parcial de PATCH /api/accounts/{id}.
type UpdateAccountRequest struct {
	Value       *float64 `json:"value,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Paid        *bool    `json:"paid,omitempty"`
}

// Status possíveis de uma parcela de crediário.
const (
	InstallmentPendente  = "pendente"
	InstallmentPago      = "pago"
	InstallmentAtrasado  = "atrasado"
	InstallmentCancelado = "cancelado"
)

// CreditInstallment representa uma parcela de uma compra no crediário.
type CreditInstallment struct {
	ID             string  `json:"id"`
	NumeroParcela  int     `json:"numero_parcela"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"data_vencimento"`
	Status         string  `json:"status"`
	EntryID        string  `json:"financial_entry_id,omitempty"`
}

// CreditPurchase representa o cabeçalho de uma compra no crediário com as
// parcelas geradas pelo backend.
type CreditPurchase struct {
	ID                  string              `json:"id,omitempty"`
	PaganteNome         string              `json:"pagante_nome"`
	PaganteDocumento    string              `json:"pagante_documento,omitempty"`
	PaganteTelefone     string              `json:"pagante_telefone,omitempty"`
	DescricaoCompra     string              `json:"descricao_compra"`
	ValorTotal          float64             `json:"valor_total"`
	ValorEntrada        float64             `json:"valor_entrada,omitempty"`
	NumeroParcelas      int                 `json:"numero_parcelas"`
	DataInicioPagamento string              `json:"data_inicio_pagamento"`
	IntervaloDias       int                 `json:"intervalo_dias,omitempty"`
	TaxaJurosMensal     float64             `json:"taxa_juros_mensal,omitempty"`
	Installments        []CreditInstallment `json:"installments,omitempty"`
}

// CreditPurchaseResponse é o envelope retornado pelo backend ao criar ou
// consultar uma compra no crediário.
type CreditPurchaseResponse struct {
	CreditPurchase CreditPurchase      `json:"credit_purchase"`
	Installments   []CreditInstallment `json:"installments,omitempty"`
}
