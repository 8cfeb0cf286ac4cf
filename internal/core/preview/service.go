// internal/core/preview/service.go
package preview

import (
	"fmt"
	"io"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/importer"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
)

// Service define a interface do serviço de preview de planilhas de vendas.
// O preview é somente leitura: decodifica e classifica sem tocar no backend.
type Service interface {
	PreviewLancamentos(file io.Reader, filename string, layout planilha.Layout, latin1 bool) (*Result, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de preview.
func NewService() Service {
	return &service{}
}

// EntryPreview é um lançamento candidato com a classificação que ele
// receberia no import real.
type EntryPreview struct {
	Date            string  `json:"date"`
	Value           float64 `json:"value"`
	Modality        string  `json:"modality"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
	IsCreditPayment bool    `json:"is_credit_payment,omitempty"`
}

// Status possíveis de um lançamento no preview.
const (
	StatusImportaria        = "importaria"
	StatusIgnoradoCrediario = "ignorado_crediario"
)

// Summary agrega os totais do preview.
type Summary struct {
	Datas               int     `json:"datas"`
	Total               int     `json:"total"`
	Importaria          int     `json:"importaria"`
	IgnoradosCrediario  int     `json:"ignorados_crediario"`
	ValorTotal          float64 `json:"valor_total"`
	ValorTotalFormatado string  `json:"valor_total_formatado"`
}

// Result é a resposta completa do preview.
type Result struct {
	PrimeiraData string         `json:"primeira_data,omitempty"`
	UltimaData   string         `json:"ultima_data,omitempty"`
	Entries      []EntryPreview `json:"entries"`
	Summary      Summary        `json:"summary"`
}

func (svc *service) PreviewLancamentos(file io.Reader, filename string, layout planilha.Layout, latin1 bool) (*Result, error) {
	rows, err := planilha.LoadRows(file, filename, latin1)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo de lançamentos: %w", err)
	}

	if layout.HeaderRow >= len(rows) {
		return nil, fmt.Errorf("arquivo não tem a linha de cabeçalho esperada (linha %d)", layout.HeaderRow)
	}
	dateCols := planilha.HeaderDates(rows[layout.HeaderRow])
	if len(dateCols) == 0 {
		return nil, fmt.Errorf("nenhuma data encontrada no cabeçalho; confira a variante do arquivo")
	}

	decoded := planilha.DecodeVendas(rows, layout)

	result := &Result{
		PrimeiraData: dateCols[0].Date.Format("2006-01-02"),
		UltimaData:   dateCols[len(dateCols)-1].Date.Format("2006-01-02"),
		Entries:      make([]EntryPreview, 0, len(decoded)),
	}
	result.Summary.Datas = len(dateCols)

	for _, row := range decoded {
		entry := EntryPreview{
			Date:     row.Date.Format("2006-01-02"),
			Value:    row.Value,
			Modality: row.Modality,
		}

		switch importer.Classify(row.Modality, importer.ModalityInfo{}) {
		case importer.ClassCrediarioIgnorado:
			entry.Status = StatusIgnoradoCrediario
			result.Summary.IgnoradosCrediario++
		case importer.ClassRecebimentoCrediario:
			entry.Status = StatusImportaria
			entry.Description = "Venda - " + row.Modality
			entry.IsCreditPayment = true
			result.Summary.Importaria++
			result.Summary.ValorTotal += row.Value
		default:
			entry.Status = StatusImportaria
			entry.Description = "Venda - " + row.Modality
			result.Summary.Importaria++
			result.Summary.ValorTotal += row.Value
		}

		result.Summary.Total++
		result.Entries = append(result.Entries, entry)
	}

	result.Summary.ValorTotalFormatado = "R$ " + planilha.FormatBRL(result.Summary.ValorTotal)
	return result, nil
}
