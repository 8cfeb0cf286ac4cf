// internal/core/planilha/decoder.go
package planilha

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

// Row é um lançamento decodificado da planilha de vendas: um valor atribuído
// a uma data e uma modalidade. Existe apenas durante a execução do import.
type Row struct {
	Date     time.Time
	Value    float64
	Modality string
}

// Layout descreve a posição dos dados em cada variante da planilha de
// vendas. As duas variantes conhecidas diferem na linha do cabeçalho (0 ou
// 1), no número de linhas iniciais ignoradas (2 ou 3) e na exigência do
// prefixo "R$". A escolha é configuração explícita por arquivo — nunca
// auto-detectada.
type Layout struct {
	HeaderRow     int
	SkipRows      int
	RequirePrefix bool
}

// Variantes observadas nos arquivos exportados.
var (
	// LayoutVendasSimples: cabeçalho na linha 0, dados a partir da linha 2.
	LayoutVendasSimples = Layout{HeaderRow: 0, SkipRows: 2}
	// LayoutVendasComTotal: linha 0 traz o total do mês, cabeçalho na
	// linha 1, dados a partir da linha 3, valores sempre com "R$".
	LayoutVendasComTotal = Layout{HeaderRow: 1, SkipRows: 3, RequirePrefix: true}
)

// DateColumn associa o índice de uma coluna de valores à data do cabeçalho.
type DateColumn struct {
	Col  int
	Date time.Time
}

// HeaderDates varre as células do cabeçalho de 2 em 2 e devolve, em ordem,
// as colunas cujo conteúdo é uma data válida com exatamente duas barras.
func HeaderDates(header []string) []DateColumn {
	var cols []DateColumn
	for i := 0; i < len(header); i += 2 {
		cell := cleanCell(header[i])
		if strings.Count(cell, "/") != 2 {
			continue
		}
		if d, ok := ParseDate(cell); ok {
			cols = append(cols, DateColumn{Col: i, Date: d})
		}
	}
	return cols
}

// DecodeVendas reconstrói a lista plana de lançamentos (data, valor,
// modalidade) a partir das linhas cruas da planilha larga. Células com mais
// de uma modalidade (separadas por vírgula) dividem o valor em partes
// iguais. Linhas sem valor, sem modalidade ou com valor não positivo são
// descartadas silenciosamente.
func DecodeVendas(rows [][]string, layout Layout) []Row {
	if layout.HeaderRow >= len(rows) {
		return nil
	}
	dateCols := HeaderDates(rows[layout.HeaderRow])
	if len(dateCols) == 0 || layout.SkipRows >= len(rows) {
		return nil
	}

	var out []Row
	for _, line := range rows[layout.SkipRows:] {
		for _, dc := range dateCols {
			if dc.Col >= len(line) || dc.Col+1 >= len(line) {
				continue
			}
			rawValue := cleanCell(line[dc.Col])
			modality := FixMojibake(cleanCell(line[dc.Col+1]))

			if rawValue == "" || modality == "" || modality == "Modalidade" {
				continue
			}
			if layout.RequirePrefix && !strings.HasPrefix(rawValue, "R$") {
				continue
			}

			value, ok := ParseCurrency(rawValue)
			if !ok || value <= 0 {
				continue
			}

			subs := splitModalities(modality)
			share := value / float64(len(subs))
			for _, sub := range subs {
				out = append(out, Row{Date: dc.Date, Value: share, Modality: sub})
			}
		}
	}
	return out
}

func splitModalities(s string) []string {
	if !strings.Contains(s, ",") {
		return []string{s}
	}
	var subs []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			subs = append(subs, part)
		}
	}
	if len(subs) == 0 {
		return []string{strings.TrimSpace(s)}
	}
	return subs
}

// MonthColumn aponta o início do grupo de colunas de um mês na variante de
// contas (boletos e despesas).
type MonthColumn struct {
	Col   int
	Year  int
	Month time.Month
}

// BoletoRow é uma linha decodificada da planilha de boletos (dia e valor).
type BoletoRow struct {
	Date  time.Time
	Value float64
}

// DecodeBoletos lê grupos de 2 colunas (dia, valor) por mês. Dias fora de
// 1..31 e valores não positivos são descartados.
func DecodeBoletos(rows [][]string, skip int, months []MonthColumn) []BoletoRow {
	if skip >= len(rows) {
		return nil
	}
	var out []BoletoRow
	for _, line := range rows[skip:] {
		for _, m := range months {
			if m.Col+1 >= len(line) {
				continue
			}
			dayStr := strings.TrimSpace(line[m.Col])
			rawValue := strings.TrimSpace(line[m.Col+1])
			if dayStr == "" || rawValue == "" {
				continue
			}
			day, err := strconv.Atoi(dayStr)
			if err != nil || day < 1 || day > 31 {
				continue
			}
			value, ok := ParseCurrency(rawValue)
			if !ok || value <= 0 {
				continue
			}
			out = append(out, BoletoRow{
				Date:  time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC),
				Value: value,
			})
		}
	}
	return out
}

// DespesaRow é uma linha decodificada da planilha de despesas.
type DespesaRow struct {
	Date        time.Time
	Value       float64
	Description string
	Paid        bool
}

// DecodeDespesas lê grupos de 4 colunas (dia, descrição, valor, status) por
// mês. Uma linha só conta quando os quatro campos estão preenchidos; o
// status "Pago" (sem distinção de caixa) marca a despesa como paga.
func DecodeDespesas(rows [][]string, skip int, months []MonthColumn) []DespesaRow {
	if skip >= len(rows) {
		return nil
	}
	var out []DespesaRow
	for _, line := range rows[skip:] {
		for _, m := range months {
			if m.Col+3 >= len(line) {
				continue
			}
			dayStr := strings.TrimSpace(line[m.Col])
			desc := strings.TrimSpace(line[m.Col+1])
			rawValue := strings.TrimSpace(line[m.Col+2])
			status := strings.TrimSpace(line[m.Col+3])
			if dayStr == "" || desc == "" || rawValue == "" || status == "" {
				continue
			}
			day, err := strconv.Atoi(dayStr)
			if err != nil || day < 1 || day > 31 {
				continue
			}
			value, ok := ParseCurrency(rawValue)
			if !ok || value <= 0 {
				continue
			}
			out = append(out, DespesaRow{
				Date:        time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC),
				Value:       value,
				Description: FixMojibake(desc),
				Paid:        strings.EqualFold(status, "pago"),
			})
		}
	}
	return out
}

// ReadCSV lê todas as linhas de um CSV separado por vírgula, tolerando
// aspas soltas e linhas com número variável de campos.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
