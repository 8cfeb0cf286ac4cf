// internal/core/planilha/parser.go
package planilha

import (
	"strconv"
	"strings"
	"time"
)

// ParseCurrency converte um valor em formato brasileiro ("R$ 1.234,56") para
// float64. Remove o prefixo "R$", descarta o separador de milhar e troca a
// vírgula decimal por ponto. Retorna ok=false para entrada vazia ou não
// numérica; quem chama trata como "sem valor", nunca como erro.
func ParseCurrency(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDate faz o parse estrito de uma data DD/MM/YYYY. Datas são apenas
// datas de calendário, sem fuso horário.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatBRL formata um valor com separadores brasileiros (ponto de milhar,
// vírgula decimal). O número é montado no formato anglo e os separadores são
// trocados via caractere temporário.
func FormatBRL(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + fracPart

	out = strings.ReplaceAll(out, ",", "X")
	out = strings.ReplaceAll(out, ".", ",")
	out = strings.ReplaceAll(out, "X", ".")

	if neg {
		return "-" + out
	}
	return out
}
