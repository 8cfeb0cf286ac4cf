// internal/core/planilha/parser_test.go
package planilha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"valor com prefixo e milhar", "R$ 1.234,56", 1234.56, true},
		{"valor simples", "150,00", 150.00, true},
		{"zero é válido", "R$ 0,00", 0, true},
		{"sem prefixo", "1.234,56", 1234.56, true},
		{"espaços ao redor", "  R$ 45,90  ", 45.90, true},
		{"vazio", "", 0, false},
		{"só espaços", "   ", 0, false},
		{"texto", "Modalidade", 0, false},
		{"prefixo sem valor", "R$", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCurrency(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("25/11/2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 25, 0, 0, 0, 0, time.UTC), d)

	for _, input := range []string{"", "32/13/2025", "2025-11-25", "25/11/25", "abc"} {
		_, ok := ParseDate(input)
		assert.False(t, ok, "input %q deveria ser inválido", input)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{150, "150,00"},
		{1234.56, "1.234,56"},
		{1234567.89, "1.234.567,89"},
		{-1234.5, "-1.234,50"},
		{0.5, "0,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.in), "valor %v", tt.in)
	}
}
