// internal/core/planilha/encoding_test.go
package planilha

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixMojibake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CrediÃ¡rio", "Crediário"},
		{"DÃ©bito Sicredi", "Débito Sicredi"},
		{"CrÃ©dito Av Sicoob", "Crédito Av Sicoob"},
		{"Recebimento CrediÃ¡rio", "Recebimento Crediário"},
		{"InformaÃ§Ã£o", "Informação"},
		{"Dinheiro", "Dinheiro"}, // texto limpo passa intacto
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FixMojibake(tt.in))
	}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "DEBITO SICREDI", NormalizeKey("Débito Sicredi"))
	assert.Equal(t, "CREDIARIO", NormalizeKey("Crediário"))
	assert.Equal(t, "PIX SICOOB", NormalizeKey("  pix - sicoob  "))
	assert.Equal(t, "", NormalizeKey("---"))
}

func TestLatin1Reader(t *testing.T) {
	// "Débito" em ISO-8859-1: é = 0xE9
	raw := []byte{'D', 0xE9, 'b', 'i', 't', 'o'}
	decoded, err := io.ReadAll(Latin1Reader(strings.NewReader(string(raw))))
	require.NoError(t, err)
	assert.Equal(t, "Débito", string(decoded))
}
