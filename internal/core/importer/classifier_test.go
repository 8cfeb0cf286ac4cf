// internal/core/importer/classifier_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		modality string
		info     ModalityInfo
		want     Class
	}{
		{"venda comum", "Pix Sicredi", ModalityInfo{}, ClassVenda},
		{"crediário é ignorado", "Crediário", ModalityInfo{}, ClassCrediarioIgnorado},
		{"crediário com encoding quebrado", "CrediÃ¡rio", ModalityInfo{}, ClassCrediarioIgnorado},
		{"recebimento de crediário pelo nome", "Recebimento Crediario", ModalityInfo{}, ClassRecebimentoCrediario},
		{"recebimento pela flag da modalidade", "Qualquer Nome", ModalityInfo{IsCreditPayment: true}, ClassRecebimentoCrediario},
		{"recebimento com acento não é ignorado", "Recebimento Crediário", ModalityInfo{IsCreditPayment: true}, ClassRecebimentoCrediario},
		{"dinheiro", "Dinheiro", ModalityInfo{}, ClassVenda},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.modality, tt.info))
		})
	}
}

func TestMentionsCrediario(t *testing.T) {
	assert.True(t, MentionsCrediario("Crediário"))
	assert.True(t, MentionsCrediario("Recebimento Crediario"))
	assert.True(t, MentionsCrediario("CrediÃ¡rio"))
	assert.False(t, MentionsCrediario("Pix Sicredi"))
}
