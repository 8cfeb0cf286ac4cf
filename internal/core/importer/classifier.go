// internal/core/importer/classifier.go
package importer

import "strings"

// Class é a classificação de uma linha decodificada antes do envio.
type Class int

const (
	// ClassVenda: receita comum, descrição "Venda - {modalidade}".
	ClassVenda Class = iota
	// ClassRecebimentoCrediario: enviada com is_credit_payment=true.
	ClassRecebimentoCrediario
	// ClassCrediarioIgnorado: venda no crediário, nunca enviada — é
	// receita diferida, já contabilizada nas parcelas.
	ClassCrediarioIgnorado
)

// Classify aplica as regras de negócio a uma linha já decodificada e
// resolvida. As variantes de encoding quebrado entram na checagem porque a
// planilha nem sempre chega totalmente reparada.
func Classify(modality string, info ModalityInfo) Class {
	if containsCrediarioVenda(modality) && !strings.Contains(modality, "Recebimento") {
		return ClassCrediarioIgnorado
	}
	if modality == "Recebimento Crediario" || info.IsCreditPayment {
		return ClassRecebimentoCrediario
	}
	return ClassVenda
}

func containsCrediarioVenda(s string) bool {
	return strings.Contains(s, "Crediário") || strings.Contains(s, "CrediÃ¡rio")
}

// MentionsCrediario cobre qualquer menção a crediário, com ou sem acento.
// Usada pelos scripts de verificação, que agrupam também os recebimentos.
func MentionsCrediario(s string) bool {
	return strings.Contains(s, "Crediário") || strings.Contains(s, "Crediario") ||
		strings.Contains(s, "CrediÃ¡rio")
}
