// internal/core/importer/modalities.go
package importer

// CanonicalModality é uma modalidade da lista padrão criada no modo "live",
// com a cor atribuída no cadastro.
type CanonicalModality struct {
	Name  string
	Color string
}

// CanonicalModalities é a lista das 14 modalidades padrão da loja, na ordem
// de criação.
var CanonicalModalities = []CanonicalModality{
	{Name: "Pix Sicredi", Color: "#00C853"},
	{Name: "Pix Sicoob", Color: "#00E676"},
	{Name: "Débito Sicredi", Color: "#2196F3"},
	{Name: "Débito Sicoob", Color: "#03A9F4"},
	{Name: "Crédito Av Sicredi", Color: "#FF9800"},
	{Name: "Crédito Av Sicoob", Color: "#FFB74D"},
	{Name: "Dinheiro", Color: "#4CAF50"},
	{Name: "Crediário", Color: "#9C27B0"},
	{Name: "Recebimento Crediario", Color: "#BA68C8"},
	{Name: "BonusCred", Color: "#E91E63"},
	{Name: "Parcelado 2 a 4 Sicredi", Color: "#FF5722"},
	{Name: "Parcelado 5 a 6 Sicredi", Color: "#F44336"},
	{Name: "Parcelado 2 a 4 Sicoob", Color: "#FF6F00"},
	{Name: "Parcelado 5 a 6 Sicoob", Color: "#FF8F00"},
}
