// internal/core/planilha/encoding.go
package planilha

import (
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tabela de reparos de UTF-8 duplamente codificado observada nas planilhas
// exportadas. A ordem importa: padrões mais longos vêm primeiro para evitar
// que uma substituição parcial corrompa os demais.
var mojibakeTable = []struct{ bad, good string }{
	{"CrediÃ¡rio", "Crediário"},
	{"DÃ©bito", "Débito"},
	{"CrÃ©dito", "Crédito"},
	{"Ã©", "é"},
	{"Ã¡", "á"},
	{"Ã­", "í"},
	{"Ã³", "ó"},
	{"Ãº", "ú"},
	{"Ã£", "ã"},
	{"Ã§", "ç"},
	{"Ã‰", "É"},
	{"Ã´", "ô"},
	{"Ãª", "ê"},
	{"Â°", "°"},
}

// FixMojibake repara sequências de encoding quebrado ("CrediÃ¡rio" →
// "Crediário") aplicando a tabela de substituições literais na ordem fixa.
// É uma heurística de melhor esforço, não um decodificador genérico.
func FixMojibake(s string) string {
	for _, r := range mojibakeTable {
		s = strings.ReplaceAll(s, r.bad, r.good)
	}
	return s
}

var nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeKey reduz um texto a uma chave de comparação: remove acentos,
// converte para maiúsculas e colapsa tudo que não é alfanumérico.
func NormalizeKey(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, str)
	result = strings.ToUpper(result)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Latin1Reader envolve r com um decodificador ISO-8859-1, para exportações
// de CSV que não vêm em UTF-8.
func Latin1Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}
