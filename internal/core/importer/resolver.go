// internal/core/importer/resolver.go
package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/closestmatch"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

// ModalityInfo é o resultado da resolução de uma modalidade: o id no ledger
// e se a modalidade representa recebimento de crediário.
type ModalityInfo struct {
	ID              string
	IsCreditPayment bool
}

// Resolver mapeia o nome de uma modalidade decodificada para o id
// correspondente no ledger. A comparação é igualdade exata de strings após
// o reparo de encoding — sem fuzzy matching e sem case folding. O fuzzy
// entra apenas como dica de diagnóstico quando a resolução falha.
type Resolver struct {
	byName map[string]ModalityInfo
	keyed  map[string]string // chave normalizada -> nome cadastrado
	keys   []string
	cm     *closestmatch.ClosestMatch
}

func newResolver(table map[string]ModalityInfo) *Resolver {
	r := &Resolver{
		byName: table,
		keyed:  make(map[string]string, len(table)),
	}
	for name := range table {
		key := planilha.NormalizeKey(name)
		if key == "" {
			continue
		}
		if _, seen := r.keyed[key]; !seen {
			r.keyed[key] = name
			r.keys = append(r.keys, key)
		}
	}
	return r
}

// NewStaticResolver monta um resolver a partir de uma tabela fixa
// nome → {id, flag de crediário}.
func NewStaticResolver(table map[string]ModalityInfo) *Resolver {
	return newResolver(table)
}

// ModalityCreator cria modalidades no backend. Satisfeito pelo client do
// ledger; um stub em testes.
type ModalityCreator interface {
	CreateModality(ctx context.Context, req domain.CreateModalityRequest) (domain.PaymentModality, error)
}

// NewLiveResolver cria cada modalidade canônica via API e monta o mapa de
// ids com o retorno. Falha em uma modalidade é reportada e não interrompe as
// demais; a modalidade simplesmente não entra no mapa.
func NewLiveResolver(ctx context.Context, creator ModalityCreator, mods []CanonicalModality, out io.Writer) *Resolver {
	table := make(map[string]ModalityInfo, len(mods))
	for idx, mod := range mods {
		created, err := creator.CreateModality(ctx, domain.CreateModalityRequest{
			Name:  mod.Name,
			Color: mod.Color,
		})
		if err != nil {
			fmt.Fprintf(out, "   %2d. ❌ %-30s | Erro: %v\n", idx+1, mod.Name, err)
			continue
		}
		table[mod.Name] = ModalityInfo{
			ID:              created.ID,
			IsCreditPayment: mod.Name == "Recebimento Crediario",
		}
		fmt.Fprintf(out, "   %2d. ✅ %-30s | %s\n", idx+1, mod.Name, mod.Color)
	}
	fmt.Fprintf(out, "\n   Total: %d/%d modalidades criadas\n", len(table), len(mods))
	return newResolver(table)
}

// Resolve busca a modalidade por igualdade exata do nome.
func (r *Resolver) Resolve(name string) (ModalityInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// Suggest devolve o nome cadastrado mais próximo do informado, para compor a
// mensagem de "modalidade não encontrada". Vazio quando não há candidato.
func (r *Resolver) Suggest(name string) string {
	if len(r.keys) == 0 {
		return ""
	}
	key := planilha.NormalizeKey(name)
	if key == "" {
		return ""
	}
	if r.cm == nil {
		r.cm = closestmatch.New(r.keys, []int{2, 3, 4})
	}
	match := r.cm.Closest(key)
	if match == "" {
		return ""
	}
	return r.keyed[match]
}

// Len é o número de modalidades resolvíveis.
func (r *Resolver) Len() int {
	return len(r.byName)
}
