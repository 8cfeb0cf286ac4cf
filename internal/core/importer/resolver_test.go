// internal/core/importer/resolver_test.go
package importer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
)

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver(map[string]ModalityInfo{
		"Pix Sicredi":           {ID: "id-pix"},
		"Recebimento Crediario": {ID: "id-rec", IsCreditPayment: true},
	})

	info, ok := r.Resolve("Pix Sicredi")
	require.True(t, ok)
	assert.Equal(t, "id-pix", info.ID)
	assert.False(t, info.IsCreditPayment)

	info, ok = r.Resolve("Recebimento Crediario")
	require.True(t, ok)
	assert.True(t, info.IsCreditPayment)

	// a resolução é por igualdade exata, sem case folding nem fuzzy
	_, ok = r.Resolve("pix sicredi")
	assert.False(t, ok)
	_, ok = r.Resolve("Pix Sicred")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
}

func TestResolverSuggest(t *testing.T) {
	r := NewStaticResolver(map[string]ModalityInfo{
		"Pix Sicredi":    {ID: "a"},
		"Débito Sicredi": {ID: "b"},
		"Dinheiro":       {ID: "c"},
	})

	// variação de caixa/acento aproxima do nome cadastrado
	assert.Equal(t, "Pix Sicredi", r.Suggest("pix sicredi"))
	assert.Equal(t, "Débito Sicredi", r.Suggest("Debito Sicredi"))

	vazio := NewStaticResolver(nil)
	assert.Equal(t, "", vazio.Suggest("qualquer"))
}

type stubCreator struct {
	created []string
	failOn  string
}

func (s *stubCreator) CreateModality(_ context.Context, req domain.CreateModalityRequest) (domain.PaymentModality, error) {
	if req.Name == s.failOn {
		return domain.PaymentModality{}, errors.New("boom")
	}
	s.created = append(s.created, req.Name)
	return domain.PaymentModality{ID: "id-" + req.Name, Name: req.Name, Color: req.Color}, nil
}

func TestLiveResolver(t *testing.T) {
	creator := &stubCreator{failOn: "Dinheiro"}
	mods := []CanonicalModality{
		{Name: "Pix Sicredi", Color: "#00C853"},
		{Name: "Dinheiro", Color: "#4CAF50"},
		{Name: "Recebimento Crediario", Color: "#BA68C8"},
	}

	var out bytes.Buffer
	r := NewLiveResolver(context.Background(), creator, mods, &out)

	// falha individual não interrompe as demais
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"Pix Sicredi", "Recebimento Crediario"}, creator.created)

	info, ok := r.Resolve("Pix Sicredi")
	require.True(t, ok)
	assert.Equal(t, "id-Pix Sicredi", info.ID)

	info, ok = r.Resolve("Recebimento Crediario")
	require.True(t, ok)
	assert.True(t, info.IsCreditPayment)

	_, ok = r.Resolve("Dinheiro")
	assert.False(t, ok)

	assert.Contains(t, out.String(), "Total: 2/3 modalidades criadas")
}

func TestCanonicalModalities(t *testing.T) {
	require.Len(t, CanonicalModalities, 14)
	nomes := map[string]bool{}
	for _, m := range CanonicalModalities {
		assert.NotEmpty(t, m.Name)
		assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, m.Color)
		assert.False(t, nomes[m.Name], "nome duplicado: %s", m.Name)
		nomes[m.Name] = true
	}
	assert.True(t, nomes["Recebimento Crediario"])
}
