// internal/core/importer/runner_test.go
package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerDryRunNaoExecuta(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(true, 0, &out)

	chamadas := 0
	r.Do("lançamento A", func() error { chamadas++; return nil })
	r.Do("lançamento B", func() error { chamadas++; return errors.New("nunca chega aqui") })

	assert.Zero(t, chamadas)
	assert.Equal(t, 2, r.Counters.Processados)
	assert.Equal(t, 2, r.Counters.Sucesso)
	assert.Zero(t, r.Counters.Erros)
	assert.Contains(t, out.String(), "DRY RUN: lançamento A")
}

func TestRunnerExecucaoReal(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, 0, &out)

	r.Do("ok", func() error { return nil })
	r.Do("falha", func() error { return errors.New("status 422 - payload inválido") })

	assert.Equal(t, 1, r.Counters.Sucesso)
	assert.Equal(t, 1, r.Counters.Erros)
	assert.Contains(t, out.String(), "✅ SUCESSO: ok")
	assert.Contains(t, out.String(), "❌ ERRO: falha")
	assert.Contains(t, out.String(), "status 422")
}

func TestRunnerProgresso(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, 2, &out)

	for i := 0; i < 5; i++ {
		r.Do("x", func() error { return nil })
	}

	assert.Equal(t, 2, strings.Count(out.String(), "⏳ Progresso:"))
}

func TestRunnerIgnoreESkip(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(true, 0, &out)

	r.Ignore("venda crediário")
	r.Skip("Modalidade Estranha")

	assert.Equal(t, 2, r.Counters.Processados)
	assert.Equal(t, 1, r.Counters.Ignorados)
	assert.Equal(t, 1, r.Counters.Pulados)
	assert.Zero(t, r.Counters.Sucesso)
	assert.Contains(t, out.String(), "IGNORADO (Crediário): venda crediário")
	assert.Contains(t, out.String(), "MODALIDADE NÃO ENCONTRADA: Modalidade Estranha")
}

func TestConfirmSim(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, ConfirmSim(strings.NewReader("sim\n"), &out))
	assert.True(t, ConfirmSim(strings.NewReader("SIM\n"), &out))
	assert.False(t, ConfirmSim(strings.NewReader("não\n"), &out))
	assert.False(t, ConfirmSim(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Confirma? (sim/não)")
}

func TestConfirmToken(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, ConfirmToken(strings.NewReader("DELETAR\n"), &out, "DELETAR"))
	// o token é sensível a caixa: erro de digitação cancela
	assert.False(t, ConfirmToken(strings.NewReader("deletar\n"), &out, "DELETAR"))
	assert.False(t, ConfirmToken(strings.NewReader("DELETAR!\n"), &out, "DELETAR"))
	assert.False(t, ConfirmToken(strings.NewReader(""), &out, "DELETAR"))
}
