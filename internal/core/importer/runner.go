// internal/core/importer/runner.go
package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Counters acumula o resultado de uma execução de import/delete.
type Counters struct {
	Processados int
	Sucesso     int
	Erros       int
	Ignorados   int
	Pulados     int
	ValorTotal  float64
}

// Runner é a abstração de "mutação guardada" compartilhada pelos scripts:
// recebe a descrição da ação planejada e um executor. Em dry run apenas
// registra a descrição; em execução real invoca o executor e contabiliza o
// resultado. Uma falha individual não interrompe a execução — não há retry
// nem rollback.
type Runner struct {
	DryRun   bool
	Progress int // emite uma linha de progresso a cada N ações (0 desativa)
	Out      io.Writer

	Counters Counters
}

// NewRunner cria um runner escrevendo em out.
func NewRunner(dryRun bool, progress int, out io.Writer) *Runner {
	return &Runner{DryRun: dryRun, Progress: progress, Out: out}
}

// Do processa uma mutação guardada.
func (r *Runner) Do(desc string, exec func() error) {
	r.Counters.Processados++

	if r.DryRun {
		fmt.Fprintf(r.Out, "  🔵 DRY RUN: %s\n", desc)
		r.Counters.Sucesso++
		return
	}

	if err := exec(); err != nil {
		r.Counters.Erros++
		fmt.Fprintf(r.Out, "  ❌ ERRO: %s\n     %s\n", desc, truncate(err.Error(), 500))
	} else {
		r.Counters.Sucesso++
		fmt.Fprintf(r.Out, "  ✅ SUCESSO: %s\n", desc)
	}

	done := r.Counters.Sucesso + r.Counters.Erros
	if r.Progress > 0 && done%r.Progress == 0 {
		fmt.Fprintf(r.Out, "  ⏳ Progresso: %d processados...\n", done)
	}
}

// Ignore registra uma linha excluída por regra de negócio (não é erro).
func (r *Runner) Ignore(desc string) {
	r.Counters.Processados++
	r.Counters.Ignorados++
	fmt.Fprintf(r.Out, "  ⏭️  IGNORADO (Crediário): %s\n", desc)
}

// Skip registra uma linha pulada por modalidade não resolvida.
func (r *Runner) Skip(desc string) {
	r.Counters.Processados++
	r.Counters.Pulados++
	fmt.Fprintf(r.Out, "  ⚠️  MODALIDADE NÃO ENCONTRADA: %s\n", desc)
}

// ConfirmSim pede a confirmação "sim" antes de uma execução real. Qualquer
// outra resposta cancela.
func ConfirmSim(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "⚠️  ATENÇÃO: Você está prestes a executar o import REAL. Confirma? (sim/não): ")
	answer, ok := readLine(in)
	return ok && strings.EqualFold(answer, "sim")
}

// ConfirmToken exige que o operador digite o token exato (ex.: "DELETAR")
// antes de uma ação destrutiva. Erro de digitação cancela sem efeito.
func ConfirmToken(in io.Reader, out io.Writer, token string) bool {
	fmt.Fprintf(out, "Digite '%s' para confirmar: ", token)
	answer, ok := readLine(in)
	return ok && answer == token
}

func readLine(in io.Reader) (string, bool) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// Banner imprime a linha separadora dos relatórios.
func Banner(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
