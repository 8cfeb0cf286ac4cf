// cmd/deletar-lancamentos/main.go
//
// Remove todos os lançamentos de um período. A execução real exige digitar
// "DELETAR" depois de mostrar uma prévia do que será removido. Sem argumento
// roda em dry run e apenas lista.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/config"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/importer"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/ledger"
)

const (
	dataInicio = "2025-11-01"
	dataFim    = "2025-11-30"

	previewLinhas = 10
	progressoCada = 50
)

func main() {
	dryRun := true
	if len(os.Args) > 1 && os.Args[1] == "execute" {
		dryRun = false
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if !dryRun {
		if cfg.AuthToken == "" {
			log.Fatal("❌ variável de ambiente AUTH_TOKEN não está configurada (defina no arquivo .env)")
		}
		if ledger.TokenExpired(cfg.AuthToken, time.Now()) {
			log.Fatal("❌ AUTH_TOKEN vencido ou ilegível; gere um token novo antes de executar")
		}
	}

	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	ctx := context.Background()

	importer.Banner(os.Stdout)
	fmt.Println("🗑️  DELEÇÃO DE LANÇAMENTOS")
	importer.Banner(os.Stdout)
	fmt.Printf("📅 Período: %s a %s\n", dataInicio, dataFim)
	if dryRun {
		fmt.Println("🔵 MODO: DRY RUN (nada será deletado)")
	} else {
		fmt.Println("🔴 MODO: EXECUÇÃO REAL")
	}
	importer.Banner(os.Stdout)

	fmt.Println("🔍 Buscando lançamentos do período...")
	entries, err := client.ListEntries(ctx, dataInicio, dataFim)
	if err != nil {
		log.Fatalf("❌ Erro ao buscar lançamentos: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("✅ Nenhum lançamento no período. Nada a fazer.")
		return
	}

	var valorTotal float64
	for _, e := range entries {
		valorTotal += e.Value
	}
	fmt.Printf("📊 %d lançamentos encontrados, R$ %s no total\n\n",
		len(entries), planilha.FormatBRL(valorTotal))

	fmt.Println("Prévia (primeiros lançamentos):")
	for i, e := range entries {
		if i >= previewLinhas {
			fmt.Printf("   ... e mais %d\n", len(entries)-previewLinhas)
			break
		}
		fmt.Printf("   %s | R$ %s | %s | %s\n",
			e.Date, planilha.FormatBRL(e.Value), e.ModalityName, e.ID)
	}
	fmt.Println()

	if !dryRun {
		fmt.Printf("⚠️  ATENÇÃO: %d lançamentos serão DELETADOS permanentemente.\n", len(entries))
		if !importer.ConfirmToken(os.Stdin, os.Stdout, "DELETAR") {
			fmt.Println("Operação cancelada.")
			return
		}
		fmt.Println()
	}

	runner := importer.NewRunner(dryRun, 0, os.Stdout)
	for i, entry := range entries {
		id := entry.ID
		desc := fmt.Sprintf("%s | R$ %s | %s",
			entry.Date, planilha.FormatBRL(entry.Value), id)
		runner.Do(desc, func() error {
			return client.DeleteEntry(ctx, id)
		})
		if (i+1)%progressoCada == 0 {
			fmt.Printf("  ⏳ Progresso: %d/%d (%.0f%%)\n",
				i+1, len(entries), float64(i+1)/float64(len(entries))*100)
		}
	}

	c := runner.Counters
	importer.Banner(os.Stdout)
	fmt.Println("📊 RESUMO")
	importer.Banner(os.Stdout)
	if dryRun {
		fmt.Printf("   🔵 Seriam deletados: %d\n", c.Sucesso)
		fmt.Println("\n💡 Para executar de verdade, rode: deletar-lancamentos execute")
	} else {
		fmt.Printf("   ✅ Deletados: %d\n", c.Sucesso)
		fmt.Printf("   ❌ Erros:     %d\n", c.Erros)
	}
}
