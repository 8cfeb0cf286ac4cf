// cmd/import-despesas/main.go
//
// Importa a planilha de despesas fixas: grupos de quatro colunas (dia,
// descrição, valor, status) por mês. Cada linha vira uma conta do tipo
// "payment" com o flag de paga derivado do status. Sem argumento roda em
// dry run; "execute" faz o import real.
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
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/ledger"
)

const (
	arquivoPadrao = "contas-2025.csv"
	linhasPular   = 1
)

// Meses cobertos pelo arquivo, na ordem dos grupos de colunas.
var meses = []planilha.MonthColumn{
	{Col: 0, Year: 2025, Month: time.November},
	{Col: 4, Year: 2025, Month: time.December},
}

func main() {
	dryRun := true
	if len(os.Args) > 1 && os.Args[1] == "execute" {
		dryRun = false
		if !importer.ConfirmSim(os.Stdin, os.Stdout) {
			fmt.Println("Operação cancelada.")
			return
		}
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

	arquivo := arquivoPadrao
	if v := os.Getenv("ARQUIVO_DESPESAS"); v != "" {
		arquivo = v
	}

	file, err := os.Open(arquivo)
	if err != nil {
		log.Fatalf("❌ Arquivo não encontrado: %s", arquivo)
	}
	defer file.Close()

	rows, err := planilha.ReadCSV(file)
	if err != nil {
		log.Fatalf("❌ Erro ao ler o CSV: %v", err)
	}

	decoded := planilha.DecodeDespesas(rows, linhasPular, meses)

	importer.Banner(os.Stdout)
	fmt.Println("💸 IMPORT DE DESPESAS")
	importer.Banner(os.Stdout)
	fmt.Printf("📄 Arquivo: %s\n", arquivo)
	fmt.Printf("📊 %d despesas decodificadas\n", len(decoded))
	if dryRun {
		fmt.Println("🔵 MODO: DRY RUN (nenhum dado será enviado)")
	} else {
		fmt.Println("🔴 MODO: EXECUÇÃO REAL")
	}
	importer.Banner(os.Stdout)

	runner := importer.NewRunner(dryRun, 0, os.Stdout)
	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	ctx := context.Background()

	var pagas, emAberto int
	for _, despesa := range decoded {
		status := "Em aberto"
		if despesa.Paid {
			status = "Paga"
			pagas++
		} else {
			emAberto++
		}
		desc := fmt.Sprintf("%s | R$ %s | %s | %s",
			despesa.Date.Format("2006-01-02"), planilha.FormatBRL(despesa.Value),
			despesa.Description, status)

		paid := despesa.Paid
		req := domain.CreateAccountRequest{
			Value:       despesa.Value,
			Date:        despesa.Date.Format("2006-01-02"),
			Description: despesa.Description,
			Type:        domain.AccountTypePayment,
			Paid:        &paid,
		}
		runner.Counters.ValorTotal += despesa.Value
		runner.Do(desc, func() error {
			_, err := client.CreateAccount(ctx, req)
			return err
		})
	}

	c := runner.Counters
	importer.Banner(os.Stdout)
	fmt.Println("📊 RESUMO")
	importer.Banner(os.Stdout)
	fmt.Printf("   Total processado: %d\n", c.Processados)
	fmt.Printf("   ✅ Sucesso:       %d\n", c.Sucesso)
	fmt.Printf("   ❌ Erros:         %d\n", c.Erros)
	fmt.Printf("   💵 Pagas:         %d\n", pagas)
	fmt.Printf("   📬 Em aberto:     %d\n", emAberto)
	fmt.Printf("   💰 Valor total:   R$ %s\n", planilha.FormatBRL(c.ValorTotal))
	if dryRun {
		fmt.Println("\n💡 Para executar de verdade, rode: import-despesas execute")
	}
}
