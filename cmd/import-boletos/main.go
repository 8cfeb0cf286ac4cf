// cmd/import-boletos/main.go
//
// Importa a planilha de boletos: grupos de duas colunas (dia, valor) por
// mês. Cada linha vira uma conta do tipo "boleto" com a descrição fixa
// "Boleto". Sem argumento roda em dry run; "execute" faz o import real.
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
	arquivoPadrao = "boletos-2025.csv"
	linhasPular   = 2
)

// Meses cobertos pelo arquivo, na ordem das colunas.
var meses = []planilha.MonthColumn{
	{Col: 0, Year: 2025, Month: time.November},
	{Col: 2, Year: 2025, Month: time.December},
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
	if v := os.Getenv("ARQUIVO_BOLETOS"); v != "" {
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

	decoded := planilha.DecodeBoletos(rows, linhasPular, meses)

	importer.Banner(os.Stdout)
	fmt.Println("🧾 IMPORT DE BOLETOS")
	importer.Banner(os.Stdout)
	fmt.Printf("📄 Arquivo: %s\n", arquivo)
	fmt.Printf("📊 %d boletos decodificados\n", len(decoded))
	if dryRun {
		fmt.Println("🔵 MODO: DRY RUN (nenhum dado será enviado)")
	} else {
		fmt.Println("🔴 MODO: EXECUÇÃO REAL")
	}
	importer.Banner(os.Stdout)

	runner := importer.NewRunner(dryRun, 0, os.Stdout)
	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	ctx := context.Background()

	for _, boleto := range decoded {
		desc := fmt.Sprintf("%s | R$ %s | Boleto",
			boleto.Date.Format("2006-01-02"), planilha.FormatBRL(boleto.Value))

		req := domain.CreateAccountRequest{
			Value:       boleto.Value,
			Date:        boleto.Date.Format("2006-01-02"),
			Description: "Boleto",
			Type:        domain.AccountTypeBoleto,
		}
		runner.Counters.ValorTotal += boleto.Value
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
	fmt.Printf("   💰 Valor total:   R$ %s\n", planilha.FormatBRL(c.ValorTotal))
	if dryRun {
		fmt.Println("\n💡 Para executar de verdade, rode: import-boletos execute")
	}
}
