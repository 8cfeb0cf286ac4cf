// cmd/import-lancamentos/main.go
//
// Importa os lançamentos de vendas de uma planilha larga (uma dupla de
// colunas valor/modalidade por data) usando a tabela fixa de modalidades já
// cadastradas no backend. Sem argumento roda em dry run; "execute" faz o
// import real após confirmação.
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

const arquivoPadrao = "Planilha sem título - Página1.csv"

// Tabela fixa nome → modalidade do backend. Os nomes precisam bater
// exatamente com o conteúdo da planilha depois do reparo de encoding.
var modalidades = map[string]importer.ModalityInfo{
	"Dinheiro":                {ID: "d7c886f7-3768-45a9-a522-bf1a377b9828"},
	"Pix Sicredi":             {ID: "43ebc7c3-bf22-481b-a59f-0379669eb355"},
	"Pix Sicoob":              {ID: "702ee6e4-ce26-4202-b751-97f88390ae19"},
	"Débito Sicredi":          {ID: "a611381f-e26e-456d-998d-c25ab4d16b08"},
	"Debito Sicoob":           {ID: "a611381f-e26e-456d-998d-c25ab4d16b08"},
	"Recebimento Crediario":   {ID: "654050e3-75ae-4438-82b2-b8c6ff497e0c", IsCreditPayment: true},
	"Crédito Av Sicredi":      {ID: "26646ee2-09a1-4a1c-9aee-74ff6ea4fcce"},
	"Parcelado 2 a 4 Sicredi": {ID: "c32cde4a-e41b-46bb-b940-fb42a506d94c"},
	"Parcelado 5 a 6 Sicredi": {ID: "065a0aba-f327-4687-b575-6d4c6c12f5df"},
	"Parcelado 5 a 6 Sicoob":  {ID: "6e6c3e3c-463f-474c-95d4-5355585facc9"},
	"BonusCred":               {ID: "32a3eeaa-cfec-48d0-b6b4-69504b7a6dce"},
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
	if v := os.Getenv("ARQUIVO_VENDAS"); v != "" {
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

	layout := planilha.LayoutVendasSimples
	if layout.HeaderRow >= len(rows) {
		log.Fatalf("❌ Arquivo sem a linha de cabeçalho esperada: %s", arquivo)
	}
	dateCols := planilha.HeaderDates(rows[layout.HeaderRow])
	decoded := planilha.DecodeVendas(rows, layout)

	importer.Banner(os.Stdout)
	fmt.Println("📋 IMPORT DE LANÇAMENTOS")
	importer.Banner(os.Stdout)
	fmt.Printf("📄 Arquivo: %s\n", arquivo)
	fmt.Printf("📅 Encontradas %d datas na planilha\n", len(dateCols))
	fmt.Printf("📊 %d lançamentos decodificados\n", len(decoded))
	if dryRun {
		fmt.Println("🔵 MODO: DRY RUN (nenhum dado será enviado)")
	} else {
		fmt.Println("🔴 MODO: EXECUÇÃO REAL")
	}
	importer.Banner(os.Stdout)

	resolver := importer.NewStaticResolver(modalidades)
	runner := importer.NewRunner(dryRun, 0, os.Stdout)
	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	ctx := context.Background()

	for _, row := range decoded {
		desc := fmt.Sprintf("%s | R$ %s | %s",
			row.Date.Format("2006-01-02"), planilha.FormatBRL(row.Value), row.Modality)

		if importer.Classify(row.Modality, importer.ModalityInfo{}) == importer.ClassCrediarioIgnorado {
			runner.Ignore(desc)
			continue
		}

		info, ok := resolver.Resolve(row.Modality)
		if !ok {
			if hint := resolver.Suggest(row.Modality); hint != "" {
				desc += fmt.Sprintf(" (você quis dizer %q?)", hint)
			}
			runner.Skip(desc)
			continue
		}

		req := domain.CreateEntryRequest{
			Value:      row.Value,
			Date:       row.Date.Format("2006-01-02"),
			ModalityID: info.ID,
		}
		if importer.Classify(row.Modality, info) == importer.ClassRecebimentoCrediario {
			req.IsCreditPayment = true
		}
		runner.Counters.ValorTotal += row.Value
		runner.Do(desc, func() error {
			_, err := client.CreateEntry(ctx, req)
			return err
		})
	}

	c := runner.Counters
	importer.Banner(os.Stdout)
	fmt.Println("📊 RESUMO")
	importer.Banner(os.Stdout)
	fmt.Printf("   Total processado:       %d\n", c.Processados)
	fmt.Printf("   ✅ Sucesso:             %d\n", c.Sucesso)
	fmt.Printf("   ⏭️  Ignorados (Crediário): %d\n", c.Ignorados)
	if c.Pulados > 0 {
		fmt.Printf("   ⚠️  Modalidades não encontradas: %d\n", c.Pulados)
	}
	fmt.Printf("   ❌ Erros:               %d\n", c.Erros)
	fmt.Printf("   💰 Valor total:         R$ %s\n", planilha.FormatBRL(c.ValorTotal))
	if dryRun {
		fmt.Println("\n💡 Para executar de verdade, rode: import-lancamentos execute")
	}
}
