// cmd/import-completo/main.go
//
// Bootstrap completo de uma empresa nova: cria a empresa, cadastra as
// modalidades canônicas e importa a planilha de vendas na sequência, usando
// os ids retornados pelo backend. Sem argumento roda em dry run; "execute"
// faz tudo de verdade após confirmação.
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
	arquivoPadrao = "Planilha sem título - Página1.csv"
	empresaPadrao = "Óticas Desoler"
	progressoCada = 50
)

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
	empresa := empresaPadrao
	if v := os.Getenv("NOME_EMPRESA"); v != "" {
		empresa = v
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

	layout := planilha.LayoutVendasComTotal
	if layout.HeaderRow >= len(rows) {
		log.Fatalf("❌ Arquivo sem a linha de cabeçalho esperada: %s", arquivo)
	}
	dateCols := planilha.HeaderDates(rows[layout.HeaderRow])
	decoded := planilha.DecodeVendas(rows, layout)

	importer.Banner(os.Stdout)
	fmt.Println("🏢 IMPORT COMPLETO (empresa + modalidades + lançamentos)")
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

	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	ctx := context.Background()

	fmt.Printf("\n1️⃣  PASSO 1: Criando empresa %q...\n", empresa)
	if dryRun {
		fmt.Printf("  🔵 DRY RUN: criaria a empresa %q\n", empresa)
	} else {
		company, err := client.CreateCompany(ctx, ledger.Company{Name: empresa})
		if err != nil {
			log.Fatalf("❌ Erro ao criar empresa: %v", err)
		}
		fmt.Printf("  ✅ Empresa criada: %s (id %s)\n", company.Name, company.ID)
	}

	fmt.Printf("\n2️⃣  PASSO 2: Cadastrando %d modalidades canônicas...\n", len(importer.CanonicalModalities))
	var resolver *importer.Resolver
	if dryRun {
		table := make(map[string]importer.ModalityInfo, len(importer.CanonicalModalities))
		for idx, mod := range importer.CanonicalModalities {
			fmt.Printf("   %2d. 🔵 %-30s | %s\n", idx+1, mod.Name, mod.Color)
			table[mod.Name] = importer.ModalityInfo{
				ID:              "(pendente)",
				IsCreditPayment: mod.Name == "Recebimento Crediario",
			}
		}
		resolver = importer.NewStaticResolver(table)
	} else {
		resolver = importer.NewLiveResolver(ctx, client, importer.CanonicalModalities, os.Stdout)
	}

	fmt.Printf("\n3️⃣  PASSO 3: Importando %d lançamentos...\n\n", len(decoded))
	runner := importer.NewRunner(dryRun, progressoCada, os.Stdout)

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
			Value:       row.Value,
			Date:        row.Date.Format("2006-01-02"),
			ModalityID:  info.ID,
			Description: "Venda - " + row.Modality,
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
	fmt.Println("📊 RESUMO DO IMPORT")
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
		fmt.Println("\n💡 Para executar de verdade, rode: import-completo execute")
	}
}
