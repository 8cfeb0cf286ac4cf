// cmd/verificar-totais/main.go
//
// Concilia a planilha de vendas com o backend: agrega a planilha por data
// (separando o que menciona crediário, que não é importado como venda) e
// compara com os lançamentos retornados pela API no mesmo período. Somente
// leitura.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/config"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/importer"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/ledger"
)

const arquivoPadrao = "Planilha sem título - Página1.csv"

// tolerância para comparação de somas em ponto flutuante
const toleranciaCentavos = 0.01

type totalDia struct {
	Qtd       int
	Valor     float64
	QtdCred   int
	ValorCred float64
	QtdAPI    int
	ValorAPI  float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
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

	decoded := planilha.DecodeVendas(rows, planilha.LayoutVendasSimples)
	if len(decoded) == 0 {
		log.Fatalf("❌ Nenhum lançamento decodificado de %s", arquivo)
	}

	porDia := map[string]*totalDia{}
	for _, row := range decoded {
		dia := row.Date.Format("2006-01-02")
		t := porDia[dia]
		if t == nil {
			t = &totalDia{}
			porDia[dia] = t
		}
		if importer.MentionsCrediario(row.Modality) {
			t.QtdCred++
			t.ValorCred += row.Value
		} else {
			t.Qtd++
			t.Valor += row.Value
		}
	}

	dias := make([]string, 0, len(porDia))
	for dia := range porDia {
		dias = append(dias, dia)
	}
	sort.Strings(dias)
	inicio, fim := dias[0], dias[len(dias)-1]

	importer.Banner(os.Stdout)
	fmt.Println("🔎 VERIFICAÇÃO DE TOTAIS (planilha × backend)")
	importer.Banner(os.Stdout)
	fmt.Printf("📄 Arquivo: %s\n", arquivo)
	fmt.Printf("📅 Período: %s a %s (%d dias)\n", inicio, fim, len(dias))
	importer.Banner(os.Stdout)

	client := ledger.New(cfg.BaseURL, cfg.AuthToken)
	entries, err := client.ListEntries(context.Background(), inicio, fim)
	if err != nil {
		log.Fatalf("❌ Erro ao buscar lançamentos na API: %v", err)
	}

	for _, e := range entries {
		dia := e.Date
		if len(dia) > 10 {
			dia = dia[:10]
		}
		t := porDia[dia]
		if t == nil {
			t = &totalDia{}
			porDia[dia] = t
			dias = append(dias, dia)
		}
		t.QtdAPI++
		t.ValorAPI += e.Value
	}
	sort.Strings(dias)

	fmt.Printf("\n%-12s | %-22s | %-22s | %s\n", "Data", "Planilha (sem crediário)", "Backend", "Status")
	divergentes := 0
	for _, dia := range dias {
		t := porDia[dia]
		ok := t.Qtd == t.QtdAPI && math.Abs(t.Valor-t.ValorAPI) < toleranciaCentavos
		status := "✅ OK"
		if !ok {
			status = "❌ DIVERGENTE"
			divergentes++
		}
		fmt.Printf("%-12s | %3d x R$ %-12s | %3d x R$ %-12s | %s\n",
			dia, t.Qtd, planilha.FormatBRL(t.Valor),
			t.QtdAPI, planilha.FormatBRL(t.ValorAPI), status)
		if t.QtdCred > 0 {
			fmt.Printf("%-12s |   (crediário ignorado: %d x R$ %s)\n",
				"", t.QtdCred, planilha.FormatBRL(t.ValorCred))
		}
	}

	importer.Banner(os.Stdout)
	if divergentes == 0 {
		fmt.Println("✅ Todos os dias conferem.")
	} else {
		fmt.Printf("❌ %d dia(s) com divergência — confira os imports do período.\n", divergentes)
	}
}
