// cmd/backup-lancamentos/main.go
//
// Baixa todos os lançamentos do backend e grava um snapshot JSON local,
// com agregados por mês e por modalidade no relatório de tela. Somente
// leitura: não precisa de confirmação.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/config"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/importer"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/domain"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/ledger"
)

const topModalidades = 15

// backupFile é o conteúdo do arquivo gerado.
type backupFile struct {
	GeradoEm   string                  `json:"gerado_em"`
	BaseURL    string                  `json:"base_url"`
	Total      int                     `json:"total"`
	ValorTotal float64                 `json:"valor_total"`
	Entries    []domain.FinancialEntry `json:"entries"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Backups completos podem demorar mais que o timeout padrão.
	client := ledger.New(cfg.BaseURL, cfg.AuthToken, ledger.WithTimeout(60*time.Second))
	ctx := context.Background()

	importer.Banner(os.Stdout)
	fmt.Println("💾 BACKUP DE LANÇAMENTOS")
	importer.Banner(os.Stdout)

	fmt.Println("🔍 Buscando todos os lançamentos...")
	entries, err := client.ListEntries(ctx, "", "")
	if err != nil {
		log.Fatalf("❌ Erro ao buscar lançamentos: %v", err)
	}

	var valorTotal float64
	porMes := map[string]struct {
		Qtd   int
		Valor float64
	}{}
	porModalidade := map[string]struct {
		Qtd   int
		Valor float64
	}{}

	for _, e := range entries {
		valorTotal += e.Value

		mes := e.Date
		if len(mes) >= 7 {
			mes = mes[:7]
		}
		m := porMes[mes]
		m.Qtd++
		m.Valor += e.Value
		porMes[mes] = m

		nome := e.ModalityName
		if nome == "" {
			nome = e.ModalityID
		}
		md := porModalidade[nome]
		md.Qtd++
		md.Valor += e.Value
		porModalidade[nome] = md
	}

	agora := time.Now()
	nomeArquivo := fmt.Sprintf("backup_completo_%s.json", agora.Format("20060102_150405"))

	out, err := os.Create(nomeArquivo)
	if err != nil {
		log.Fatalf("❌ Erro ao criar arquivo de backup: %v", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	// preserva acentos no arquivo em vez de sequências \u
	enc.SetEscapeHTML(false)
	if err := enc.Encode(backupFile{
		GeradoEm:   agora.Format(time.RFC3339),
		BaseURL:    cfg.BaseURL,
		Total:      len(entries),
		ValorTotal: valorTotal,
		Entries:    entries,
	}); err != nil {
		log.Fatalf("❌ Erro ao gravar backup: %v", err)
	}

	fmt.Printf("✅ Backup gravado em %s\n\n", nomeArquivo)
	fmt.Printf("📊 %d lançamentos, R$ %s no total\n\n", len(entries), planilha.FormatBRL(valorTotal))

	fmt.Println("📅 Por mês:")
	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)
	for _, mes := range meses {
		m := porMes[mes]
		fmt.Printf("   %s | %4d lançamentos | R$ %s\n", mes, m.Qtd, planilha.FormatBRL(m.Valor))
	}

	fmt.Println("\n💳 Por modalidade:")
	nomes := make([]string, 0, len(porModalidade))
	for nome := range porModalidade {
		nomes = append(nomes, nome)
	}
	sort.Slice(nomes, func(i, j int) bool {
		return porModalidade[nomes[i]].Valor > porModalidade[nomes[j]].Valor
	})
	for i, nome := range nomes {
		if i >= topModalidades {
			fmt.Printf("   ... e mais %d modalidades\n", len(nomes)-topModalidades)
			break
		}
		md := porModalidade[nome]
		fmt.Printf("   %-30s | %4d lançamentos | R$ %s\n", nome, md.Qtd, planilha.FormatBRL(md.Valor))
	}
}
