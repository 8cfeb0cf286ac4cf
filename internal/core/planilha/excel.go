// internal/core/planilha/excel.go
package planilha

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// LoadRows carrega as linhas de uma planilha a partir da extensão do nome do
// arquivo: .xlsx via excelize, .xls via xlsReader, qualquer outra coisa é
// tratada como CSV. latin1 aplica a decodificação ISO-8859-1 apenas ao CSV;
// os formatos Excel já carregam o encoding no próprio arquivo.
func LoadRows(r io.Reader, filename string, latin1 bool) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return loadXLSX(r)
	case ".xls":
		return loadXLS(r)
	default:
		if latin1 {
			r = Latin1Reader(r)
		}
		return ReadCSV(r)
	}
}

func loadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo .xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("o arquivo .xlsx não contém planilhas")
	}
	return f.GetRows(sheets[0])
}

func loadXLS(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		// alguns exports chegam como .xls mas são xlsx renomeado
		if rows, errX := loadXLSX(bytes.NewReader(data)); errX == nil {
			return rows, nil
		}
		return nil, fmt.Errorf("erro ao abrir arquivo .xls: %w", err)
	}

	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
