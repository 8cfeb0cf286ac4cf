// internal/api/handlers/preview_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/api/responses"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/planilha"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/preview"
)

// PreviewHandler atende as requisições de preview de planilhas.
type PreviewHandler struct {
	service preview.Service
}

// NewPreviewHandler cria um novo handler de preview.
func NewPreviewHandler(service preview.Service) *PreviewHandler {
	return &PreviewHandler{service: service}
}

// HandlePreviewLancamentos recebe uma planilha de vendas (CSV, XLSX ou XLS)
// e devolve os lançamentos decodificados com a classificação do import. Os
// parâmetros de layout são explícitos porque as variantes de arquivo nunca
// são auto-detectadas.
func (h *PreviewHandler) HandlePreviewLancamentos(c *gin.Context) {
	fileHeader, err := c.FormFile("planilhaFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo de planilha não encontrado ou inválido")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo de planilha")
		return
	}
	defer file.Close()

	layout := planilha.LayoutVendasComTotal
	if v := c.PostForm("headerRow"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			layout.HeaderRow = n
		}
	}
	if v := c.PostForm("skipRows"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			layout.SkipRows = n
		}
	}
	if v := c.PostForm("requirePrefix"); v != "" {
		layout.RequirePrefix = v == "true" || v == "1"
	}
	latin1 := c.PostForm("latin1") == "true" || c.PostForm("latin1") == "1"

	result, err := h.service.PreviewLancamentos(file, fileHeader.Filename, layout, latin1)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Erro ao processar a planilha", err.Error())
		return
	}

	responses.Success(c, result, "Preview gerado com sucesso")
}
