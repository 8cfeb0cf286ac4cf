// internal/api/handlers/preview_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/api/responses"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/preview"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPreviewHandler(preview.NewService())
	router := gin.New()
	router.POST("/api/v1/preview/lancamentos", handler.HandlePreviewLancamentos)
	return router
}

func multipartPlanilha(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("planilhaFile", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestHandlePreviewLancamentos(t *testing.T) {
	router := setupRouter()

	csv := "25/11/2025,\nValor,Modalidade\n\"R$ 150,00\",Pix Sicredi\n"
	body, contentType := multipartPlanilha(t, "vendas.csv", csv, map[string]string{
		"headerRow": "0",
		"skipRows":  "2",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview/lancamentos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp responses.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result preview.Result
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 1, result.Summary.Importaria)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Pix Sicredi", result.Entries[0].Modality)
}

func TestHandlePreviewLancamentosSemArquivo(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview/lancamentos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp responses.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestHandlePreviewLancamentosArquivoInvalido(t *testing.T) {
	router := setupRouter()

	body, contentType := multipartPlanilha(t, "vendas.csv", "a,b\nc,d\n", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preview/lancamentos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
