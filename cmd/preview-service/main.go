// cmd/preview-service/main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/api/handlers"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/api/responses"
	"github.com/GuilhermeDesoler/dashboard-financeiro/internal/core/preview"
)

func main() {
	responses.InitLogger()

	previewService := preview.NewService()
	previewHandler := handlers.NewPreviewHandler(previewService)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		// Somente leitura: o preview nunca escreve no backend
		apiV1.POST("/preview/lancamentos", previewHandler.HandlePreviewLancamentos)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "preview-service"})
	})

	const port = "8084"
	log.Printf("🚀 Preview Service (Go) iniciado e escutando na porta %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Falha ao iniciar o servidor de preview: ", err)
	}
}
