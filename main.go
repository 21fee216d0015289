package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/paymonsta/statement-analyzer/client"
	"github.com/paymonsta/statement-analyzer/config"
	"github.com/paymonsta/statement-analyzer/handler"
	"github.com/paymonsta/statement-analyzer/logger"
	"github.com/paymonsta/statement-analyzer/service"
)

func main() {
	log := logger.New()

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Gemini inference client
	geminiClient, err := client.NewGeminiClient(context.Background(), cfg.GeminiModel, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	statementService := service.NewStatementService(geminiClient, pdfProcessor, cfg.MaxExtractAttempts, log)

	// Initialize handler layer
	analyzeHandler := handler.NewAnalyzeHandler(statementService, log)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Bank Statement Analyzer",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/analyze", analyzeHandler.AnalyzeStatement)
		}
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("Starting Bank Statement Analyzer service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
