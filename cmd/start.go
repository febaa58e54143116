package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/docmind-ai/docmind-be/config"
	"github.com/docmind-ai/docmind-be/handler"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document assistant server",
	Long:  `Starts the HTTP server exposing upload, ask, challenge and evaluate endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		qaService, cleanup, err := buildQAService(cfg)
		if err != nil {
			log.Fatalf("Failed to build pipeline: %v", err)
		}

		// Initialize handlers
		corsHandler := handler.NewCorsHandler(cfg.AllowOrigin)
		uploadHandler := handler.NewUploadHandler(qaService)
		qaHandler := handler.NewQAHandler(qaService)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.POST("/upload", uploadHandler.HandleUpload)
		router.POST("/ask", qaHandler.HandleAsk)
		router.POST("/challenge", qaHandler.HandleChallenge)
		router.POST("/evaluate", qaHandler.HandleEvaluate)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			cleanup()
			log.Fatal("Server error:", err)
		}
		cleanup()
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
