package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docmind-ai/docmind-be/config"
)

// summarizeCmd runs the pipeline once against a local file without starting
// the server: ingest, print the summary, and optionally print generated
// challenge questions.
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a local document",
	Long:  `Runs a local PDF or text file through the pipeline and prints the summary`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		numQuestions, _ := cmd.Flags().GetInt("questions")

		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		qaService, cleanup, err := buildQAService(cfg)
		if err != nil {
			log.Fatalf("Failed to build pipeline: %v", err)
		}
		defer cleanup()

		raw, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
		isPDF := strings.EqualFold(filepath.Ext(filePath), ".pdf")

		ctx := context.Background()
		_, summary, err := qaService.Upload(ctx, raw, isPDF)
		if err != nil {
			log.Fatalf("Failed to process document: %v", err)
		}
		fmt.Println(summary)

		if numQuestions > 0 {
			questions, err := qaService.Challenge(ctx, numQuestions)
			if err != nil {
				log.Fatalf("Failed to generate questions: %v", err)
			}
			for i, q := range questions {
				fmt.Printf("\nQ%d: %s\nA: %s\n", i+1, q.Question, q.Answer)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	summarizeCmd.Flags().StringP("file", "f", "", "path to the PDF or text file")
	summarizeCmd.Flags().IntP("questions", "q", 0, "also generate this many challenge questions")
}
