package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/docmind-ai/docmind-be/config"
	"github.com/docmind-ai/docmind-be/database"
	"github.com/docmind-ai/docmind-be/service"
	"github.com/docmind-ai/docmind-be/types"
)

// buildQAService assembles the pipeline from config: document store, chunker,
// embedding provider, summary provider, extractor, challenge generator and
// scorer. The returned cleanup releases any provider clients and is safe to
// call exactly once.
func buildQAService(cfg *config.Config) (*service.QAService, func(), error) {
	cleanup := func() {}
	store := database.NewDocumentStore()

	chunker := service.NewTextChunker(types.DocumentServiceConfig{
		ChunkSize:   cfg.Chunking.Size,
		OverlapSize: cfg.Chunking.Overlap,
	})

	var newEmbedder func() database.Embedder
	switch cfg.Embedding.Provider {
	case "", "tfidf":
		newEmbedder = func() database.Embedder {
			return service.NewTFIDFEmbedder()
		}
	case "openai":
		embedder := service.NewOpenAIEmbedder(cfg.Embedding.BaseURL, cfg.OpenAIAPIKey, cfg.Embedding.Model, cfg.Embedding.Dimension)
		newEmbedder = func() database.Embedder {
			return embedder
		}
	default:
		return nil, nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}

	var summaryModel service.SummaryModel
	switch cfg.Summary.Provider {
	case "", "frequency":
		summaryModel = service.NewFrequencySummaryModel(cfg.Summary.MaxSentences)
	case "openai":
		summaryModel = service.NewOpenAISummaryModel(cfg.Summary.BaseURL, cfg.OpenAIAPIKey, cfg.Summary.Model)
	case "gemini":
		model, err := service.NewGeminiSummaryModel(cfg.GeminiAPIKey, cfg.Summary.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing gemini summary model: %w", err)
		}
		summaryModel = model
		cleanup = func() {
			if err := model.Close(); err != nil {
				log.Printf("Warning: closing gemini client: %v", err)
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown summary provider: %s", cfg.Summary.Provider)
	}

	summarizer := service.NewSummarizer(types.DocumentServiceConfig{
		ChunkSize:   cfg.Summary.SegmentSize,
		OverlapSize: 0,
	}, summaryModel)

	extractor := service.NewAnswerExtractor(service.NewLexicalSpanModel(), service.ExtractorConfig{
		MaxTokens: cfg.Extractor.MaxTokens,
		Stride:    cfg.Extractor.Stride,
	})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generator := service.NewChallengeGenerator(store, extractor, rng, service.ChallengeConfig{
		ProbeQueries: cfg.Challenge.ProbeQueries,
		MaxSimilar:   cfg.Challenge.SimilarityThreshold,
	})

	scorer := service.NewAnswerScorer(cfg.Challenge.CorrectThreshold)

	return service.NewQAService(
		store,
		chunker,
		service.NewPDFService(),
		summarizer,
		extractor,
		generator,
		scorer,
		newEmbedder,
	), cleanup, nil
}
