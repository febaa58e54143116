package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEmbedder produces embeddings through an OpenAI-compatible endpoint.
// The endpoint may be a local inference server; set the base URL accordingly.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	dimension int
}

// NewOpenAIEmbedder creates an embedder backed by the given endpoint and model.
func NewOpenAIEmbedder(baseURL, apiKey, model string, dimension int) *OpenAIEmbedder {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	if dimension <= 0 {
		dimension = 1536
	}
	return &OpenAIEmbedder{
		client:    openai.NewClientWithConfig(config),
		model:     openai.EmbeddingModel(model),
		dimension: dimension,
	}
}

func (e *OpenAIEmbedder) Name() string { return "openai" }

// Prepare is a no-op: the remote model needs no corpus fitting.
func (e *OpenAIEmbedder) Prepare(_ []string) error { return nil }

func (e *OpenAIEmbedder) Dimension() int { return e.dimension }

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding returned")
	}
	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}
