package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSummaryModel produces abstractive summaries through the Gemini API.
type GeminiSummaryModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiSummaryModel creates a summary model using the given API key.
func NewGeminiSummaryModel(apiKey, modelName string) (*GeminiSummaryModel, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiSummaryModel{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (m *GeminiSummaryModel) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following text in 2-4 sentences. Reply with the summary only.\n\n%s", text)
	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response generated")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("response contained no text")
	}
	return sb.String(), nil
}

// Close releases the underlying API client.
func (m *GeminiSummaryModel) Close() error {
	return m.client.Close()
}
