package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

var summarySystemMessage = openai.ChatCompletionMessage{
	Role:    openai.ChatMessageRoleSystem,
	Content: "You are a summarization assistant. Produce a concise abstractive summary of the user's text in 2-4 sentences. Reply with the summary only.",
}

// OpenAISummaryModel produces abstractive summaries through an
// OpenAI-compatible chat completion endpoint.
type OpenAISummaryModel struct {
	client *openai.Client
	model  string
}

// NewOpenAISummaryModel creates a summary model backed by the given endpoint.
func NewOpenAISummaryModel(baseURL, apiKey, model string) *OpenAISummaryModel {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAISummaryModel{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (m *OpenAISummaryModel) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			summarySystemMessage,
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}
