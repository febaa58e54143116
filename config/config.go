package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string          `mapstructure:"port"`
	AllowOrigin  string          `mapstructure:"allow_origin"`
	OpenAIAPIKey string          `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string          `mapstructure:"GEMINI_API_KEY"`
	Chunking     ChunkingConfig  `mapstructure:"chunking"`
	Embedding    EmbeddingConfig `mapstructure:"embedding"`
	Summary      SummaryConfig   `mapstructure:"summary"`
	Extractor    ExtractorConfig `mapstructure:"extractor"`
	Challenge    ChallengeConfig `mapstructure:"challenge"`
}

type ChunkingConfig struct {
	Size    int `mapstructure:"size"`
	Overlap int `mapstructure:"overlap"`
}

// EmbeddingConfig selects the embedding capability: "tfidf" (local, default)
// or "openai" (any OpenAI-compatible endpoint).
type EmbeddingConfig struct {
	Provider  string `mapstructure:"provider"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	Dimension int    `mapstructure:"dimension"`
}

// SummaryConfig selects the summary capability: "frequency" (local, default),
// "openai" or "gemini".
type SummaryConfig struct {
	Provider     string `mapstructure:"provider"`
	BaseURL      string `mapstructure:"base_url"`
	Model        string `mapstructure:"model"`
	MaxSentences int    `mapstructure:"max_sentences"`
	SegmentSize  int    `mapstructure:"segment_size"`
}

type ExtractorConfig struct {
	MaxTokens int `mapstructure:"max_tokens"`
	Stride    int `mapstructure:"stride"`
}

type ChallengeConfig struct {
	ProbeQueries        []string `mapstructure:"probe_queries"`
	SimilarityThreshold float64  `mapstructure:"similarity_threshold"`
	CorrectThreshold    float64  `mapstructure:"correct_threshold"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8000")
	v.SetDefault("chunking.size", 1000)
	v.SetDefault("chunking.overlap", 200)
	v.SetDefault("embedding.provider", "tfidf")
	v.SetDefault("summary.provider", "frequency")
	v.SetDefault("summary.segment_size", 1024)
	v.SetDefault("extractor.max_tokens", 384)
	v.SetDefault("extractor.stride", 128)
	v.SetDefault("challenge.similarity_threshold", 0.7)
	v.SetDefault("challenge.correct_threshold", 0.8)

	v.AutomaticEnv()
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
