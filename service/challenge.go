package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	"github.com/docmind-ai/docmind-be/database"
	"github.com/docmind-ai/docmind-be/types"
)

// defaultProbeQueries are the ordered topic probes used to pull contexts from
// different regions of the document. Each probe retrieves its single best
// chunk; word-overlap filtering then keeps only sufficiently distinct ones.
var defaultProbeQueries = []string{
	"definition explanation describe concept",
	"example case study demonstration",
	"comparison difference between",
	"process steps method how",
	"reason cause effect why",
	"feature characteristic property",
	"problem challenge solution",
	"benefit advantage importance",
	"limitation drawback concern",
}

// ChallengeConfig tunes challenge generation. Zero values take defaults.
type ChallengeConfig struct {
	ProbeQueries []string // topic probes, tried in order
	MaxSimilar   float64  // contexts above this Jaccard similarity are rejected
}

// ChallengeGenerator synthesizes question/answer/context triples from the
// loaded document. Randomness for template and keyword choice is injected so
// generation is reproducible under a seeded source.
type ChallengeGenerator struct {
	store      *database.DocumentStore
	extractor  *AnswerExtractor
	rngMu      sync.Mutex
	rng        *rand.Rand
	probes     []string
	maxSimilar float64
}

// NewChallengeGenerator creates a generator reading from store and answering
// through extractor.
func NewChallengeGenerator(store *database.DocumentStore, extractor *AnswerExtractor, rng *rand.Rand, config ChallengeConfig) *ChallengeGenerator {
	if len(config.ProbeQueries) == 0 {
		config.ProbeQueries = defaultProbeQueries
	}
	if config.MaxSimilar <= 0 {
		config.MaxSimilar = 0.7
	}
	return &ChallengeGenerator{
		store:      store,
		extractor:  extractor,
		rng:        rng,
		probes:     config.ProbeQueries,
		maxSimilar: config.MaxSimilar,
	}
}

// Generate returns up to n challenge questions in retrieval order. It fails
// with ErrNotReady when no document is loaded and with ErrGenerationFailed
// when no context yields a usable question.
func (g *ChallengeGenerator) Generate(ctx context.Context, n int) ([]types.ChallengeQuestion, error) {
	if n <= 0 {
		n = 3
	}
	text, index, ok := g.store.Get()
	if !ok {
		return nil, fmt.Errorf("%w: upload a document first", types.ErrNotReady)
	}

	contexts := g.diverseContexts(ctx, text, index, n)

	questions := make([]types.ChallengeQuestion, 0, len(contexts))
	for _, contextText := range contexts {
		question := g.nextQuestion(contextText)
		answer, err := g.extractor.Extract(ctx, question, contextText)
		if err != nil {
			log.Printf("Warning: document %s: skipping context, extraction failed: %v", g.store.DocumentID(), err)
			continue
		}
		questions = append(questions, types.ChallengeQuestion{
			Question: question,
			Answer:   answer.Answer,
			Context:  contextText,
		})
	}
	if len(questions) == 0 {
		return nil, types.ErrGenerationFailed
	}
	return questions, nil
}

// nextQuestion synthesizes one question under the source lock; the shared
// rand source is not safe for concurrent Generate calls.
func (g *ChallengeGenerator) nextQuestion(contextText string) string {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()
	return synthesizeQuestion(contextText, g.rng)
}

// diverseContexts collects up to n mutually dissimilar contexts: first by
// probing the index with the fixed topic queries, then by sampling paragraphs
// spread across the document, and as a last resort the whole document text.
func (g *ChallengeGenerator) diverseContexts(ctx context.Context, text string, index *database.VectorIndex, n int) []string {
	var contexts []string

	for _, probe := range g.probes {
		if len(contexts) >= n {
			break
		}
		results, err := index.Search(ctx, probe, 1)
		if err != nil || len(results) == 0 {
			continue
		}
		candidate := results[0]
		if strings.TrimSpace(candidate) == "" || g.tooSimilar(candidate, contexts) {
			continue
		}
		contexts = append(contexts, candidate)
	}

	if len(contexts) < n {
		paragraphs := splitParagraphs(text)
		step := len(paragraphs) / (n - len(contexts))
		if step < 1 {
			step = 1
		}
		for i := 0; i < len(paragraphs); i += step {
			if len(contexts) >= n {
				break
			}
			candidate := paragraphs[i]
			if g.tooSimilar(candidate, contexts) {
				continue
			}
			contexts = append(contexts, candidate)
		}
	}

	if len(contexts) == 0 {
		contexts = []string{text}
	}
	return contexts
}

func (g *ChallengeGenerator) tooSimilar(candidate string, accepted []string) bool {
	for _, existing := range accepted {
		if JaccardSimilarity(candidate, existing) > g.maxSimilar {
			return true
		}
	}
	return false
}

// splitParagraphs splits text on blank-line boundaries, dropping empties.
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
