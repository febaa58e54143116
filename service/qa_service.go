package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/docmind-ai/docmind-be/database"
	"github.com/docmind-ai/docmind-be/types"
)

const retrievalTopK = 3

// QAService is the synchronous API the transport layer calls into: upload a
// document, ask free-form questions, generate challenge questions and grade
// submitted answers. All state lives in the injected DocumentStore, so
// isolated services can run side by side in tests.
type QAService struct {
	store       *database.DocumentStore
	chunker     *TextChunker
	pdfService  *PDFService
	summarizer  *Summarizer
	extractor   *AnswerExtractor
	generator   *ChallengeGenerator
	scorer      *AnswerScorer
	newEmbedder func() database.Embedder
}

// NewQAService wires the pipeline together. newEmbedder is called once per
// upload so corpus-fitted embedders (TF-IDF) start fresh for each document.
func NewQAService(
	store *database.DocumentStore,
	chunker *TextChunker,
	pdfService *PDFService,
	summarizer *Summarizer,
	extractor *AnswerExtractor,
	generator *ChallengeGenerator,
	scorer *AnswerScorer,
	newEmbedder func() database.Embedder,
) *QAService {
	return &QAService{
		store:       store,
		chunker:     chunker,
		pdfService:  pdfService,
		summarizer:  summarizer,
		extractor:   extractor,
		generator:   generator,
		scorer:      scorer,
		newEmbedder: newEmbedder,
	}
}

// Upload ingests a document: decodes it, chunks it, builds a fresh vector
// index and atomically swaps it into the store, then returns the document
// text together with its summary. Summarization is best-effort and cannot
// fail the upload. The store is only mutated at the very end, so an aborted
// upload never leaves it partially updated.
func (s *QAService) Upload(ctx context.Context, raw []byte, isPDF bool) (string, string, error) {
	var text string
	if isPDF {
		extracted, err := s.pdfService.ExtractText(raw)
		if err != nil {
			return "", "", err
		}
		text = extracted
	} else {
		text = string(raw)
	}
	if strings.TrimSpace(text) == "" {
		return "", "", fmt.Errorf("%w: document is empty", types.ErrInvalidInput)
	}

	chunks, err := s.chunker.Split(text)
	if err != nil {
		return "", "", err
	}

	index := database.NewVectorIndex(s.newEmbedder())
	if err := index.Build(ctx, chunks); err != nil {
		return "", "", err
	}

	summary := s.summarizer.Summarize(ctx, text)

	id := s.store.Set(text, index)
	log.Printf("Document %s indexed with %d chunks", id, index.Len())
	return text, summary, nil
}

// Ask answers a free-form question with a span extracted from the document.
func (s *QAService) Ask(ctx context.Context, question string) (types.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return types.Answer{}, fmt.Errorf("%w: question cannot be empty", types.ErrEmptyInput)
	}
	contextText, err := s.relevantContext(ctx, question, retrievalTopK)
	if err != nil {
		return types.Answer{}, err
	}
	return s.extractor.Extract(ctx, question, contextText)
}

// Challenge generates up to n question/answer/context triples.
func (s *QAService) Challenge(ctx context.Context, n int) ([]types.ChallengeQuestion, error) {
	return s.generator.Generate(ctx, n)
}

// Evaluate grades userAnswer against the reference answer extracted for
// question from the current document.
func (s *QAService) Evaluate(ctx context.Context, question, userAnswer string) (types.EvaluationResult, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(userAnswer) == "" {
		return types.EvaluationResult{}, fmt.Errorf("%w: question and answer cannot be empty", types.ErrEmptyInput)
	}
	reference, err := s.Ask(ctx, question)
	if err != nil {
		return types.EvaluationResult{}, err
	}
	return s.scorer.Score(userAnswer, reference), nil
}

// relevantContext retrieves the top-k chunks for the query and joins them
// into a single passage.
func (s *QAService) relevantContext(ctx context.Context, query string, k int) (string, error) {
	_, index, ok := s.store.Get()
	if !ok {
		return "", fmt.Errorf("%w: upload a document first", types.ErrNotReady)
	}
	chunks, err := index.Search(ctx, query, k)
	if err != nil {
		return "", err
	}
	contextText := strings.Join(chunks, " ")
	if strings.TrimSpace(contextText) == "" {
		return "", fmt.Errorf("%w: retrieval returned no usable passage", types.ErrNoContext)
	}
	return contextText, nil
}
