package types

// Answer holds an extracted answer span together with the context passage it
// was drawn from. Answers are produced fresh per query and never cached.
type Answer struct {
	Answer  string `json:"answer"`
	Context string `json:"context"`
}

// ChallengeQuestion is a generated question with its reference answer and the
// context the answer was extracted from.
type ChallengeQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Context  string `json:"context,omitempty"`
}

// EvaluationResult is the verdict for a user-submitted answer. Reference
// carries the context passage the reference answer came from, not the answer
// itself, so users can compare against the surrounding text.
type EvaluationResult struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
	Reference string `json:"reference"`
}

// DocumentServiceConfig contains configuration options for document chunking
type DocumentServiceConfig struct {
	ChunkSize   int // Target size for text chunks, in characters
	OverlapSize int // Size of overlap between adjacent chunks
}
