package types

import "errors"

// Error kinds surfaced by the pipeline. Handlers match on these with
// errors.Is to pick a status code; raise sites wrap them with fmt.Errorf
// so every error carries a human-readable message.
var (
	// ErrInvalidInput marks malformed parameters or blank required text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput marks a blank question or answer argument.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotReady marks operations that need a loaded document and built
	// index when none is present.
	ErrNotReady = errors.New("no document has been uploaded yet")

	// ErrNoContext marks retrieval that produced no usable passage.
	ErrNoContext = errors.New("could not find relevant context")

	// ErrGenerationFailed marks challenge generation that produced zero
	// viable questions.
	ErrGenerationFailed = errors.New("failed to generate any valid questions")

	// ErrModelFailure marks an embedding, extraction or summarization model
	// invocation that itself errored.
	ErrModelFailure = errors.New("model invocation failed")
)
