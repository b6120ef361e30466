package lexicon

import "context"

// Status tags a sentence-source outcome. Absence is a value, not an error:
// the resolver treats NotFound and TransportError identically for control
// flow but keeps the transport detail for logging.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
	StatusTransportError
)

// Result is the outcome of querying one external source.
type Result struct {
	Status Status
	Text   string
	Err    error
}

// Found wraps text from a source. Empty text degrades to NotFound.
func Found(text string) Result {
	if text == "" {
		return NotFound()
	}
	return Result{Status: StatusFound, Text: text}
}

func NotFound() Result {
	return Result{Status: StatusNotFound}
}

func TransportError(err error) Result {
	return Result{Status: StatusTransportError, Err: err}
}

// SentenceSource is one external provider of candidate usage sentences.
// Implementations never fail for ordinary absence.
type SentenceSource interface {
	// Name identifies the source in logs.
	Name() string
	// Sentences returns candidate sentences mentioning word, best first.
	Sentences(ctx context.Context, word string) Result
}

// SourceFunc adapts a function to the SentenceSource interface.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context, word string) Result
}

func (s SourceFunc) Name() string { return s.SourceName }

func (s SourceFunc) Sentences(ctx context.Context, word string) Result {
	return s.Fn(ctx, word)
}
