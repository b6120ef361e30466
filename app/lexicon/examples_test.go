package lexicon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SebaMedina172/Anki-App/app/config"
)

type recordingSource struct {
	name   string
	result Result
	calls  int
}

func (s *recordingSource) Name() string { return s.name }

func (s *recordingSource) Sentences(_ context.Context, _ string) Result {
	s.calls++
	return s.result
}

func TestResolveShortCircuits(t *testing.T) {
	cfg := testConfig()
	first := &recordingSource{name: "first", result: Found("too short")}
	second := &recordingSource{name: "second", result: Found("The cat sat on the mat")}
	third := &recordingSource{name: "third", result: Found("The cat also sat on another mat")}

	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {first, second, third},
	})

	got := resolver.Resolve(context.Background(), "cat", config.English, "")
	assert.Equal(t, "The cat sat on the mat", got)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "later sources must not run after a hit")
}

func TestResolvePrimaryCandidateWins(t *testing.T) {
	cfg := testConfig()
	source := &recordingSource{name: "chain", result: Found("The cat sat on the mat")}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {source},
	})

	got := resolver.Resolve(context.Background(), "cat", config.English, "hello there, Katie, how are you")
	assert.Equal(t, "hello there, Katie, how are you", got)
	assert.Equal(t, 0, source.calls)
}

func TestResolveShortPrimaryFallsThrough(t *testing.T) {
	cfg := testConfig()
	source := &recordingSource{name: "chain", result: Found("The cat sat on the mat")}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {source},
	})

	got := resolver.Resolve(context.Background(), "cat", config.English, "too short")
	assert.Equal(t, "The cat sat on the mat", got)
	assert.Equal(t, 1, source.calls)
}

func TestResolveTransportFailureContinues(t *testing.T) {
	cfg := testConfig()
	broken := &recordingSource{name: "broken", result: TransportError(errors.New("connection refused"))}
	working := &recordingSource{name: "working", result: Found("The cat sat on the mat")}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {broken, working},
	})

	got := resolver.Resolve(context.Background(), "cat", config.English, "")
	assert.Equal(t, "The cat sat on the mat", got)
	assert.Equal(t, 1, broken.calls)
}

func TestResolveExhaustionReturnsSentinel(t *testing.T) {
	cfg := testConfig()
	empty := &recordingSource{name: "empty", result: NotFound()}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {empty},
		config.Spanish: {empty},
	})

	assert.Equal(t, ExampleNotFoundEN, resolver.Resolve(context.Background(), "cat", config.English, ""))
	assert.Equal(t, ExampleNotFoundES, resolver.Resolve(context.Background(), "gato", config.Spanish, ""))
}

func TestResolveRejectsJunkCandidate(t *testing.T) {
	cfg := testConfig()
	junk := &recordingSource{name: "junk", result: Found("{{es-noun|m|gatos}} cat here now")}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {junk},
	})

	assert.Equal(t, ExampleNotFoundEN, resolver.Resolve(context.Background(), "cat", config.English, ""))
}

func TestResolveRejectsSpanishLeakOnEnglishChain(t *testing.T) {
	cfg := testConfig()
	leaky := &recordingSource{name: "leaky", result: Found("el cat que duerme en la mat")}
	clean := &recordingSource{name: "clean", result: Found("The cat sat on the mat")}
	resolver := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {leaky, clean},
	})

	got := resolver.Resolve(context.Background(), "cat", config.English, "")
	assert.Equal(t, "The cat sat on the mat", got)

	alone := NewExampleResolver(cfg, map[config.Language][]SentenceSource{
		config.English: {leaky},
	})
	assert.Equal(t, ExampleNotFoundEN, alone.Resolve(context.Background(), "cat", config.English, ""))
}

func TestFoundEmptyDegradesToNotFound(t *testing.T) {
	assert.Equal(t, StatusNotFound, Found("").Status)
	assert.Equal(t, StatusFound, Found("text").Status)
}
