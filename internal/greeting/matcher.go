package greeting

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"mustard-bot/internal/embedding"
)

// ErrUnavailable reports that the embedding backend could not be
// reached. The router treats it the same as "no match" so one failed
// dependency does not take the whole bot down.
var ErrUnavailable = errors.New("embedding backend unavailable")

// matchThreshold is the minimum cosine similarity for a greeting match.
const matchThreshold = 0.5

// Matcher finds the corpus phrase most similar to an input text.
// Corpus vectors are encoded once and cached for the process lifetime;
// the input is encoded per call.
type Matcher struct {
	client  embedding.Client
	entries []Entry

	mu   sync.Mutex
	vecs [][]float32
}

func NewMatcher(client embedding.Client, entries []Entry) *Matcher {
	return &Matcher{client: client, entries: entries}
}

// Prime encodes the corpus ahead of the first message. Failure is not
// fatal; the vectors are retried lazily on the next Match call.
func (m *Matcher) Prime(ctx context.Context) error {
	_, err := m.corpusVectors(ctx)
	return err
}

// Match returns the corpus entry whose phrase is most similar to text,
// if the best similarity exceeds the threshold. Ties keep the earliest
// corpus entry. A backend failure is reported as ErrUnavailable.
func (m *Matcher) Match(ctx context.Context, text string) (Entry, bool, error) {
	if len(m.entries) == 0 {
		return Entry{}, false, nil
	}
	corpus, err := m.corpusVectors(ctx)
	if err != nil {
		return Entry{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	vecs, err := m.client.Embed(ctx, []string{text})
	if err != nil {
		return Entry{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(vecs) != 1 {
		return Entry{}, false, fmt.Errorf("%w: got %d vectors for one input", ErrUnavailable, len(vecs))
	}
	input := vecs[0]

	best := -1
	bestScore := -1.0
	for i, v := range corpus {
		if s := cosineSimilarity(input, v); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 || bestScore <= matchThreshold {
		return Entry{}, false, nil
	}
	return m.entries[best], true, nil
}

// corpusVectors returns the cached corpus embedding, encoding it on
// first use. The lock is not held across the Embed call so a slow
// backend cannot serialize concurrent matches; racing cold callers may
// each encode once and the first result to land wins.
func (m *Matcher) corpusVectors(ctx context.Context) ([][]float32, error) {
	m.mu.Lock()
	cached := m.vecs
	m.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	phrases := make([]string, len(m.entries))
	for i, e := range m.entries {
		phrases[i] = e.Phrase
	}
	vecs, err := m.client.Embed(ctx, phrases)
	if err != nil {
		return nil, fmt.Errorf("encode corpus: %w", err)
	}
	if len(vecs) != len(phrases) {
		return nil, fmt.Errorf("encode corpus: got %d vectors for %d phrases", len(vecs), len(phrases))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vecs == nil {
		m.vecs = vecs
	}
	return m.vecs, nil
}

// cosineSimilarity of two vectors; zero when lengths differ or either
// vector has zero norm.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
