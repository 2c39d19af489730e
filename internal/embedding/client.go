package embedding

import "context"

// Client encodes a batch of strings into fixed-dimension normalized
// vectors. Implementations must return one vector per input, in input
// order, and must be deterministic for identical input strings.
type Client interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
