// Package greeting resolves greeting intent by embedding similarity
// against a small curated corpus of reference phrases.
package greeting

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry pairs a reference greeting phrase with its canned reply.
type Entry struct {
	Phrase string `json:"phrase"`
	Reply  string `json:"reply"`
}

// LoadCorpus reads a JSON array of entries from path. Entries with an
// empty phrase are skipped and duplicate phrases keep the first
// occurrence, so the corpus ordering stays stable for tie-breaking.
func LoadCorpus(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]Entry, 0, len(raw))
	for _, e := range raw {
		if e.Phrase == "" {
			continue
		}
		if _, dup := seen[e.Phrase]; dup {
			continue
		}
		seen[e.Phrase] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}
