// Package store retrieves product and FAQ content from the storefront.
package store

import "context"

// Product is one storefront item as shown in a search or collection
// grid. Produced per lookup, never persisted.
type Product struct {
	Name     string
	Price    string
	ImageURL string
	PageURL  string
}

// Retriever is the content source consumed by the response assembler.
// Calls are synchronous and may be slow; implementations bound their
// own latency and return empty results for malformed pages instead of
// failing.
type Retriever interface {
	SearchProducts(ctx context.Context, term string) ([]Product, error)
	ListBestSellers(ctx context.Context, limit int) ([]Product, error)
	FaqAnswers(ctx context.Context) (map[string]string, error)
}
