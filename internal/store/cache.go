package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// BestSellerLimit bounds the best-seller listing, matching the
// storefront's first grid page.
const BestSellerLimit = 8

// CachedRetriever serves best sellers and FAQ answers from a
// periodically refreshed snapshot so slow storefront scrapes stay off
// the message path. Free-text product search always goes live. A failed
// refresh keeps the previous snapshot.
type CachedRetriever struct {
	src  Retriever
	cron *cron.Cron

	mu          sync.RWMutex
	bestSellers []Product
	faqs        map[string]string
}

func NewCachedRetriever(src Retriever) *CachedRetriever {
	return &CachedRetriever{
		src:  src,
		cron: cron.New(cron.WithLocation(time.UTC)),
	}
}

// StartRefresh schedules periodic snapshot refreshes (cron spec, e.g.
// "@every 30m") and takes the first snapshot in the background so
// startup does not wait on the storefront.
func (c *CachedRetriever) StartRefresh(ctx context.Context, spec string) error {
	if _, err := c.cron.AddFunc(spec, func() { c.Refresh(ctx) }); err != nil {
		return err
	}
	go c.Refresh(ctx)
	c.cron.Start()
	log.Printf("catalog cache refresher started (%s)", spec)
	return nil
}

func (c *CachedRetriever) Stop() {
	done := c.cron.Stop()
	<-done.Done()
}

// Refresh scrapes best sellers and FAQ answers, replacing the snapshot
// only for the parts that succeeded.
func (c *CachedRetriever) Refresh(ctx context.Context) {
	if products, err := c.src.ListBestSellers(ctx, BestSellerLimit); err != nil {
		log.Printf("best-seller refresh failed: %v", err)
	} else if len(products) > 0 {
		c.mu.Lock()
		c.bestSellers = products
		c.mu.Unlock()
	}
	if faqs, err := c.src.FaqAnswers(ctx); err != nil {
		log.Printf("faq refresh failed: %v", err)
	} else if len(faqs) > 0 {
		c.mu.Lock()
		c.faqs = faqs
		c.mu.Unlock()
	}
}

func (c *CachedRetriever) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	return c.src.SearchProducts(ctx, term)
}

func (c *CachedRetriever) ListBestSellers(ctx context.Context, limit int) ([]Product, error) {
	c.mu.RLock()
	cached := c.bestSellers
	c.mu.RUnlock()
	if len(cached) > 0 {
		if limit > 0 && len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}
	return c.src.ListBestSellers(ctx, limit)
}

func (c *CachedRetriever) FaqAnswers(ctx context.Context) (map[string]string, error) {
	c.mu.RLock()
	cached := c.faqs
	c.mu.RUnlock()
	if len(cached) > 0 {
		return cached, nil
	}
	return c.src.FaqAnswers(ctx)
}
