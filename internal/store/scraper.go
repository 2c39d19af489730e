package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	searchPath      = "/search?type=product%2Carticle%2Cpage%2Ccollection&options%5Bprefix%5D=last&q="
	bestSellingPath = "/collections/all?sort_by=best-selling"
	faqPath         = "/pages/faq"

	// The FAQ page lists several collapsible sections; the four numbered
	// questions are the 7th through 10th blocks.
	faqFirstBlock = 6
	faqCount      = 4
)

// Scraper reads product grids and FAQ answers straight off the
// storefront's rendered pages.
type Scraper struct {
	base   *url.URL
	client *http.Client
}

func NewScraper(baseURL string) (*Scraper, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store base url: %w", err)
	}
	return &Scraper{
		base:   base,
		client: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (s *Scraper) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	doc, err := s.fetch(ctx, searchPath+url.QueryEscape(term))
	if err != nil {
		return nil, err
	}
	return s.parseProductGrid(doc, 0), nil
}

func (s *Scraper) ListBestSellers(ctx context.Context, limit int) ([]Product, error) {
	doc, err := s.fetch(ctx, bestSellingPath)
	if err != nil {
		return nil, err
	}
	return s.parseProductGrid(doc, limit), nil
}

func (s *Scraper) FaqAnswers(ctx context.Context) (map[string]string, error) {
	doc, err := s.fetch(ctx, faqPath)
	if err != nil {
		return nil, err
	}
	blocks := doc.Find("div.collapsible-content__inner--faq")
	faqs := make(map[string]string)
	if blocks.Length() < faqFirstBlock+faqCount {
		return faqs, nil
	}
	for i := 0; i < faqCount; i++ {
		answer := strings.TrimSpace(blocks.Eq(faqFirstBlock + i).Find("p").First().Text())
		if answer != "" {
			faqs[fmt.Sprintf("%d", i+1)] = answer
		}
	}
	return faqs, nil
}

func (s *Scraper) fetch(ctx context.Context, path string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base.String()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", path, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// parseProductGrid extracts product cards from a collection or search
// page. Cards missing any of title, price, image or link are skipped.
// limit <= 0 means no cap.
func (s *Scraper) parseProductGrid(doc *goquery.Document, limit int) []Product {
	var products []Product
	doc.Find("div.grid-product__content").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if limit > 0 && len(products) >= limit {
			return false
		}
		name := strings.TrimSpace(sel.Find("div.grid-product__title--body").First().Text())
		price := strings.TrimSpace(sel.Find("div.grid-product__price").First().Text())
		img := s.imageURL(sel.Find("img").First())
		href, _ := sel.Find("a[href]").First().Attr("href")
		if name == "" || price == "" || img == "" || href == "" {
			return true
		}
		products = append(products, Product{
			Name:     name,
			Price:    price,
			ImageURL: img,
			PageURL:  s.absolute(href),
		})
		return true
	})
	return products
}

// imageURL prefers src, then data-src, then the first candidate of
// data-srcset, resolving relative references against the store base.
// The data-* attributes cover lazy-loading themes that only fill src
// after the page runs JavaScript, which a plain GET never sees.
func (s *Scraper) imageURL(img *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src"} {
		if v, ok := img.Attr(attr); ok && v != "" {
			return s.absolute(v)
		}
	}
	srcset, ok := img.Attr("data-srcset")
	if !ok || srcset == "" {
		return ""
	}
	first := strings.TrimSpace(strings.Split(srcset, ",")[0])
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	if first == "" {
		return ""
	}
	return s.absolute(first)
}

func (s *Scraper) absolute(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return s.base.ResolveReference(u).String()
}
