package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const productGridHTML = `
<html><body>
<div class="grid-product__content">
  <a href="/products/astro-black">
    <img class="lazyloaded" src="//cdn.example.com/astro.jpg">
    <div class="grid-product__title--body"> ASTRO BLACK </div>
    <div class="grid-product__price"> 2,490 THB </div>
  </a>
</div>
<div class="grid-product__content">
  <a href="/products/gat-white">
    <img class="lazyloaded" data-srcset="/img/gat-small.jpg 180w, /img/gat-big.jpg 360w">
    <div class="grid-product__title--body">GAT WHITE</div>
    <div class="grid-product__price">1,990 THB</div>
  </a>
</div>
<div class="grid-product__content">
  <a href="/products/court-green">
    <img class="lazyload" src="" data-src="/img/court.jpg">
    <div class="grid-product__title--body">COURT GREEN</div>
    <div class="grid-product__price">2,190 THB</div>
  </a>
</div>
<div class="grid-product__content">
  <a href="/products/broken">
    <div class="grid-product__title--body">NO PRICE OR IMAGE</div>
  </a>
</div>
</body></html>`

func gridPage(n int) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < n; i++ {
		b.WriteString(`<div class="grid-product__content"><a href="/products/p">` +
			`<img class="lazyloaded" src="/img/p.jpg">` +
			`<div class="grid-product__title--body">P</div>` +
			`<div class="grid-product__price">1 THB</div></a></div>`)
	}
	b.WriteString("</body></html>")
	return b.String()
}

const faqHTML = `
<html><body>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>shipping</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>returns</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>payment</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>sizing</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>warranty</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>care</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>ลองได้ที่ร้านสาขาทุกแห่ง</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>แบรนด์ไทย</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>ผ้าแคนวาส</p></div>
<div class="collapsible-content__inner collapsible-content__inner--faq rte"><p>เช็ดด้วยผ้าชุบน้ำ</p></div>
</body></html>`

func newTestScraper(t *testing.T, handler http.HandlerFunc) (*Scraper, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	s, err := NewScraper(srv.URL)
	if err != nil {
		t.Fatalf("new scraper: %v", err)
	}
	return s, srv
}

func TestSearchProducts_ParsesGrid(t *testing.T) {
	var gotPath string
	s, srv := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		_, _ = w.Write([]byte(productGridHTML))
	})

	products, err := s.SearchProducts(context.Background(), "ASTRO")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(gotPath, "/search?") || !strings.Contains(gotPath, "q=ASTRO") {
		t.Fatalf("unexpected search path %q", gotPath)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 complete products, got %d", len(products))
	}

	first := products[0]
	if first.Name != "ASTRO BLACK" || first.Price != "2,490 THB" {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.ImageURL != "http://cdn.example.com/astro.jpg" {
		t.Fatalf("protocol-relative image not resolved: %q", first.ImageURL)
	}
	if first.PageURL != srv.URL+"/products/astro-black" {
		t.Fatalf("relative link not resolved: %q", first.PageURL)
	}

	// second card has no src, only data-srcset
	if products[1].ImageURL != srv.URL+"/img/gat-small.jpg" {
		t.Fatalf("srcset fallback failed: %q", products[1].ImageURL)
	}

	// third card is pre-render lazy-loading markup: empty src, data-src set
	if products[2].ImageURL != srv.URL+"/img/court.jpg" {
		t.Fatalf("data-src fallback failed: %q", products[2].ImageURL)
	}
}

func TestSearchProducts_TermIsEscaped(t *testing.T) {
	var gotQuery string
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte("<html></html>"))
	})

	if _, err := s.SearchProducts(context.Background(), "เสื้อ ยืด"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotQuery != "เสื้อ ยืด" {
		t.Fatalf("term not round-tripped through escaping: %q", gotQuery)
	}
}

func TestListBestSellers_CapsResults(t *testing.T) {
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sort_by") != "best-selling" {
			t.Errorf("unexpected path %q", r.URL.RequestURI())
		}
		_, _ = w.Write([]byte(gridPage(12)))
	})

	products, err := s.ListBestSellers(context.Background(), BestSellerLimit)
	if err != nil {
		t.Fatalf("best sellers: %v", err)
	}
	if len(products) != BestSellerLimit {
		t.Fatalf("expected %d products, got %d", BestSellerLimit, len(products))
	}
}

func TestFaqAnswers(t *testing.T) {
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(faqHTML))
	})

	faqs, err := s.FaqAnswers(context.Background())
	if err != nil {
		t.Fatalf("faq: %v", err)
	}
	want := map[string]string{
		"1": "ลองได้ที่ร้านสาขาทุกแห่ง",
		"2": "แบรนด์ไทย",
		"3": "ผ้าแคนวาส",
		"4": "เช็ดด้วยผ้าชุบน้ำ",
	}
	for k, v := range want {
		if faqs[k] != v {
			t.Errorf("faq[%s] = %q, want %q", k, faqs[k], v)
		}
	}
}

func TestFaqAnswers_ShortPageIsEmptyNotError(t *testing.T) {
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="collapsible-content__inner--faq"><p>only one</p></div>`))
	})

	faqs, err := s.FaqAnswers(context.Background())
	if err != nil {
		t.Fatalf("faq: %v", err)
	}
	if len(faqs) != 0 {
		t.Fatalf("malformed page should yield empty map, got %v", faqs)
	}
}

func TestFetch_ServerErrorPropagates(t *testing.T) {
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := s.SearchProducts(context.Background(), "x"); err == nil {
		t.Fatal("expected error on 502")
	}
}

// fakeRetriever for the cache tests.
type fakeRetriever struct {
	products []Product
	faqs     map[string]string
	err      error
	searches int
	listings int
	faqCalls int
}

func (f *fakeRetriever) SearchProducts(_ context.Context, term string) ([]Product, error) {
	f.searches++
	return f.products, f.err
}

func (f *fakeRetriever) ListBestSellers(_ context.Context, limit int) ([]Product, error) {
	f.listings++
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeRetriever) FaqAnswers(_ context.Context) (map[string]string, error) {
	f.faqCalls++
	return f.faqs, f.err
}

func TestCachedRetriever_ServesSnapshot(t *testing.T) {
	src := &fakeRetriever{
		products: []Product{{Name: "A"}, {Name: "B"}},
		faqs:     map[string]string{"1": "ans"},
	}
	c := NewCachedRetriever(src)
	c.Refresh(context.Background())

	for i := 0; i < 3; i++ {
		ps, err := c.ListBestSellers(context.Background(), BestSellerLimit)
		if err != nil || len(ps) != 2 {
			t.Fatalf("cached best sellers: %v %d", err, len(ps))
		}
		fs, err := c.FaqAnswers(context.Background())
		if err != nil || fs["1"] != "ans" {
			t.Fatalf("cached faqs: %v %v", err, fs)
		}
	}
	// one listing and one faq scrape from Refresh, none from reads
	if src.listings != 1 || src.faqCalls != 1 {
		t.Fatalf("cache not used: listings=%d faqCalls=%d", src.listings, src.faqCalls)
	}
}

func TestCachedRetriever_SearchIsAlwaysLive(t *testing.T) {
	src := &fakeRetriever{products: []Product{{Name: "A"}}}
	c := NewCachedRetriever(src)

	for i := 0; i < 2; i++ {
		if _, err := c.SearchProducts(context.Background(), "A"); err != nil {
			t.Fatalf("search: %v", err)
		}
	}
	if src.searches != 2 {
		t.Fatalf("search must pass through, got %d calls", src.searches)
	}
}

func TestCachedRetriever_FallsBackWhenCold(t *testing.T) {
	src := &fakeRetriever{products: []Product{{Name: "A"}}, faqs: map[string]string{"1": "x"}}
	c := NewCachedRetriever(src)

	ps, err := c.ListBestSellers(context.Background(), BestSellerLimit)
	if err != nil || len(ps) != 1 {
		t.Fatalf("cold listing should go live: %v %d", err, len(ps))
	}
	if src.listings != 1 {
		t.Fatalf("expected live call, got %d", src.listings)
	}
}

func TestCachedRetriever_KeepsSnapshotOnFailedRefresh(t *testing.T) {
	src := &fakeRetriever{products: []Product{{Name: "A"}}, faqs: map[string]string{"1": "x"}}
	c := NewCachedRetriever(src)
	c.Refresh(context.Background())

	src.err = errors.New("store down")
	c.Refresh(context.Background())

	ps, err := c.ListBestSellers(context.Background(), BestSellerLimit)
	if err != nil || len(ps) != 1 {
		t.Fatalf("snapshot lost after failed refresh: %v %d", err, len(ps))
	}
}
