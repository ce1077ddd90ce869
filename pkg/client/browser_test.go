package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServer serves the filter endpoint from a fixed product set,
// recording every query it receives.
type catalogServer struct {
	mu       sync.Mutex
	products []Product
	queries  []url.Values
	delay    time.Duration
}

func (s *catalogServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		products := s.products
		delay := s.delay
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}

		query := r.URL.Query()
		page, _ := strconv.Atoi(query.Get("page"))
		size, _ := strconv.Atoi(query.Get("size"))
		if size == 0 {
			size = 10
		}

		start := page * size
		end := start + size
		if start > len(products) {
			start = len(products)
		}
		if end > len(products) {
			end = len(products)
		}

		totalPages := (len(products) + size - 1) / size
		respondSuccess(w, http.StatusOK, Page[Product]{
			Content:       products[start:end],
			TotalPages:    totalPages,
			TotalElements: int64(len(products)),
			Size:          size,
			Number:        page,
			First:         page == 0,
			Last:          page >= totalPages-1,
		}, "")
	}
}

func (s *catalogServer) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return nil
	}
	return s.queries[len(s.queries)-1]
}

func (s *catalogServer) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func fixtureProducts(n int) []Product {
	products := make([]Product, n)
	for i := range products {
		products[i] = Product{ID: int64(i + 1), Name: "Piece"}
	}
	return products
}

func newTestBrowser(t *testing.T, s *catalogServer, pageSize int) *Browser {
	t.Helper()
	server := httptest.NewServer(s.handler())
	t.Cleanup(server.Close)
	return NewBrowser(New(server.URL), pageSize)
}

func TestBrowser_FirstLoadSendsFullFilterSet(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7)}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	categoryID := int64(3)
	inStock := true
	require.NoError(t, browser.SetCategory(ctx, &categoryID))
	require.NoError(t, browser.SetOnlyInStock(ctx, &inStock))
	require.NoError(t, browser.SetOrder(ctx, "nuevos"))
	browser.SetName(ctx, "bowl")

	assert.Eventually(t, func() bool {
		q := catalog.lastQuery()
		return q != nil && q.Get("nombre") == "bowl"
	}, time.Second, 10*time.Millisecond)

	q := catalog.lastQuery()
	assert.Equal(t, "3", q.Get("categoria"))
	assert.Equal(t, "true", q.Get("soloEnStock"))
	assert.Equal(t, "nuevos", q.Get("orden"))
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "3", q.Get("size"))
}

func TestBrowser_NameFilterDebounces(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(4)}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	// rapid keystrokes must collapse into a single fetch
	browser.SetName(ctx, "b")
	browser.SetName(ctx, "bo")
	browser.SetName(ctx, "bow")
	browser.SetName(ctx, "bowl")

	assert.Eventually(t, func() bool {
		return catalog.queryCount() > 0
	}, time.Second, 10*time.Millisecond)
	time.Sleep(2 * DebounceDelay)

	assert.Equal(t, 1, catalog.queryCount())
	assert.Equal(t, "bowl", catalog.lastQuery().Get("nombre"))
}

func TestBrowser_LoadMoreAccumulatesWithoutDuplicates(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7)}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	// totalPages starts at the unknown placeholder, so the first page loads
	assert.True(t, browser.HasMore())
	require.NoError(t, browser.LoadMore(ctx))
	assert.Len(t, browser.Items(), 3)
	assert.Equal(t, 3, browser.TotalPages())

	require.NoError(t, browser.LoadMore(ctx))
	require.NoError(t, browser.LoadMore(ctx))

	items := browser.Items()
	assert.Len(t, items, 7)
	seen := make(map[int64]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}

	// order matches page request order for a fixed filter set
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID)
	}

	assert.False(t, browser.HasMore())
	require.NoError(t, browser.LoadMore(ctx))
	assert.Equal(t, 3, catalog.queryCount(), "no fetch past the last page")
}

func TestBrowser_FilterChangeResetsListAndPage(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7)}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	require.NoError(t, browser.LoadMore(ctx))
	require.NoError(t, browser.LoadMore(ctx))
	assert.Len(t, browser.Items(), 6)
	assert.Equal(t, 1, browser.Page())

	categoryID := int64(2)
	require.NoError(t, browser.SetCategory(ctx, &categoryID))

	assert.Equal(t, 0, browser.Page())
	assert.Len(t, browser.Items(), 3)
	assert.Equal(t, "0", catalog.lastQuery().Get("page"))
}

func TestBrowser_ForceInStockAlwaysResets(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7)}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	inStock := true
	require.NoError(t, browser.SetOnlyInStock(ctx, &inStock))
	require.NoError(t, browser.LoadMore(ctx))
	assert.Equal(t, 1, browser.Page())

	// already in-stock-only, still pins and resets
	require.NoError(t, browser.ForceInStock(ctx))

	assert.Equal(t, 0, browser.Page())
	assert.Equal(t, "true", catalog.lastQuery().Get("soloEnStock"))
	assert.Equal(t, "0", catalog.lastQuery().Get("page"))
}

func TestBrowser_FetchFailureKeepsLastKnownState(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7)}
	server := httptest.NewServer(catalog.handler())
	t.Cleanup(server.Close)

	browser := NewBrowser(New(server.URL), 3)
	ctx := context.Background()

	require.NoError(t, browser.LoadMore(ctx))
	require.Len(t, browser.Items(), 3)

	server.Close()
	assert.Error(t, browser.LoadMore(ctx))

	// the accumulated list survives the failed fetch
	assert.Len(t, browser.Items(), 3)
	// and the guard was cleared, so the next attempt still runs
	assert.Error(t, browser.LoadMore(ctx))
}

func TestBrowser_StaleResponseDiscarded(t *testing.T) {
	catalog := &catalogServer{products: fixtureProducts(7), delay: 100 * time.Millisecond}
	browser := newTestBrowser(t, catalog, 3)
	ctx := context.Background()

	// the slow LoadMore starts first; the filter change supersedes it
	done := make(chan error, 1)
	go func() { done <- browser.LoadMore(ctx) }()
	time.Sleep(20 * time.Millisecond)

	catalog.mu.Lock()
	catalog.delay = 0
	catalog.mu.Unlock()

	categoryID := int64(2)
	require.NoError(t, browser.SetCategory(ctx, &categoryID))
	itemsAfterFilter := browser.Items()

	require.NoError(t, <-done)

	// the superseded response must not have touched the newer state
	assert.Equal(t, itemsAfterFilter, browser.Items())
	assert.Equal(t, 0, browser.Page())
}
