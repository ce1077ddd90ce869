package client

import (
	"context"
	"log"
	"sync"
	"time"
)

// DebounceDelay is how long the name filter settles before a fetch runs.
const DebounceDelay = 300 * time.Millisecond

// Browser accumulates catalog pages under a filter set. Changing any
// filter resets to page 0 and clears the list; LoadMore appends the next
// page. Responses are merged by id so overlapping deliveries never
// duplicate items, and each fetch carries a generation number so a stale
// response never overwrites newer state.
type Browser struct {
	client *Client

	mu            sync.Mutex
	name          string
	pendingName   string
	category      *int64
	onlyInStock   *bool
	order         string
	pageSize      int
	items         []Product
	page          int
	totalPages    int
	totalElements int64
	inFlight      bool
	generation    uint64
	debounce      *time.Timer
	debounceDelay time.Duration
}

func NewBrowser(client *Client, pageSize int) *Browser {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Browser{
		client:        client,
		pageSize:      pageSize,
		debounceDelay: DebounceDelay,
	}
}

// SetName updates the free-text filter. The fetch is debounced: rapid
// keystrokes collapse into one request after the value settles.
func (b *Browser) SetName(ctx context.Context, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pendingName = name
	if b.debounce != nil {
		b.debounce.Stop()
	}
	b.debounce = time.AfterFunc(b.debounceDelay, func() {
		b.mu.Lock()
		if b.name == b.pendingName {
			b.mu.Unlock()
			return
		}
		b.name = b.pendingName
		b.resetLocked()
		b.mu.Unlock()

		if err := b.fetch(ctx); err != nil {
			log.Printf("catalog fetch failed: %v", err)
		}
	})
}

func (b *Browser) SetCategory(ctx context.Context, categoryID *int64) error {
	b.mu.Lock()
	b.category = categoryID
	b.resetLocked()
	b.mu.Unlock()
	return b.fetch(ctx)
}

func (b *Browser) SetOnlyInStock(ctx context.Context, onlyInStock *bool) error {
	b.mu.Lock()
	b.onlyInStock = onlyInStock
	b.resetLocked()
	b.mu.Unlock()
	return b.fetch(ctx)
}

func (b *Browser) SetOrder(ctx context.Context, order string) error {
	b.mu.Lock()
	b.order = order
	b.resetLocked()
	b.mu.Unlock()
	return b.fetch(ctx)
}

// ForceInStock pins the stock filter to in-stock-only and resets, even if
// it already was. Bulk sold-out mode uses this since sold-out items cannot
// be targeted.
func (b *Browser) ForceInStock(ctx context.Context) error {
	inStock := true
	b.mu.Lock()
	b.onlyInStock = &inStock
	b.resetLocked()
	b.mu.Unlock()
	return b.fetch(ctx)
}

// Refresh clears the accumulated list and reloads page 0 with the current
// filters.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.resetLocked()
	b.mu.Unlock()
	return b.fetch(ctx)
}

// LoadMore fetches the next page. It is a no-op while a page fetch is
// already in flight or when there are no more pages.
func (b *Browser) LoadMore(ctx context.Context) error {
	b.mu.Lock()
	if b.inFlight || !b.hasMoreLocked() {
		b.mu.Unlock()
		return nil
	}
	b.inFlight = true
	if b.totalPages != 0 {
		// while totalPages is unknown this is the first load of page 0
		b.page++
	}
	b.mu.Unlock()
	return b.fetch(ctx)
}

// HasMore reports whether another page exists. While totalPages is still
// the unknown placeholder 0 it returns true so the first page always
// loads.
func (b *Browser) HasMore() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasMoreLocked()
}

func (b *Browser) hasMoreLocked() bool {
	return b.totalPages == 0 || b.page < b.totalPages-1
}

func (b *Browser) Items() []Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]Product, len(b.items))
	copy(items, b.items)
	return items
}

func (b *Browser) Page() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

func (b *Browser) TotalPages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPages
}

func (b *Browser) TotalElements() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalElements
}

func (b *Browser) resetLocked() {
	b.page = 0
	b.totalPages = 0
	b.items = nil
}

func (b *Browser) filterLocked() ProductFilter {
	return ProductFilter{
		Name:        b.name,
		CategoryID:  b.category,
		OnlyInStock: b.onlyInStock,
		Order:       b.order,
		Page:        b.page,
		Size:        b.pageSize,
	}
}

// fetch runs one filter request. The generation number taken before the
// call makes the latest request the only writer: a response arriving after
// a newer request started is discarded. The in-flight guard is cleared
// whether the fetch succeeded or not.
func (b *Browser) fetch(ctx context.Context) error {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	filter := b.filterLocked()
	b.mu.Unlock()

	page, err := b.client.FilterProducts(ctx, filter)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.inFlight = false
	if gen != b.generation {
		// a newer fetch owns the state now
		return nil
	}
	if err != nil {
		// list keeps its last-known state
		return err
	}

	b.totalPages = page.TotalPages
	b.totalElements = page.TotalElements
	b.mergeLocked(page.Content)
	return nil
}

func (b *Browser) mergeLocked(incoming []Product) {
	seen := make(map[int64]struct{}, len(b.items))
	for _, item := range b.items {
		seen[item.ID] = struct{}{}
	}
	for _, item := range incoming {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		b.items = append(b.items, item)
		seen[item.ID] = struct{}{}
	}
}
