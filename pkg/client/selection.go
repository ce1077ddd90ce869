package client

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SelectionMode names the active bulk action. Modes are mutually
// exclusive.
type SelectionMode string

const (
	ModeNone    SelectionMode = ""
	ModeDelete  SelectionMode = "delete"
	ModeSoldOut SelectionMode = "soldout"
)

// BatchResult reports the outcome of the bulk call for one id.
type BatchResult struct {
	ID  int64
	Err error
}

// Selection is the admin bulk-selection controller: while a mode is
// active, toggling ids builds the pending batch instead of navigating.
type Selection struct {
	client  *Client
	browser *Browser

	mu   sync.Mutex
	mode SelectionMode
	ids  map[int64]struct{}
}

func NewSelection(client *Client, browser *Browser) *Selection {
	return &Selection{
		client:  client,
		browser: browser,
		ids:     make(map[int64]struct{}),
	}
}

// Enter activates a mode, discarding any prior selection. Entering
// sold-out mode forces the browser's stock filter to in-stock-only and
// resets it, since sold-out items cannot be targeted.
func (s *Selection) Enter(ctx context.Context, mode SelectionMode) error {
	s.mu.Lock()
	s.mode = mode
	s.ids = make(map[int64]struct{})
	s.mu.Unlock()

	if mode == ModeSoldOut {
		return s.browser.ForceInStock(ctx)
	}
	return nil
}

func (s *Selection) Mode() SelectionMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Toggle flips the id's membership in the pending batch. It is a no-op
// outside an active mode.
func (s *Selection) Toggle(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeNone {
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Selected() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Confirm runs the mode's call once per selected id, concurrently, and
// returns a per-id result set so the caller can see which ids failed.
// Regardless of per-id outcomes the browser is reset for a clean refetch
// and the mode is exited.
func (s *Selection) Confirm(ctx context.Context) ([]BatchResult, error) {
	s.mu.Lock()
	mode := s.mode
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	if mode == ModeNone {
		return nil, nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	results := make([]BatchResult, len(ids))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			var err error
			switch mode {
			case ModeDelete:
				err = s.client.DeleteProduct(groupCtx, id)
			case ModeSoldOut:
				err = s.client.UpdateProductStock(groupCtx, id, true)
			}
			results[i] = BatchResult{ID: id, Err: err}
			return nil
		})
	}
	// goroutines report through results, never through the group error
	_ = g.Wait()

	s.mu.Lock()
	s.mode = ModeNone
	s.ids = make(map[int64]struct{})
	s.mu.Unlock()

	if err := s.browser.Refresh(ctx); err != nil {
		return results, err
	}
	return results, nil
}

// Cancel discards the selection and exits the mode with no side effects.
func (s *Selection) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeNone
	s.ids = make(map[int64]struct{})
}
