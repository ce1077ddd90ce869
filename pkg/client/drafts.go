package client

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/rs/xid"
)

// LocalFile is an image attached to a draft that has not been uploaded
// yet.
type LocalFile struct {
	Name string
	Data []byte
}

// Draft is a staged product with pending local files plus any image ids
// already uploaded (when re-editing a draft populated from persisted
// data). Each draft gets a stable locally-unique id at creation so edits
// and deletes cannot retarget the wrong entry.
type Draft struct {
	ID      string
	Product ProductRequest
	Files   []LocalFile
}

// DraftList stages products for batch creation, in order.
type DraftList struct {
	client *Client

	mu        sync.Mutex
	drafts    []Draft
	editingID string
}

func NewDraftList(client *Client) *DraftList {
	return &DraftList{client: client}
}

// Add appends the draft, or replaces the draft under edit when one is
// set. It returns the draft's id.
func (l *DraftList) Add(draft Draft) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.editingID != "" {
		for i := range l.drafts {
			if l.drafts[i].ID == l.editingID {
				draft.ID = l.editingID
				l.drafts[i] = draft
				l.editingID = ""
				return draft.ID
			}
		}
		l.editingID = ""
	}

	draft.ID = xid.New().String()
	l.drafts = append(l.drafts, draft)
	return draft.ID
}

// Edit marks the draft as being edited in place; the next Add replaces
// it.
func (l *DraftList) Edit(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.drafts {
		if l.drafts[i].ID == id {
			l.editingID = id
			return true
		}
	}
	return false
}

// Remove deletes the draft and clears edit state if that draft was being
// edited.
func (l *DraftList) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.drafts {
		if l.drafts[i].ID == id {
			l.drafts = append(l.drafts[:i], l.drafts[i+1:]...)
			break
		}
	}
	if l.editingID == id {
		l.editingID = ""
	}
}

func (l *DraftList) Drafts() []Draft {
	l.mu.Lock()
	defer l.mu.Unlock()
	drafts := make([]Draft, len(l.drafts))
	copy(drafts, l.drafts)
	return drafts
}

func (l *DraftList) Editing() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.editingID
}

func (l *DraftList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.drafts)
}

// SaveAll validates every draft, then persists them in list order: for
// each draft it uploads
// the pending files one by one, combines the resulting ids with the
// already-uploaded ones, and creates the product. A failure mid-list
// returns immediately, leaving earlier creations persisted and the list
// untouched; there is no rollback. On full success the list is cleared.
func (l *DraftList) SaveAll(ctx context.Context) error {
	l.mu.Lock()
	drafts := make([]Draft, len(l.drafts))
	copy(drafts, l.drafts)
	l.mu.Unlock()

	// validate the whole batch before any upload or creation goes out
	for _, draft := range drafts {
		if err := validateProduct(draft.Product); err != nil {
			return err
		}
	}

	for _, draft := range drafts {
		imageIDs := append([]int64(nil), draft.Product.ImageIDs...)

		for _, file := range draft.Files {
			image, err := l.client.UploadImage(ctx, file.Name, bytes.NewReader(file.Data))
			if err != nil {
				return fmt.Errorf("could not upload %s: %w", file.Name, err)
			}
			imageIDs = append(imageIDs, image.ID)
		}

		req := draft.Product
		req.ImageIDs = imageIDs
		if _, err := l.client.CreateProduct(ctx, req); err != nil {
			return fmt.Errorf("could not create product %q: %w", req.Name, err)
		}
	}

	l.mu.Lock()
	l.drafts = nil
	l.editingID = ""
	l.mu.Unlock()
	return nil
}

// SaveAllAndNotify fetches the stored newsletter template, lets compose
// rework it, sends the newsletter, then runs the same batch save.
func (l *DraftList) SaveAllAndNotify(ctx context.Context, compose func(Newsletter) Newsletter) error {
	template, err := l.client.GetNewsletterTemplate(ctx)
	if err != nil {
		return err
	}

	newsletter := *template
	if compose != nil {
		newsletter = compose(newsletter)
	}

	if _, err := l.client.SendNewsletter(ctx, newsletter); err != nil {
		return err
	}
	return l.SaveAll(ctx)
}
