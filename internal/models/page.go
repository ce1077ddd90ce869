package models

// Page mirrors the paginated listing envelope the catalog views consume.
// Number is the current page, 0-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if size <= 0 {
		size = 10
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalPages:    totalPages,
		TotalElements: total,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
