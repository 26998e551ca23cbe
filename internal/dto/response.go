package dto

import "time"

const timestampLayout = "2006-01-02 15:04"

// FormatTime renders timestamps the way the admin tables show them.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

// ── list queries ──

// ListQuery search + pagination parameters shared by the admin listings.
type ListQuery struct {
	Search     string `form:"search"          binding:"omitempty,max=100"`
	CategoryID string `form:"teacher_type_id" binding:"omitempty,uuid"`
	Category   string `form:"category"        binding:"omitempty,max=20"`
	Page       int    `form:"page"            binding:"omitempty,min=1"`
}

// GetPage page number with default.
func (q *ListQuery) GetPage() int {
	if q.Page <= 0 {
		return 1
	}
	return q.Page
}

// PageResult one page of a listing.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult computes the page count. pageSize 0 means one page holds everything.
func NewPageResult[T any](items []T, total int64, page, pageSize int) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
		if totalPages == 0 {
			totalPages = 1
		}
	}
	return &PageResult[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
