// Package listquery implements the filter/sort/paginate transform used by
// every table screen of the merchant dashboard. It operates on in-memory
// collections: filtering is a case-insensitive substring match OR'd across
// all visible fields, sorting is stable, and page numbers clamp instead of
// erroring.
package listquery

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultPageSize matches the table page size used across the dashboard.
const DefaultPageSize = 5

// Query describes a single list request: free-text search, sort key and
// direction, and a 1-based page number.
type Query struct {
	Search   string `form:"search" json:"search"`
	SortKey  string `form:"sort_by" json:"sort_by"`
	Desc     bool   `form:"desc" json:"desc"`
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"per_page" json:"per_page"`
}

// Field is one visible column of a record: a display string used for
// filtering, and optionally a numeric value used for sorting.
type Field struct {
	Key     string
	Text    string
	Num     float64
	Numeric bool
}

// Text builds a string field.
func Text(key, value string) Field {
	return Field{Key: key, Text: value}
}

// Num builds a numeric field. Its display text, used for substring
// filtering, is the plain decimal rendering of the value.
func Num(key string, value float64) Field {
	return Field{Key: key, Text: strconv.FormatFloat(value, 'f', -1, 64), Num: value, Numeric: true}
}

// Result is one page of a filtered, sorted collection.
type Result[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// Apply runs the full transform: filter, stable sort, paginate. The fields
// callback renders a record's visible columns; it is invoked once per record.
func Apply[T any](items []T, q Query, fields func(T) []Field) Result[T] {
	rendered := make([][]Field, len(items))
	for i, it := range items {
		rendered[i] = fields(it)
	}

	// Filter: keep records where any field contains the search term.
	idx := make([]int, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for i := range items {
		if needle == "" || matches(rendered[i], needle) {
			idx = append(idx, i)
		}
	}

	// Stable sort; ties and records without the sort key keep their
	// relative order.
	if q.SortKey != "" {
		sort.SliceStable(idx, func(a, b int) bool {
			cmp, ok := compare(rendered[idx[a]], rendered[idx[b]], q.SortKey)
			if !ok || cmp == 0 {
				return false
			}
			if q.Desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	// Paginate with clamping.
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(idx)
	totalPages := (total + size - 1) / size
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, 0, end-start)
	for _, i := range idx[start:end] {
		out = append(out, items[i])
	}

	return Result[T]{
		Items:      out,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		Total:      total,
	}
}

func matches(fields []Field, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f.Text), needle) {
			return true
		}
	}
	return false
}

// compare orders record a against record b on the given key, returning a
// negative, zero or positive result. The second return value is false when
// either record lacks the key, in which case the pair stays in original
// order.
func compare(a, b []Field, key string) (int, bool) {
	fa, okA := find(a, key)
	fb, okB := find(b, key)
	if !okA || !okB {
		return 0, false
	}
	if fa.Numeric && fb.Numeric {
		switch {
		case fa.Num < fb.Num:
			return -1, true
		case fa.Num > fb.Num:
			return 1, true
		}
		return 0, true
	}
	return strings.Compare(strings.ToLower(fa.Text), strings.ToLower(fb.Text)), true
}

func find(fields []Field, key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
