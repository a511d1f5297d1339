package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 16
	maxPageSize     = 100
	maxVisiblePages = 5
)

// Pagination carries everything the UI needs to render the pager.
type Pagination struct {
	CurrentPage  int64   `json:"currentPage"`
	TotalPages   int64   `json:"totalPages"`
	TotalItems   int64   `json:"totalItems"`
	ItemsPerPage int64   `json:"itemsPerPage"`
	HasNextPage  bool    `json:"hasNextPage"`
	HasPrevPage  bool    `json:"hasPrevPage"`
	StartItem    int64   `json:"startItem"`
	EndItem      int64   `json:"endItem"`
	PageNumbers  []int64 `json:"pageNumbers"`
	NextPage     *int64  `json:"nextPage"`
	PrevPage     *int64  `json:"prevPage"`
	Showing      string  `json:"showing"`
}

// parsePage clamps to >= 1; anything unparseable becomes page 1.
func parsePage(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value < 1 {
		return 1
	}
	return value
}

// parseLimit clamps to [1, maxPageSize]; unparseable or zero input falls back
// to the default page size, negative input clamps to 1.
func parseLimit(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return defaultPageSize
	}
	if value < 1 {
		return 1
	}
	if value > maxPageSize {
		return maxPageSize
	}
	return value
}

// computePagination derives the page window metadata for a filtered result set
// of the given total size. page and limit must already be clamped.
func computePagination(page, limit, total int64) Pagination {
	skip := (page - 1) * limit

	totalPages := int64(0)
	if total > 0 {
		totalPages = int64(math.Ceil(float64(total) / float64(limit)))
	}

	hasNextPage := page < totalPages
	hasPrevPage := page > 1

	startItem := int64(0)
	if total > 0 {
		startItem = skip + 1
	}
	endItem := skip + limit
	if endItem > total {
		endItem = total
	}

	p := Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  hasNextPage,
		HasPrevPage:  hasPrevPage,
		StartItem:    startItem,
		EndItem:      endItem,
		PageNumbers:  pageNumbers(page, totalPages, maxVisiblePages),
		Showing:      fmt.Sprintf("%d-%d of %d products", startItem, endItem, total),
	}

	if hasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if hasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}

	return p
}

// pageNumbers builds the sliding window of page numbers shown in the pager:
// centered on currentPage, clamped to [1, totalPages], and shifted back to
// full width when the current page sits near either edge.
func pageNumbers(currentPage, totalPages, maxVisible int64) []int64 {
	half := maxVisible / 2

	start := currentPage - half
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxVisible {
		start = end - maxVisible + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int64, 0, maxVisible)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
