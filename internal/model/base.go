package model

import "time"

// Base contains the fields shared by every stored record. IDs are
// server-assigned serials and are never taken from request payloads.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Pagination represents the list query parameters every resource accepts.
type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the parameters to their valid ranges.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the SQL offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo is the pagination block returned with every list response.
type PageInfo struct {
	TotalCount  int `json:"total_count"`
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// NewPageInfo derives the page block from a total row count. TotalPages is
// always ceil(total/pageSize) and CurrentPage is clamped into range when the
// collection is non-empty.
func NewPageInfo(total int, p Pagination) PageInfo {
	pages := 0
	if total > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	current := p.Page
	if pages > 0 && current > pages {
		current = pages
	}
	return PageInfo{
		TotalCount:  total,
		PageSize:    p.PageSize,
		CurrentPage: current,
		TotalPages:  pages,
	}
}

// ListFilter carries the optional server-side search term. Only the
// center-like resources honor it; person lists are filtered client-side.
type ListFilter struct {
	Pagination
	Search string `form:"search"`
}
