package model

// Page carries list query parameters after defaulting and sanitizing.
type Page struct {
	Page    int
	PerPage int
	Sort    string
	SortBy  string
	Search  string
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages computes the page count for size rows, at least zero.
func (p Page) TotalPages(size int) int {
	if p.PerPage <= 0 || size <= 0 {
		return 0
	}
	pages := size / p.PerPage
	if size%p.PerPage != 0 {
		pages++
	}
	return pages
}
