package fop

import "strconv"

// Pagination defaults.
const (
	DefaultPageNumber = 1
	DefaultPageLimit  = 10
)

// Page represents offset pagination: a 1-based page number and the requested
// items per page.
type Page struct {
	Number int
	Limit  int
}

// ParsePage parses page and limit query values. Absent or non-numeric values
// fall back to the defaults rather than failing, as do non-positive values.
func ParsePage(pageNumber string, pageLimit string) Page {
	number := DefaultPageNumber
	if pageNumber != "" {
		if n, err := strconv.Atoi(pageNumber); err == nil && n > 0 {
			number = n
		}
	}

	limit := DefaultPageLimit
	if pageLimit != "" {
		if n, err := strconv.Atoi(pageLimit); err == nil && n > 0 {
			limit = n
		}
	}

	return Page{
		Number: number,
		Limit:  limit,
	}
}

// Offset returns the number of records to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
