// Package fop provides filter, order, and pagination support for list
// queries.
package fop

import "fmt"

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// By represents a field used to order by and the direction of the ordering.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a new By value with a field and direction.
func NewBy(field string, direction string) By {
	return By{
		Field:     field,
		Direction: direction,
	}
}

// ParseOrder resolves a caller-supplied sort field against an allow-list of
// orderable fields. The allow-list maps the external query-parameter name to
// the storage column. An unknown sort field is an error; an empty one falls
// back to the default ordering. Any sortOrder other than "desc" sorts
// ascending.
func ParseOrder(allowed map[string]string, sortBy string, sortOrder string, defaultBy By) (By, error) {
	if sortBy == "" {
		return defaultBy, nil
	}

	field, exists := allowed[sortBy]
	if !exists {
		return By{}, fmt.Errorf("unknown sort field: %s", sortBy)
	}

	direction := ASC
	if sortOrder == "desc" {
		direction = DESC
	}

	return NewBy(field, direction), nil
}
