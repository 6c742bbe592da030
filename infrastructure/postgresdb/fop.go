package postgresdb

import (
	"bytes"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// AddOrderByClause adds an ORDER BY clause to the query buffer. The primary
// key is appended as a secondary sort so pages stay stable when the order
// field has duplicate values.
func AddOrderByClause(buf *bytes.Buffer, orderField, pkField, direction string) error {
	quotedOrderField, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	quotedPKField, err := QuoteIdentifier(pkField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	if direction != ASC && direction != DESC {
		return fmt.Errorf("invalid order direction: %s", direction)
	}

	fmt.Fprintf(buf, " ORDER BY %s %s", quotedOrderField, direction)

	if orderField != pkField {
		fmt.Fprintf(buf, ", %s %s", quotedPKField, direction)
	}

	return nil
}

// AddLimitOffsetClause adds LIMIT/OFFSET clauses to the query buffer using
// named arguments.
func AddLimitOffsetClause(buf *bytes.Buffer, data pgx.NamedArgs, limit, offset int) {
	buf.WriteString(" LIMIT @limit OFFSET @offset")
	data["limit"] = limit
	data["offset"] = offset
}
