package sqlite

import (
	"strings"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// parseRFC3339 parses a stored timestamp, wrapping failures with the field name.
func parseRFC3339(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, screamingtom.Errorf(screamingtom.EINTERNAL, "invalid %s timestamp: %v", field, err)
	}
	return t, nil
}

// appendPagination appends LIMIT/OFFSET clauses when set.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
