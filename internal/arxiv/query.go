// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"
	"time"
)

// compactDate is the date layout the arXiv query grammar expects.
const compactDate = "20060102"

// AuthorQuery returns a field-scoped phrase search for an author name.
// The name is embedded as-is; callers that expect embedded quotes must
// escape them first.
func AuthorQuery(name string) string {
	return fmt.Sprintf("au:%q", name)
}

// CategoryQuery returns a category-scoped query for a taxonomy code.
func CategoryQuery(code string) string {
	return "cat:" + code
}

// DateRangeQuery returns a range query over field between start and end,
// both inclusive per the API's own semantics. An empty field defaults to
// "submittedDate".
func DateRangeQuery(start, end time.Time, field string) string {
	if field == "" {
		field = "submittedDate"
	}
	return fmt.Sprintf("%s:[%s TO %s]", field, start.Format(compactDate), end.Format(compactDate))
}

// Combine parenthesizes each sub-query and joins them with op ("AND" when
// empty). Zero sub-queries yield an empty string; the caller must not send
// that to the API.
func Combine(queries []string, op string) string {
	if len(queries) == 0 {
		return ""
	}
	if op == "" {
		op = "AND"
	}
	parts := make([]string, len(queries))
	for i, q := range queries {
		parts[i] = "(" + q + ")"
	}
	return strings.Join(parts, " "+op+" ")
}
