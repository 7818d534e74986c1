// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "regexp"

// Identifier formats arXiv has used: the modern YYMM.NNNNN form with an
// optional version suffix, and the pre-2007 archive/NNNNNNN form.
var (
	modernIDPattern = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)
	legacyIDPattern = regexp.MustCompile(`^[a-z-]+(\.[A-Z]{2})?/\d{7}$`)
)

// ValidID reports whether s looks like an arXiv identifier.
func ValidID(s string) bool {
	return modernIDPattern.MatchString(s) || legacyIDPattern.MatchString(s)
}
