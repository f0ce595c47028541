// File: pkg/ignore/match.go
package ignore

import (
	"path"
	"path/filepath"
	"strings"
)

// Excluded reports whether p matches any rule in ruleSet. A path is
// excluded when its base name matches a rule as a single-segment glob
// (`*`, `?`, bracket classes; wildcards never cross a separator), or when
// a rule carries a trailing slash and, with the slash stripped, matches
// the path's location relative to its own parent directory. Matching is
// existential: the first matching rule excludes, and rule order never
// changes the outcome.
func Excluded(p string, ruleSet []string) bool {
	base := filepath.Base(p)
	for _, rule := range ruleSet {
		if matchSegment(rule, base) {
			return true
		}
		if trimmed, ok := strings.CutSuffix(rule, "/"); ok && matchSegment(trimmed, locationInParent(p)) {
			return true
		}
	}
	return false
}

// matchSegment evaluates a single-segment glob against one name. A
// malformed pattern matches nothing.
func matchSegment(pattern, name string) bool {
	ok, err := path.Match(pattern, filepath.ToSlash(name))
	return err == nil && ok
}

// locationInParent is p expressed relative to its parent directory.
func locationInParent(p string) string {
	rel, err := filepath.Rel(filepath.Dir(p), p)
	if err != nil {
		return filepath.Base(p)
	}
	return rel
}
