// Package concat is the traversal-and-emission engine: it resolves the
// initial work list, walks it depth-first applying exclusion rules, and
// writes one delimited record per eligible file.
package concat

import "promptcat/pkg/notebook"

// Options is the run surface assembled by the CLI layer.
type Options struct {
	IncludeHidden   bool     // process dot-prefixed entries
	IgnoreGitignore bool     // do not consult per-directory ignore files
	IgnorePatterns  []string // caller-supplied exclusion globs, apply everywhere
	NbconvertTool   string   // "" disables notebook conversion; notebook.InternalTool selects the in-process renderer
	NbconvertFormat notebook.Format
}

// Config is the processing state in effect for one traversal branch. It is
// an immutable value: descending into a directory derives exactly one copy
// per level and nothing ever mutates a config in place, which keeps the
// rule-inheritance lock-in auditable.
type Config struct {
	IncludeHidden   bool
	IgnoreGitignore bool
	IgnorePatterns  []string
	InheritedRules  []string // rules locked in by the nearest ancestor ignore file; empty until first loaded
	Converter       notebook.Converter
}

// Rules is the effective exclusion rule set for this branch: inherited
// rules first, caller-supplied patterns after. Matching is existential, so
// the order only matters for traceability.
func (c Config) Rules() []string {
	rules := make([]string, 0, len(c.InheritedRules)+len(c.IgnorePatterns))
	rules = append(rules, c.InheritedRules...)
	return append(rules, c.IgnorePatterns...)
}

// WorkItem is one scheduled path together with the config in effect when
// it was scheduled. Items are consumed immediately; the traversal never
// accumulates them.
type WorkItem struct {
	Path   string
	Config Config
}
