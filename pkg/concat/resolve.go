// File: pkg/concat/resolve.go
package concat

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// ResolveRoots produces the ordered work list for a run. Explicit
// arguments are used verbatim, in order, without existence checks (the
// walker reports missing roots). With no arguments and a non-interactive
// standard input, paths are read from stdin instead: one per line, blank
// lines dropped, and anything after the first ':' discarded so grep-style
// `path:line:text` output can be piped in directly. Stdin-derived paths
// are deduplicated (first occurrence wins) and must exist at resolution
// time.
func ResolveRoots(args []string, stdin io.Reader, interactive bool, logger *zap.Logger) []string {
	if len(args) > 0 {
		return args
	}
	if interactive {
		logger.Debug("No path arguments and standard input is a terminal")
		return nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		logger.Warn("Failed to read standard input", zap.Error(err))
		return nil
	}

	seen := make(map[string]bool)
	var roots []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		path := line
		if i := strings.IndexByte(line, ':'); i >= 0 {
			path = line[:i]
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		if _, err := os.Stat(path); err != nil {
			logger.Debug("Dropping stdin path that does not exist", zap.String("path", path))
			continue
		}
		roots = append(roots, path)
	}
	logger.Debug("Resolved roots from standard input", zap.Int("rootCount", len(roots)))
	return roots
}
