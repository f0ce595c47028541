// File: pkg/concat/walker.go
package concat

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"promptcat/pkg/diag"
	"promptcat/pkg/ignore"

	"go.uber.org/zap"
)

// Walker drives the recursive traversal. Each work item is classified with
// os.Stat (symlinks are followed, so a link to a directory descends into it),
// directories descend with a copy-on-descend config, and every failure is
// confined to the item that produced it.
type Walker struct {
	emitter  *Emitter
	reporter *diag.Reporter
	logger   *zap.Logger
	stats    Stats
}

// NewWalker creates a Walker dispatching eligible files to emitter.
func NewWalker(emitter *Emitter, reporter *diag.Reporter, logger *zap.Logger) *Walker {
	return &Walker{emitter: emitter, reporter: reporter, logger: logger}
}

// Stats returns the tallies accumulated across all Walk calls so far.
func (w *Walker) Stats() Stats {
	return w.stats
}

// Walk processes one root from the resolved work list. A root that does not
// exist is reported as missing and skipped; the run continues with the
// remaining roots. Root files are checked against the caller-supplied
// patterns before emission, root directories are never matched themselves.
func (w *Walker) Walk(item WorkItem) {
	info, err := os.Stat(item.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.reporter.PathMissing(item.Path)
			w.stats.add(Result{Path: item.Path, Status: StatusFailed, Err: err})
			return
		}
		w.reporter.FileError(item.Path, err)
		w.stats.add(Result{Path: item.Path, Status: StatusFailed, Err: err})
		return
	}

	if info.Mode().IsRegular() {
		if ignore.Excluded(item.Path, item.Config.Rules()) {
			w.logger.Debug("Skipping excluded file", zap.String("filePath", item.Path))
			return
		}
	}
	w.dispatch(item, info)
}

// walk processes an entry discovered inside a directory. Its parent already
// cleared it against the hidden policy and the ignore rules, so only the
// type classification remains. An entry that vanished between enumeration
// and stat, or a symlink whose target is gone, stats as nonexistent and is
// reported as an unsupported type.
func (w *Walker) walk(item WorkItem) {
	info, err := os.Stat(item.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.reporter.UnsupportedType(item.Path)
			return
		}
		w.reporter.FileError(item.Path, err)
		w.stats.add(Result{Path: item.Path, Status: StatusFailed, Err: err})
		return
	}
	w.dispatch(item, info)
}

// dispatch routes a classified item: regular files to the emitter,
// directories into descent, anything else (device nodes, sockets, pipes)
// to the unsupported-type diagnostic.
func (w *Walker) dispatch(item WorkItem, info os.FileInfo) {
	switch {
	case info.Mode().IsRegular():
		w.stats.add(w.emitter.Emit(item.Path, item.Config))
	case info.IsDir():
		w.walkDir(item)
	default:
		w.logger.Debug("Skipping unsupported entry",
			zap.String("filePath", item.Path),
			zap.String("mode", info.Mode().String()))
		w.reporter.UnsupportedType(item.Path)
	}
}

// walkDir descends into a directory. The child config is derived once per
// directory: ignore-file rules load only while no ancestor rules are in
// effect, so the first loaded ignore file governs the whole subtree.
// Entries are visited in the order the filesystem returns them.
func (w *Walker) walkDir(item WorkItem) {
	child := item.Config
	if rules := ignore.LoadDirectoryRules(item.Path, child.IgnoreGitignore, child.InheritedRules, w.logger); len(rules) > 0 {
		child.InheritedRules = rules
	}

	dir, err := os.Open(item.Path)
	if err != nil {
		w.reporter.FileError(item.Path, err)
		w.stats.add(Result{Path: item.Path, Status: StatusFailed, Err: err})
		return
	}
	entries, err := dir.ReadDir(-1)
	dir.Close()
	if err != nil {
		// ReadDir can fail partway; report, but keep whatever it returned.
		w.reporter.FileError(item.Path, err)
		w.stats.add(Result{Path: item.Path, Status: StatusFailed, Err: err})
	}

	for _, entry := range entries {
		name := entry.Name()
		if !child.IncludeHidden && strings.HasPrefix(name, ".") {
			w.logger.Debug("Skipping hidden entry", zap.String("entryName", name), zap.String("parentDir", item.Path))
			continue
		}
		childPath := filepath.Join(item.Path, name)
		if ignore.Excluded(childPath, child.Rules()) {
			w.logger.Debug("Skipping excluded entry", zap.String("filePath", childPath))
			continue
		}
		w.walk(WorkItem{Path: childPath, Config: child})
	}
}
