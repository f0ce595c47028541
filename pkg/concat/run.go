// File: pkg/concat/run.go
package concat

import (
	"promptcat/pkg/diag"
	"promptcat/pkg/notebook"

	"go.uber.org/zap"
)

// Run executes one concatenation pass over roots in order. Every failure is
// reported and survived at the scope of a single file or root, so Run always
// runs to completion and returns the tallies for the caller's summary.
func Run(roots []string, opts Options, out LineWriter, reporter *diag.Reporter, logger *zap.Logger) Stats {
	cfg := Config{
		IncludeHidden:   opts.IncludeHidden,
		IgnoreGitignore: opts.IgnoreGitignore,
		IgnorePatterns:  opts.IgnorePatterns,
		Converter:       buildConverter(opts, reporter, logger),
	}

	emitter := NewEmitter(out, reporter, logger)
	walker := NewWalker(emitter, reporter, logger)
	for _, root := range roots {
		logger.Debug("Processing root", zap.String("rootPath", root))
		walker.Walk(WorkItem{Path: root, Config: cfg})
	}

	stats := walker.Stats()
	logger.Info("Run complete",
		zap.Int("rootCount", len(roots)),
		zap.Int("filesEmitted", stats.Emitted),
		zap.Int("binariesSkipped", stats.SkippedBinary),
		zap.Int("failures", stats.Failed))
	return stats
}

// buildConverter materializes the notebook converter named by the options.
// An empty tool name disables conversion entirely. When the external tool
// fails its startup probe the run is downgraded to embedding raw notebook
// bytes instead of aborting.
func buildConverter(opts Options, reporter *diag.Reporter, logger *zap.Logger) notebook.Converter {
	switch opts.NbconvertTool {
	case "":
		return nil
	case notebook.InternalTool:
		return notebook.NewInternalConverter(opts.NbconvertFormat)
	default:
		conv, err := notebook.NewExternalConverter(opts.NbconvertTool, opts.NbconvertFormat, logger)
		if err != nil {
			logger.Warn("External notebook tool unavailable",
				zap.String("toolName", opts.NbconvertTool),
				zap.Error(err))
			reporter.ToolMissing(opts.NbconvertTool)
			return nil
		}
		return conv
	}
}
