// File: pkg/concat/emit.go
package concat

import (
	"os"
	"strings"

	"promptcat/pkg/diag"
	"promptcat/pkg/notebook"

	"go.uber.org/zap"
)

// recordDelimiter frames every record body. Downstream consumers parse on
// this exact line, so the framing is byte-stable: path, delimiter, body,
// delimiter, each terminated by a single newline.
const recordDelimiter = "---"

// LineWriter is the capability the emitter needs from the output sink.
type LineWriter interface {
	WriteLine(line string) error
}

// Emitter classifies one file, produces its textual body, and writes the
// delimited record. Every failure is scoped to the single file: it is
// reported through the diagnostic reporter and folded into the Result, and
// the caller moves on to the next entry.
type Emitter struct {
	out      LineWriter
	reporter *diag.Reporter
	logger   *zap.Logger
}

// NewEmitter creates an Emitter writing records to out.
func NewEmitter(out LineWriter, reporter *diag.Reporter, logger *zap.Logger) *Emitter {
	return &Emitter{out: out, reporter: reporter, logger: logger}
}

// Emit processes a single eligible file under cfg.
func (e *Emitter) Emit(path string, cfg Config) Result {
	if looksBinary(path, e.logger) {
		e.logger.Debug("Skipping binary file", zap.String("filePath", path))
		e.reporter.BinarySkip(path)
		return Result{Path: path, Status: StatusSkippedBinary}
	}

	if strings.HasSuffix(path, notebook.Ext) && cfg.Converter != nil {
		body, err := cfg.Converter.Convert(path)
		if err != nil {
			e.reporter.ConvertError(path, err)
			return Result{Path: path, Status: StatusFailed, Err: err}
		}
		return e.record(path, body)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		e.reporter.FileError(path, err)
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	return e.record(path, string(content))
}

// record writes the three-part framed record for path.
func (e *Emitter) record(path, body string) Result {
	for _, line := range []string{path, recordDelimiter, body, recordDelimiter} {
		if err := e.out.WriteLine(line); err != nil {
			e.reporter.FileError(path, err)
			return Result{Path: path, Status: StatusFailed, Err: err}
		}
	}
	e.logger.Debug("Emitted record", zap.String("filePath", path), zap.Int("bodyBytes", len(body)))
	return Result{Path: path, Status: StatusEmitted}
}
