// Package diag emits the user-facing diagnostic lines. Every message the
// tool can print on the error sink is produced here, one method per kind,
// so the wording stays stable and testable in one place. Diagnostics are
// plain lines, never part of the record stream.
package diag

import (
	"fmt"

	"github.com/fatih/color"
)

// LineWriter is the capability a reporter needs from its sink.
type LineWriter interface {
	WriteLine(line string) error
}

// Reporter writes diagnostics to the error sink. Warnings are rendered
// yellow and errors red when colorize is set (the caller decides based on
// whether the sink is a terminal); otherwise lines are written verbatim.
type Reporter struct {
	sink     LineWriter
	colorize bool
	warn     *color.Color
	fail     *color.Color
}

// NewReporter creates a Reporter over sink.
func NewReporter(sink LineWriter, colorize bool) *Reporter {
	return &Reporter{
		sink:     sink,
		colorize: colorize,
		warn:     color.New(color.FgYellow),
		fail:     color.New(color.FgRed),
	}
}

// PathMissing reports a supplied root path that does not exist.
func (r *Reporter) PathMissing(path string) {
	r.line(r.fail, fmt.Sprintf("Path does not exist: %s", path))
}

// UnsupportedType reports an entry that is neither a regular file nor a
// directory, such as a broken symlink or a device node.
func (r *Reporter) UnsupportedType(path string) {
	r.line(r.warn, fmt.Sprintf("Skipping %s: unsupported file type", path))
}

// BinarySkip reports a file excluded by the binary-content heuristic.
func (r *Reporter) BinarySkip(path string) {
	r.line(r.warn, fmt.Sprintf("Warning: Skipping binary file %s", path))
}

// FileError reports a failure while reading a file or listing a directory.
func (r *Reporter) FileError(path string, err error) {
	r.line(r.fail, fmt.Sprintf("Error processing file %s: %v", path, err))
}

// ConvertError reports a failed notebook conversion.
func (r *Reporter) ConvertError(path string, err error) {
	r.line(r.fail, fmt.Sprintf("Error converting .ipynb file %s: %v", path, err))
}

// ToolMissing reports that the external converter failed its startup probe.
func (r *Reporter) ToolMissing(tool string) {
	r.line(r.warn, fmt.Sprintf("Warning: %s command not found", tool))
}

// line writes one diagnostic. Write failures are swallowed: the error sink
// is best-effort and a broken stderr must not abort the traversal.
func (r *Reporter) line(c *color.Color, msg string) {
	if r.colorize {
		msg = c.Sprint(msg)
	}
	_ = r.sink.WriteLine(msg)
}
