package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	lines []string
}

func (m *memSink) WriteLine(line string) error {
	m.lines = append(m.lines, line)
	return nil
}

type deadSink struct{}

func (deadSink) WriteLine(string) error { return errors.New("stderr is gone") }

func TestReporterMessageForms(t *testing.T) {
	sink := &memSink{}
	r := NewReporter(sink, false)

	r.PathMissing("/tmp/missing")
	r.UnsupportedType("/dev/null")
	r.BinarySkip("photo.jpg")
	r.FileError("notes.txt", errors.New("permission denied"))
	r.ConvertError("book.ipynb", errors.New("malformed notebook JSON"))
	r.ToolMissing("jupyter-nbconvert")

	assert.Equal(t, []string{
		"Path does not exist: /tmp/missing",
		"Skipping /dev/null: unsupported file type",
		"Warning: Skipping binary file photo.jpg",
		"Error processing file notes.txt: permission denied",
		"Error converting .ipynb file book.ipynb: malformed notebook JSON",
		"Warning: jupyter-nbconvert command not found",
	}, sink.lines)
}

func TestReporterColorizedOutput(t *testing.T) {
	// fatih/color disables itself on non-terminals; force it on so the
	// escape sequences are observable.
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	sink := &memSink{}
	r := NewReporter(sink, true)

	r.BinarySkip("blob.bin")
	r.PathMissing("/gone")

	require.Len(t, sink.lines, 2)
	assert.True(t, strings.HasPrefix(sink.lines[0], "\x1b["), "warnings should carry a color escape")
	assert.Contains(t, sink.lines[0], "Warning: Skipping binary file blob.bin")
	assert.Contains(t, sink.lines[1], "Path does not exist: /gone")
}

func TestReporterSurvivesBrokenSink(t *testing.T) {
	r := NewReporter(deadSink{}, false)

	// Must not panic; diagnostics are best-effort.
	r.FileError("x", errors.New("boom"))
	r.BinarySkip("y")
}
