// File: pkg/notebook/internal.go
package notebook

import (
	"fmt"
	"os"
	"strings"
)

// InternalConverter renders notebooks in-process, without any external
// tooling.
type InternalConverter struct {
	format Format
}

// NewInternalConverter returns the in-process conversion strategy.
func NewInternalConverter(format Format) *InternalConverter {
	return &InternalConverter{format: format}
}

// Convert parses the notebook at path and renders it. A parse failure
// fails the whole file; there is no partial output.
func (c *InternalConverter) Convert(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read notebook: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return "", err
	}
	return doc.Render(c.format), nil
}

// Render produces the markup body for the document. Code cells become a
// fenced block of source followed by one fenced block per captured output;
// markdown cells pass their source through followed by a blank line. Cells
// of any other type are skipped. The format only selects the fencing
// syntax, never the traversal.
func (d *Document) Render(format Format) string {
	var b strings.Builder
	for _, cell := range d.Cells {
		switch cell.Type {
		case cellTypeCode:
			writeFenced(&b, format, cell.Source)
			for _, out := range cell.Outputs {
				writeFenced(&b, format, out)
			}
		case cellTypeMarkdown:
			b.WriteString(strings.TrimRight(cell.Source, "\n"))
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeFenced(b *strings.Builder, format Format, text string) {
	fence := "```"
	if format == FormatAsciiDoc {
		fence = "----"
	}
	b.WriteString(fence)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteString("\n")
	b.WriteString(fence)
	b.WriteString("\n\n")
}
