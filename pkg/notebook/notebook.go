// Package notebook converts Jupyter notebook files into a readable markup
// body for embedding in the output stream. Two interchangeable strategies
// implement the Converter capability: an in-process renderer and an
// external conversion tool driven as a subprocess.
package notebook

import "fmt"

// Ext is the file extension that marks a file as a notebook.
const Ext = ".ipynb"

// InternalTool is the converter name that selects the in-process renderer
// instead of an external tool.
const InternalTool = "internal"

// Format selects the markup dialect a conversion produces.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatAsciiDoc Format = "asciidoc"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatAsciiDoc:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported notebook format %q (expected %q or %q)", s, FormatMarkdown, FormatAsciiDoc)
}

// Converter produces markup text from a notebook file path.
type Converter interface {
	Convert(path string) (string, error)
}
