// File: pkg/notebook/document.go
package notebook

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Cell types recognized by the renderer. Anything else is carried through
// parsing and skipped at render time.
const (
	cellTypeCode     = "code"
	cellTypeMarkdown = "markdown"
)

// Cell is one notebook cell: its type tag, its joined source text, and the
// plain-text payloads of its outputs (code cells only; empty otherwise).
type Cell struct {
	Type    string
	Source  string
	Outputs []string
}

// Document is the parsed representation of one notebook file.
type Document struct {
	Cells []Cell
}

// ParseDocument parses raw notebook JSON. The on-disk format is loose in
// practice (cell sources and output payloads appear both as plain strings
// and as arrays of fragments), so fields are probed with gjson rather than
// bound to a rigid schema. Malformed JSON or a missing cells array fails
// the whole document.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed notebook JSON")
	}
	cells := gjson.GetBytes(data, "cells")
	if !cells.Exists() {
		return nil, errors.New("notebook JSON has no cells array")
	}
	if !cells.IsArray() {
		return nil, fmt.Errorf("notebook cells is %s, expected an array", cells.Type)
	}

	doc := &Document{}
	for _, raw := range cells.Array() {
		cell := Cell{
			Type:   raw.Get("cell_type").String(),
			Source: joinedText(raw.Get("source")),
		}
		for _, out := range raw.Get("outputs").Array() {
			if payload := out.Get(`data.text/plain`); payload.Exists() {
				cell.Outputs = append(cell.Outputs, joinedText(payload))
			}
		}
		doc.Cells = append(doc.Cells, cell)
	}
	return doc, nil
}

// joinedText flattens a source-style value: an array of string fragments
// is concatenated with no separator, anything else is taken as-is.
func joinedText(r gjson.Result) string {
	if !r.IsArray() {
		return r.String()
	}
	var joined string
	for _, part := range r.Array() {
		joined += part.String()
	}
	return joined
}
