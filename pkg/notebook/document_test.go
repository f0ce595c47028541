package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	raw := `{
  "cells": [
    {"cell_type": "markdown", "source": ["# Title\n", "intro"]},
    {"cell_type": "code", "source": ["a = 1\n", "a + 1"], "outputs": [
      {"output_type": "execute_result", "data": {"text/plain": ["2"]}},
      {"output_type": "stream", "text": ["stdout noise\n"]}
    ]},
    {"cell_type": "raw", "source": ["ignored later"]}
  ],
  "nbformat": 4
}`

	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 3)

	assert.Equal(t, "markdown", doc.Cells[0].Type)
	assert.Equal(t, "# Title\nintro", doc.Cells[0].Source)
	assert.Empty(t, doc.Cells[0].Outputs)

	assert.Equal(t, "code", doc.Cells[1].Type)
	assert.Equal(t, "a = 1\na + 1", doc.Cells[1].Source)
	// Only outputs carrying a text/plain payload are kept; the stream
	// output has none.
	assert.Equal(t, []string{"2"}, doc.Cells[1].Outputs)

	assert.Equal(t, "raw", doc.Cells[2].Type)
}

func TestParseDocumentScalarSource(t *testing.T) {
	raw := `{"cells": [{"cell_type": "code", "source": "print(42)", "outputs": [{"data": {"text/plain": "42"}}]}]}`

	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 1)
	assert.Equal(t, "print(42)", doc.Cells[0].Source)
	assert.Equal(t, []string{"42"}, doc.Cells[0].Outputs)
}

func TestParseDocumentEmptyCells(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"cells": []}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Cells)
}

func TestParseDocumentFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed_json", raw: `{"cells": [`},
		{name: "not_json_at_all", raw: `hello world`},
		{name: "missing_cells", raw: `{"nbformat": 4}`},
		{name: "cells_not_an_array", raw: `{"cells": {"cell_type": "code"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
