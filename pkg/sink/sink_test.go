package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	require.NoError(t, s.WriteLine("first"))
	require.NoError(t, s.WriteLine("second line"))
	require.NoError(t, s.Close())

	assert.Equal(t, "first\nsecond line\n", buf.String())
}

func TestWriterSinkEmptyLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	require.NoError(t, s.WriteLine(""))
	require.NoError(t, s.Close())

	assert.Equal(t, "\n", buf.String())
}

func TestFileSinkCreatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	s, err := NewFileSink(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteLine("hello"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	first, err := NewFileSink(path)
	require.NoError(t, err)
	require.NoError(t, first.WriteLine("run one"))
	require.NoError(t, first.Close())

	// A later invocation appends instead of truncating, and the lock
	// released by Close lets it in.
	second, err := NewFileSink(path)
	require.NoError(t, err)
	require.NoError(t, second.WriteLine("run two"))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run one\nrun two\n", string(data))
}

func TestFileSinkUnwritableDirectory(t *testing.T) {
	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing-dir", "out.txt"))
	assert.Error(t, err)
}
