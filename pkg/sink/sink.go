// Package sink provides the line-oriented destinations that record and
// diagnostic output are written through. A sink is either backed by an
// arbitrary writer (typically a standard stream) or by an append-target
// file on disk; callers only ever see the WriteLine capability.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
)

// Sink buffers line writes to its destination. It is not safe for
// concurrent use; the traversal is single-threaded and writes one
// record at a time.
type Sink struct {
	w    *bufio.Writer
	file *os.File
	lock *flock.Flock
}

// NewWriterSink wraps an existing writer, typically os.Stdout or
// os.Stderr. Close flushes the buffer but leaves the writer open.
func NewWriterSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// NewFileSink opens path in append mode, creating it if needed, and takes
// an advisory lock on it so that concurrent invocations sharing one output
// file cannot interleave their records. The lock is held until Close.
func NewFileSink(path string) (*Sink, error) {
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock output file %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			return nil, fmt.Errorf("failed to open output file %s: %w (unlock also failed: %v)", path, err, unlockErr)
		}
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	return &Sink{w: bufio.NewWriter(f), file: f, lock: lock}, nil
}

// WriteLine writes line followed by a single newline.
func (s *Sink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered bytes and, for file-backed sinks, releases the
// lock and closes the file. It must be called on every exit path.
func (s *Sink) Close() error {
	flushErr := s.w.Flush()
	if s.file == nil {
		return flushErr
	}
	closeErr := s.file.Close()
	unlockErr := s.lock.Unlock()
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return closeErr
	}
	return unlockErr
}
