// File: pkg/concat/binary.go
package concat

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
)

// probeWindow is how many leading bytes the binary heuristic examines.
const probeWindow = 8192

// looksBinary reports whether any byte in the file's probe window has the
// high bit set. A file the probe cannot open or read is deliberately
// reported as not binary, so the full read that follows surfaces the real
// error instead of a silent skip.
func looksBinary(path string, logger *zap.Logger) bool {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("Binary probe could not open file", zap.String("filePath", path), zap.Error(err))
		return false
	}
	defer f.Close()

	buf := make([]byte, probeWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Debug("Binary probe could not read file", zap.String("filePath", path), zap.Error(err))
		return false
	}
	for _, b := range buf[:n] {
		if b > 0x7f {
			return true
		}
	}
	return false
}
