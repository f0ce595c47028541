// File: pkg/notebook/external.go
package notebook

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExternalConverter shells out to a caller-named conversion tool. The
// notebook is copied into the platform temp directory under a unique base
// name so the tool's derived output file can be located without clashing
// with concurrent runs, then the tool is invoked as
// `<tool> --to <format> <copy>` and its output file read back.
type ExternalConverter struct {
	tool   string
	format Format
	logger *zap.Logger
}

// NewExternalConverter probes the tool with a version query and returns
// the subprocess strategy. A failed probe returns an error so the caller
// can disable external conversion for the remainder of the run; the probe
// happens once here, never per file.
func NewExternalConverter(tool string, format Format, logger *zap.Logger) (*ExternalConverter, error) {
	if err := exec.Command(tool, "--version").Run(); err != nil {
		return nil, fmt.Errorf("failed to probe %s: %w", tool, err)
	}
	logger.Debug("External converter probe succeeded", zap.String("tool", tool))
	return &ExternalConverter{tool: tool, format: format, logger: logger}, nil
}

// Convert runs the external tool against a temporary copy of the notebook
// and returns the produced markup. The temporary input is removed on every
// exit path. There is no timeout: a hung tool blocks the run.
func (c *ExternalConverter) Convert(path string) (string, error) {
	tmpIn := filepath.Join(os.TempDir(), uuid.NewString()+Ext)
	if err := copyFile(path, tmpIn); err != nil {
		return "", fmt.Errorf("failed to stage notebook copy: %w", err)
	}
	defer func() {
		if err := os.Remove(tmpIn); err != nil {
			c.logger.Warn("Failed to remove temporary notebook copy", zap.String("filePath", tmpIn), zap.Error(err))
		}
	}()

	cmd := exec.Command(c.tool, "--to", string(c.format), tmpIn)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	c.logger.Debug("Invoking external converter",
		zap.String("tool", c.tool),
		zap.String("format", string(c.format)),
		zap.String("input", tmpIn))
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			c.logger.Debug("External converter stderr", zap.String("tool", c.tool), zap.String("stderr", msg))
		}
		return "", fmt.Errorf("failed to run %s: %w", c.tool, err)
	}

	outPath := strings.TrimSuffix(tmpIn, Ext) + c.outputExt()
	defer os.Remove(outPath)
	converted, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to read converter output %s: %w", outPath, err)
	}
	return string(converted), nil
}

// outputExt is the extension the tool gives its output file by convention:
// .md for the markdown format, the format name otherwise.
func (c *ExternalConverter) outputExt() string {
	if c.format == FormatMarkdown {
		return ".md"
	}
	return "." + string(c.format)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o600)
}
