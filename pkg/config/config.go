// File: pkg/config/config.go

// Package config loads the optional user configuration file. The file
// supplies defaults for the command-line surface; explicit flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	appDirName = "promptcat"
	fileName   = "config.toml"
)

// File mirrors the keys accepted in config.toml. Zero values mean "not set":
// the command layer applies a key only when the matching flag was left at its
// default on the command line.
type File struct {
	IncludeHidden   bool     `toml:"include_hidden"`
	IgnoreGitignore bool     `toml:"ignore_gitignore"`
	Ignore          []string `toml:"ignore"`
	Nbconvert       string   `toml:"nbconvert"`
	NbconvertFormat string   `toml:"nbconvert_format"`
	Debug           bool     `toml:"debug"`
}

// Path returns the canonical location of the user configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appDirName, fileName)
}

// Load reads the configuration file from its canonical location. A missing
// file is not an error and yields the zero File.
func Load() (File, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses the configuration file at path.
func LoadFrom(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}
