// Package ignore loads and evaluates the exclusion rules applied during
// traversal: rules read from per-directory ignore files and patterns
// supplied by the caller.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// RuleFileName is the per-directory ignore file consulted while walking.
const RuleFileName = ".gitignore"

// LoadDirectoryRules returns the rules declared by dir's own ignore file.
// It returns nil when the file is absent, when ignoreGitignore disables
// rule files entirely, or when inherited already carries rules from an
// ancestor directory: the first directory on a branch that produces a
// non-empty rule set locks it in for all descendants.
func LoadDirectoryRules(dir string, ignoreGitignore bool, inherited []string, logger *zap.Logger) []string {
	if ignoreGitignore || len(inherited) > 0 {
		return nil
	}
	path := filepath.Join(dir, RuleFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		}
		return nil
	}
	rules := ParseRules(string(content))
	logger.Debug("Loaded ignore file", zap.String("filePath", path), zap.Int("ruleCount", len(rules)))
	return rules
}

// ParseRules extracts rules from ignore-file content: one rule per line,
// whitespace trimmed, blank lines and comment lines starting with '#'
// discarded.
func ParseRules(content string) []string {
	var rules []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rules = append(rules, trimmed)
	}
	return rules
}
