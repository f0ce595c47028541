// Package logging configures the process-wide zap logger. The structured
// log is operational detail on stderr; it is separate from both the record
// stream and the plain diagnostic lines.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the process logger, set by Setup.
var Logger *zap.Logger

// Setup builds the logger and installs it as the zap global. Debug mode
// selects the human-readable development config at debug level; otherwise
// the production config is capped at warn so a quiet run stays quiet.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return Logger, err
	}

	zap.ReplaceGlobals(Logger)
	return Logger, nil
}
