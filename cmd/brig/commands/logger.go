package commands

import (
	"io"
	"sort"

	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/hashicorp/go-hclog"
)

// hclogAdapter adapts hclog.Logger to brigade.Logger.
type hclogAdapter struct {
	logger hclog.Logger
}

// newLogger creates the CLI logger. Verbose mode lowers the level to debug,
// which also surfaces the HTTP request/response log lines.
func newLogger(w io.Writer, verbose, noColor bool) brigade.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	colorOption := hclog.AutoColor
	if noColor {
		colorOption = hclog.ColorOff
	}

	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "brig",
			Level:  level,
			Output: w,
			Color:  colorOption,
		}),
	}
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, keyValues(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, keyValues(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, keyValues(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, keyValues(fields)...)
}

// keyValues flattens fields into hclog's alternating key/value form, sorted
// by key.
func keyValues(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}
