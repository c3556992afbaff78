package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHCLogAdapter(t *testing.T) {
	t.Parallel()

	t.Run("verbose emits debug with sorted fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := newLogger(&buf, true, true)
		logger.Debug("HTTP Request", map[string]interface{}{
			"url":    "https://brigade.example.com/v2/projects",
			"method": "GET",
		})

		output := buf.String()
		assert.Contains(t, output, "[DEBUG] brig: HTTP Request")
		assert.Contains(t, output, "method=GET url=https://brigade.example.com/v2/projects")
	})

	t.Run("quiet suppresses debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := newLogger(&buf, false, true)
		logger.Debug("hidden", nil)
		logger.Info("hidden", nil)
		logger.Warn("shown", map[string]interface{}{"status": 503})

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, "[WARN]  brig: shown: status=503")
	})

	t.Run("error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		newLogger(&buf, false, true).Error("boom", nil)
		assert.Contains(t, buf.String(), "[ERROR] brig: boom")
	})
}

func TestKeyValues(t *testing.T) {
	t.Parallel()

	assert.Empty(t, keyValues(nil))
	assert.Equal(t,
		[]interface{}{"a", 1, "b", "two"},
		keyValues(map[string]interface{}{"b": "two", "a": 1}))
}
