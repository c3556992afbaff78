package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectManifest = `apiVersion: brigade.sh/v2
kind: Project
metadata:
  id: hello-world
description: Demo project
spec:
  eventSubscriptions:
  - source: brigade.sh/cli
    types:
    - exec
  workerTemplate:
    logLevel: DEBUG
    defaultConfigFiles:
      brigade.js: console.log("hello");
`

func TestLoadProjectManifest(t *testing.T) {
	t.Parallel()

	t.Run("from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "project.yaml")
		require.NoError(t, os.WriteFile(path, []byte(projectManifest), 0o600))

		project, err := loadProjectManifest(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello-world", project.Metadata.ID)
		assert.Equal(t, "Demo project", project.Description)
		require.Len(t, project.Spec.EventSubscriptions, 1)
		assert.Equal(t, []string{"exec"}, project.Spec.EventSubscriptions[0].Types)
		assert.Equal(t, "DEBUG", string(project.Spec.WorkerTemplate.LogLevel))
		assert.Equal(t, `console.log("hello");`, project.Spec.WorkerTemplate.DefaultConfigFiles["brigade.js"])
	})

	t.Run("from stdin", func(t *testing.T) {
		t.Parallel()

		project, err := loadProjectManifest("-", strings.NewReader(projectManifest))
		require.NoError(t, err)
		assert.Equal(t, "hello-world", project.Metadata.ID)
	})

	t.Run("json is accepted", func(t *testing.T) {
		t.Parallel()

		project, err := loadProjectManifest("-", strings.NewReader(`{"metadata":{"id":"p1"},"spec":{"workerTemplate":{}}}`))
		require.NoError(t, err)
		assert.Equal(t, "p1", project.Metadata.ID)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := loadProjectManifest("", nil)
		require.ErrorIs(t, err, constants.ErrFileRequired)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadProjectManifest(filepath.Join(t.TempDir(), "absent.yaml"), nil)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("wrong kind", func(t *testing.T) {
		t.Parallel()

		_, err := loadProjectManifest("-", strings.NewReader("kind: Event\nmetadata:\n  id: p1\n"))
		require.ErrorIs(t, err, constants.ErrManifestKindInvalid)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := loadProjectManifest("-", strings.NewReader("metadata:\n  id: p1\nspecs: {}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse project manifest")
	})
}
