package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	k8syaml "sigs.k8s.io/yaml"
)

// readManifest reads a YAML or JSON manifest from path, or from stdin when
// path is "-".
func readManifest(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, constants.ErrFileRequired
	}

	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest from stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return data, nil
}

// loadProjectManifest decodes a project manifest. Unknown fields are rejected
// and a kind other than Project is an error.
func loadProjectManifest(path string, stdin io.Reader) (*brigade.Project, error) {
	data, err := readManifest(path, stdin)
	if err != nil {
		return nil, err
	}

	var project brigade.Project

	err = k8syaml.UnmarshalStrict(data, &project)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project manifest %s: %w", path, err)
	}

	if project.Kind != "" && project.Kind != brigade.KindProject {
		return nil, fmt.Errorf("%w: got %q, want %q", constants.ErrManifestKindInvalid, project.Kind, brigade.KindProject)
	}

	return &project, nil
}
