// Package artifact reads and writes the files a pipeline step exchanges
// with its orchestrator: plain content files, operation-tracking records,
// and resolution manifests.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalPath rewrites a gs:// object path to its FUSE mount location.
// Non-GCS paths pass through unchanged.
func LocalPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "gs://"); ok {
		return "/gcs/" + rest
	}
	return path
}

// ReadFile returns the contents of the file at path, resolving gs:// paths
// through the local mount.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(LocalPath(path))
	if err != nil {
		return "", fmt.Errorf("read artifact %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes content to path, creating parent directories and
// resolving gs:// paths through the local mount.
func WriteFile(path, content string) error {
	local := LocalPath(path)
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return fmt.Errorf("create artifact directory for %s: %w", path, err)
	}
	if err := os.WriteFile(local, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}
