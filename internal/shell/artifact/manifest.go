package artifact

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tunedeck/resolved/internal/core/machine"
	"github.com/tunedeck/resolved/internal/core/refmodel"
)

// =============================================================================
// Resolution Manifest
// =============================================================================

// Manifest bundles the resolved configuration handed to job submission.
type Manifest struct {
	Location       string            `json:"location" yaml:"location"`
	MachineSpec    machine.Spec      `json:"machine_spec" yaml:"machine_spec"`
	ReferenceModel refmodel.Metadata `json:"reference_model" yaml:"reference_model"`
	ImageURIs      map[string]string `json:"image_uris,omitempty" yaml:"image_uris,omitempty"`
	Instruction    string            `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	DisplayName    string            `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	UploadModel    bool              `json:"upload_model" yaml:"upload_model"`
	DeployModel    bool              `json:"deploy_model" yaml:"deploy_model"`
}

// WriteManifest serializes the manifest as YAML at path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return WriteFile(path, string(data))
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	content, err := ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal([]byte(content), &m); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal manifest %s: %w", path, err)
	}
	return m, nil
}
