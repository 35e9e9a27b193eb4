// Package image contains pure functions for composing container image
// URIs. This is part of the Functional Core - all functions are pure with
// no I/O; no existence checks are performed on the composed URIs.
package image

import (
	"fmt"

	"github.com/tunedeck/resolved/internal/core/machine"
)

// =============================================================================
// Image Name Registries
// =============================================================================

// Images that run without accelerators and therefore carry no accelerator
// suffix.
var cpuOnlyImages = map[string]bool{
	"text_importer":            true,
	"text_comparison_importer": true,
}

// Images with a _backup build published alongside the primary one. The
// GPU-test build is exempt.
var backupImages = map[string]bool{
	"sft":                      true,
	"reward_model":             true,
	"reinforcer":               true,
	"infer":                    true,
	"text_importer":            true,
	"text_comparison_importer": true,
}

// =============================================================================
// URI Resolution
// =============================================================================

// Resolve composes a fully qualified container image URI from a base image
// name, the accelerator it targets, and the registry coordinates. The
// suffix is derived from the accelerator: CPU-only images get none, TPU v3
// gets _tpu, the 8x A100 80GB test shape gets _gpu_test, everything else
// gets _gpu. Backup-eligible images append _backup except for _gpu_test.
func Resolve(imageName, project, location, artifactRegistry, imageNamePrefix, tag, acceleratorType string, acceleratorCount int) string {
	var suffix string
	switch {
	case cpuOnlyImages[imageName]:
		suffix = ""
	case acceleratorType == machine.AcceleratorTPUV3:
		suffix = "_tpu"
	case acceleratorType == machine.AcceleratorA10080GB && acceleratorCount == 8:
		suffix = "_gpu_test"
	default:
		suffix = "_gpu"
	}

	if backupImages[imageName] && suffix != "_gpu_test" {
		suffix += "_backup"
	}

	return fmt.Sprintf(
		"%s-docker.pkg.dev/%s/%s/%s%s%s:%s",
		location, project, artifactRegistry, imageNamePrefix, imageName, suffix, tag,
	)
}

// =============================================================================
// Private Registry Binding
// =============================================================================

// Registry is a set of registry coordinates bound once from configuration.
// Resolving through it leaves only the image name and accelerator
// characteristics as call-time parameters.
type Registry struct {
	Project          string
	Location         string
	ArtifactRegistry string
	ImageNamePrefix  string
	Tag              string
}

// Resolve composes an image URI inside the bound registry.
func (r Registry) Resolve(imageName, acceleratorType string, acceleratorCount int) string {
	return Resolve(
		imageName,
		r.Project,
		r.Location,
		r.ArtifactRegistry,
		r.ImageNamePrefix,
		r.Tag,
		acceleratorType,
		acceleratorCount,
	)
}
