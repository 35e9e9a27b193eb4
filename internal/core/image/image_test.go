package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Resolve Tests
// =============================================================================

func TestResolve_TPUSuffixWithBackup(t *testing.T) {
	got := Resolve("sft", "my-project", "us-central1", "tuning-images", "rlhf_", "v1.2", "TPU_V3", 64)
	assert.Equal(t, "us-central1-docker.pkg.dev/my-project/tuning-images/rlhf_sft_tpu_backup:v1.2", got)
}

func TestResolve_GPUTestSuffixSkipsBackup(t *testing.T) {
	// The 8x A100 80GB test shape is exempt from the backup suffix.
	got := Resolve("sft", "my-project", "us-central1", "tuning-images", "rlhf_", "v1.2", "NVIDIA_A100_80GB", 8)
	assert.Equal(t, "us-central1-docker.pkg.dev/my-project/tuning-images/rlhf_sft_gpu_test:v1.2", got)
}

func TestResolve_SuffixMatrix(t *testing.T) {
	tests := []struct {
		name             string
		imageName        string
		acceleratorType  string
		acceleratorCount int
		wantImage        string
	}{
		{"cpu-only-ignores-accelerator", "text_importer", "TPU_V3", 64, "text_importer_backup"},
		{"cpu-only-no-accelerator", "text_comparison_importer", "", 0, "text_comparison_importer_backup"},
		{"tpu", "reward_model", "TPU_V3", 32, "reward_model_tpu_backup"},
		{"gpu-test", "reinforcer", "NVIDIA_A100_80GB", 8, "reinforcer_gpu_test"},
		{"80gb-not-eight-is-plain-gpu", "reinforcer", "NVIDIA_A100_80GB", 4, "reinforcer_gpu_backup"},
		{"40gb-is-plain-gpu", "infer", "NVIDIA_TESLA_A100", 8, "infer_gpu_backup"},
		{"no-accelerator-is-plain-gpu", "sft", "", 0, "sft_gpu_backup"},
		{"non-backup-image", "evaluator", "TPU_V3", 32, "evaluator_tpu"},
		{"non-backup-gpu", "evaluator", "NVIDIA_TESLA_A100", 1, "evaluator_gpu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.imageName, "p", "l", "r", "", "latest", tt.acceleratorType, tt.acceleratorCount)
			assert.Equal(t, "l-docker.pkg.dev/p/r/"+tt.wantImage+":latest", got)
		})
	}
}

func TestResolve_NoCoordinateValidation(t *testing.T) {
	// Pure string composition: empty coordinates pass through unchecked.
	got := Resolve("sft", "", "", "", "", "", "TPU_V3", 64)
	assert.Equal(t, "-docker.pkg.dev///sft_tpu_backup:", got)
}

// =============================================================================
// Registry Tests
// =============================================================================

func TestRegistry_Resolve(t *testing.T) {
	registry := Registry{
		Project:          "vertex-private",
		Location:         "us-docker",
		ArtifactRegistry: "restricted",
		ImageNamePrefix:  "private_",
		Tag:              "20240115",
	}

	got := registry.Resolve("infer", "TPU_V3", 32)
	assert.Equal(t, "us-docker-docker.pkg.dev/vertex-private/restricted/private_infer_tpu_backup:20240115", got)
}

func TestRegistry_ResolveMatchesUnboundForm(t *testing.T) {
	registry := Registry{
		Project:          "p",
		Location:         "l",
		ArtifactRegistry: "r",
		ImageNamePrefix:  "x_",
		Tag:              "t",
	}

	bound := registry.Resolve("sft", "NVIDIA_A100_80GB", 8)
	unbound := Resolve("sft", "p", "l", "r", "x_", "t", "NVIDIA_A100_80GB", 8)
	assert.Equal(t, unbound, bound)
}
