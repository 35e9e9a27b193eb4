package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunedeck/resolved/internal/core/machine"
	"github.com/tunedeck/resolved/internal/core/refmodel"
)

// =============================================================================
// LocalPath Tests
// =============================================================================

func TestLocalPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"gcs", "gs://bucket/dir/file.json", "/gcs/bucket/dir/file.json"},
		{"local", "/tmp/out/file.json", "/tmp/out/file.json"},
		{"relative", "out/file.json", "out/file.json"},
		{"gcs-prefix-not-at-start", "/data/gs://x", "/data/gs://x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalPath(tt.in))
		})
	}
}

// =============================================================================
// Read/Write Tests
// =============================================================================

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")
	require.NoError(t, WriteFile(path, "resolved"))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resolved", got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

// =============================================================================
// Tracking Record Tests
// =============================================================================

func TestModelResourceName(t *testing.T) {
	assert.Equal(t,
		"projects/my-project/locations/us-central1/models/tuned-bison@3",
		ModelResourceName("my-project", "us-central1", "tuned-bison@3"),
	)
}

func TestModelResourceURI(t *testing.T) {
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/p/locations/us-central1/models/m",
		ModelResourceURI("us-central1", "projects/p/locations/us-central1/models/m"),
	)
}

func TestWriteTrackingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking", "resources.json")
	name := ModelResourceName("p", "us-central1", "m")
	require.NoError(t, WriteTrackingRecord(path, Resource{
		ResourceType: "Model",
		ResourceURI:  ModelResourceURI("us-central1", name),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record TrackingRecord
	require.NoError(t, json.Unmarshal(data, &record))
	require.Len(t, record.Resources, 1)
	assert.Equal(t, "Model", record.Resources[0].ResourceType)
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/p/locations/us-central1/models/m",
		record.Resources[0].ResourceURI,
	)
}

// =============================================================================
// Manifest Tests
// =============================================================================

func TestManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	want := Manifest{
		Location: "europe-west4",
		MachineSpec: machine.Spec{
			MachineType:      "cloud-tpu",
			AcceleratorType:  "TPU_V3",
			AcceleratorCount: 64,
		},
		ReferenceModel: refmodel.Metadata{
			LargeModelReference:  "BISON",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_bison/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		ImageURIs: map[string]string{
			"sft": "l-docker.pkg.dev/p/r/sft_tpu_backup:t",
		},
		Instruction: "Summarize in less than 100 words.",
		DisplayName: "bison-2024-01-15-10-30-00",
		UploadModel: true,
		DeployModel: false,
	}

	require.NoError(t, WriteManifest(path, want))
	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
