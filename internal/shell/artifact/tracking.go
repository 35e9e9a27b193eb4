package artifact

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Operation Tracking Records
// =============================================================================

// Resource is one cloud resource touched by a pipeline step.
type Resource struct {
	ResourceType string `json:"resource_type"`
	ResourceURI  string `json:"resource_uri"`
}

// TrackingRecord is the serialized record the orchestrator polls to track
// a step's cloud resources.
type TrackingRecord struct {
	Resources []Resource `json:"resources"`
}

// ModelResourceName composes the fully qualified model resource name.
func ModelResourceName(project, location, model string) string {
	return fmt.Sprintf("projects/%s/locations/%s/models/%s", project, location, model)
}

// ModelResourceURI composes the regional API URI for a model resource.
func ModelResourceURI(location, resourceName string) string {
	return fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1/%s", location, resourceName)
}

// WriteTrackingRecord serializes the resources as a tracking record at
// path.
func WriteTrackingRecord(path string, resources ...Resource) error {
	record := TrackingRecord{Resources: resources}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tracking record: %w", err)
	}
	return WriteFile(path, string(data))
}
