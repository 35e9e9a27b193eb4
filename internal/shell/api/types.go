package api

// =============================================================================
// Request Types
// =============================================================================

// MachineSpecRequest resolves the machine spec for a region.
type MachineSpecRequest struct {
	Location    string `json:"location"`
	UseTestSpec bool   `json:"use_test_spec,omitempty"`
}

// BulkInferenceSpecRequest resolves the bulk inference machine spec for a
// model family. The override fields are all-or-nothing.
type BulkInferenceSpecRequest struct {
	ModelReference           string `json:"model_reference"`
	UseGPUDefaults           bool   `json:"use_gpu_defaults,omitempty"`
	AcceleratorTypeOverride  string `json:"accelerator_type_override,omitempty"`
	AcceleratorCountOverride int    `json:"accelerator_count_override,omitempty"`
}

// ImageURIRequest composes a container image URI with explicit registry
// coordinates.
type ImageURIRequest struct {
	ImageName        string `json:"image_name"`
	Project          string `json:"project"`
	Location         string `json:"location"`
	ArtifactRegistry string `json:"artifact_registry"`
	ImageNamePrefix  string `json:"image_name_prefix,omitempty"`
	Tag              string `json:"tag"`
	AcceleratorType  string `json:"accelerator_type,omitempty"`
	AcceleratorCount int    `json:"accelerator_count,omitempty"`
}

// PrivateImageURIRequest composes a container image URI inside the
// service's configured private registry.
type PrivateImageURIRequest struct {
	ImageName        string `json:"image_name"`
	AcceleratorType  string `json:"accelerator_type,omitempty"`
	AcceleratorCount int    `json:"accelerator_count,omitempty"`
}

// ImageURIResponse carries a composed image URI.
type ImageURIResponse struct {
	ImageURI string `json:"image_uri"`
}

// ReferenceModelRequest resolves a model identifier against the reference
// model registry.
type ReferenceModelRequest struct {
	LargeModelReference string `json:"large_model_reference"`
	ReferenceModelPath  string `json:"reference_model_path,omitempty"`
}

// DefaultInstructionRequest resolves the instruction for a task.
type DefaultInstructionRequest struct {
	Task                 string `json:"task"`
	TargetSequenceLength int    `json:"target_sequence_length"`
	InstructionOverride  string `json:"instruction_override,omitempty"`
}

// InstructionRequest resolves the tokenization instruction for a model.
type InstructionRequest struct {
	LargeModelReference string `json:"large_model_reference"`
	Instruction         string `json:"instruction,omitempty"`
}

// InstructionResponse carries a resolved instruction.
type InstructionResponse struct {
	Instruction string `json:"instruction"`
}

// DeployModelRequest resolves deploy eligibility.
type DeployModelRequest struct {
	DeployModel         bool   `json:"deploy_model"`
	LargeModelReference string `json:"large_model_reference"`
}

// DeployModelResponse carries deploy eligibility.
type DeployModelResponse struct {
	DeployModel bool `json:"deploy_model"`
}

// UploadModelRequest resolves upload eligibility.
type UploadModelRequest struct {
	LargeModelReference string `json:"large_model_reference"`
}

// UploadModelResponse carries upload eligibility.
type UploadModelResponse struct {
	UploadModel bool `json:"upload_model"`
}

// CandidateColumnsRequest resolves candidate columns with defaults.
type CandidateColumnsRequest struct {
	CandidateColumns []string `json:"candidate_columns,omitempty"`
}

// CandidateColumnsResponse carries resolved candidate columns.
type CandidateColumnsResponse struct {
	CandidateColumns []string `json:"candidate_columns"`
}

// ValueExistsRequest checks presence of an optional parameter.
type ValueExistsRequest struct {
	Value *string `json:"value"`
}

// ValueExistsResponse carries the presence check result.
type ValueExistsResponse struct {
	Exists bool `json:"exists"`
}

// JoinRequest joins items with a delimiter.
type JoinRequest struct {
	Items     []string `json:"items"`
	Delimiter string   `json:"delimiter,omitempty"`
}

// JoinResponse carries a joined string.
type JoinResponse struct {
	Joined string `json:"joined"`
}

// DataPathsRequest splits a dataset locator.
type DataPathsRequest struct {
	InputDataset string `json:"input_dataset"`
}

// DataPathsResponse carries a split dataset locator.
type DataPathsResponse struct {
	DataDir string `json:"data_dir"`
	Name    string `json:"name"`
}

// UploadLocationRequest resolves the model upload region.
type UploadLocationRequest struct {
	UploadLocation string `json:"upload_location,omitempty"`
}

// UploadLocationResponse carries the resolved upload region.
type UploadLocationResponse struct {
	UploadLocation string `json:"upload_location"`
}

// RegionalEndpointRequest resolves the regional upload endpoint.
type RegionalEndpointRequest struct {
	UploadLocation string `json:"upload_location"`
}

// RegionalEndpointResponse carries the regional upload endpoint.
type RegionalEndpointResponse struct {
	RegionalEndpoint string `json:"regional_endpoint"`
}

// DisplayNameRequest resolves the registry display name.
type DisplayNameRequest struct {
	LargeModelReference string `json:"large_model_reference"`
	ModelDisplayName    string `json:"model_display_name,omitempty"`
}

// DisplayNameResponse carries the resolved display name.
type DisplayNameResponse struct {
	DisplayName string `json:"display_name"`
}

// ManifestRequest runs the full resolution chain for a deployment. When
// OutputPath is set the result is also written as a YAML manifest.
type ManifestRequest struct {
	Location            string   `json:"location"`
	UseTestSpec         bool     `json:"use_test_spec,omitempty"`
	LargeModelReference string   `json:"large_model_reference"`
	ReferenceModelPath  string   `json:"reference_model_path,omitempty"`
	Instruction         string   `json:"instruction,omitempty"`
	ModelDisplayName    string   `json:"model_display_name,omitempty"`
	DeployModel         bool     `json:"deploy_model,omitempty"`
	ImageNames          []string `json:"image_names,omitempty"`
	OutputPath          string   `json:"output_path,omitempty"`
}

// ModelResourceRequest composes a model resource name and URI. When
// OutputPath is set they are also written as a tracking record.
type ModelResourceRequest struct {
	Project    string `json:"project"`
	Location   string `json:"location"`
	Model      string `json:"model"`
	OutputPath string `json:"output_path,omitempty"`
}

// ModelResourceResponse carries the composed model resource identifiers.
type ModelResourceResponse struct {
	ResourceName string `json:"resource_name"`
	ResourceURI  string `json:"resource_uri"`
}

// ErrorResponse is the body returned for failed resolutions.
type ErrorResponse struct {
	Error string `json:"error"`
}
