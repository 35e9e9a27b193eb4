package api

import (
	"sync"

	"github.com/tunedeck/resolved/internal/core/machine"
	"github.com/tunedeck/resolved/internal/core/refmodel"
	"github.com/tunedeck/resolved/internal/shell/api/openapi"
	"github.com/tunedeck/resolved/internal/shell/artifact"
)

var specOnce sync.Once
var spec *openapi.Generator

// specGenerator builds the OpenAPI generator for the resolver API. The
// operation list mirrors Routes.
func specGenerator() *openapi.Generator {
	specOnce.Do(func() {
		spec = openapi.NewGenerator(
			openapi.WithTitle("Resolved API"),
			openapi.WithVersion("1.0.0"),
			openapi.WithDescription("Resolves partially-specified tuning deployment parameters into validated infrastructure configuration."),
		)

		for _, op := range []openapi.OperationInfo{
			{
				Path:     "/v1/resolve/machine-spec",
				Name:     "resolveMachineSpec",
				Summary:  "Resolve the machine spec for a region",
				Request:  MachineSpecRequest{},
				Response: machine.Spec{},
				CanFail:  true,
			},
			{
				Path:     "/v1/resolve/bulk-inference-spec",
				Name:     "resolveBulkInferenceSpec",
				Summary:  "Resolve the bulk inference machine spec for a model family",
				Request:  BulkInferenceSpecRequest{},
				Response: machine.Spec{},
				CanFail:  true,
			},
			{
				Path:     "/v1/resolve/image-uri",
				Name:     "resolveImageURI",
				Summary:  "Compose a container image URI",
				Request:  ImageURIRequest{},
				Response: ImageURIResponse{},
			},
			{
				Path:     "/v1/resolve/private-image-uri",
				Name:     "resolvePrivateImageURI",
				Summary:  "Compose a container image URI in the private registry",
				Request:  PrivateImageURIRequest{},
				Response: ImageURIResponse{},
			},
			{
				Path:     "/v1/resolve/reference-model",
				Name:     "resolveReferenceModel",
				Summary:  "Resolve reference model metadata",
				Request:  ReferenceModelRequest{},
				Response: refmodel.Metadata{},
				CanFail:  true,
			},
			{
				Path:     "/v1/resolve/default-instruction",
				Name:     "resolveDefaultInstruction",
				Summary:  "Resolve the default instruction for a task",
				Request:  DefaultInstructionRequest{},
				Response: InstructionResponse{},
				CanFail:  true,
			},
			{
				Path:     "/v1/resolve/instruction",
				Name:     "resolveInstruction",
				Summary:  "Resolve the tokenization instruction for a model",
				Request:  InstructionRequest{},
				Response: InstructionResponse{},
			},
			{
				Path:     "/v1/resolve/deploy-model",
				Name:     "resolveDeployModel",
				Summary:  "Resolve deploy eligibility",
				Request:  DeployModelRequest{},
				Response: DeployModelResponse{},
			},
			{
				Path:     "/v1/resolve/upload-model",
				Name:     "resolveUploadModel",
				Summary:  "Resolve upload eligibility",
				Request:  UploadModelRequest{},
				Response: UploadModelResponse{},
			},
			{
				Path:     "/v1/resolve/candidate-columns",
				Name:     "resolveCandidateColumns",
				Summary:  "Resolve candidate columns with defaults",
				Request:  CandidateColumnsRequest{},
				Response: CandidateColumnsResponse{},
			},
			{
				Path:     "/v1/resolve/value-exists",
				Name:     "resolveValueExists",
				Summary:  "Check presence of an optional parameter",
				Request:  ValueExistsRequest{},
				Response: ValueExistsResponse{},
			},
			{
				Path:     "/v1/resolve/join",
				Name:     "resolveJoin",
				Summary:  "Join items with a delimiter",
				Request:  JoinRequest{},
				Response: JoinResponse{},
			},
			{
				Path:     "/v1/resolve/data-paths",
				Name:     "resolveDataPaths",
				Summary:  "Split a dataset locator into directory and name",
				Request:  DataPathsRequest{},
				Response: DataPathsResponse{},
			},
			{
				Path:     "/v1/resolve/upload-location",
				Name:     "resolveUploadLocation",
				Summary:  "Resolve the model upload region",
				Request:  UploadLocationRequest{},
				Response: UploadLocationResponse{},
			},
			{
				Path:     "/v1/resolve/regional-endpoint",
				Name:     "resolveRegionalEndpoint",
				Summary:  "Resolve the regional upload endpoint",
				Request:  RegionalEndpointRequest{},
				Response: RegionalEndpointResponse{},
			},
			{
				Path:     "/v1/resolve/display-name",
				Name:     "resolveDisplayName",
				Summary:  "Resolve the registry display name",
				Request:  DisplayNameRequest{},
				Response: DisplayNameResponse{},
			},
			{
				Path:     "/v1/resolve/manifest",
				Name:     "resolveManifest",
				Summary:  "Resolve a full deployment manifest",
				Request:  ManifestRequest{},
				Response: artifact.Manifest{},
				CanFail:  true,
			},
			{
				Path:     "/v1/resolve/model-resource",
				Name:     "resolveModelResource",
				Summary:  "Compose a model resource name and tracking record",
				Request:  ModelResourceRequest{},
				Response: ModelResourceResponse{},
				CanFail:  true,
			},
		} {
			spec.RegisterOperation(op)
		}
	})
	return spec
}
