// Package api provides the HTTP surface that exposes each resolver to the
// pipeline orchestration layer.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tunedeck/resolved/internal/core/image"
	"github.com/tunedeck/resolved/internal/core/machine"
	"github.com/tunedeck/resolved/internal/core/params"
	"github.com/tunedeck/resolved/internal/core/refmodel"
	"github.com/tunedeck/resolved/internal/shell/artifact"
	"github.com/tunedeck/resolved/internal/shell/store"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the resolver API.
type Handler struct {
	store          store.Store
	registry       image.Registry
	pipelineRegion string
	logger         *slog.Logger
}

// NewHandler creates a new API handler. The registry carries the private
// artifact registry binding; pipelineRegion is the fallback upload region.
func NewHandler(s store.Store, registry image.Registry, pipelineRegion string, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:          s,
		registry:       registry,
		pipelineRegion: pipelineRegion,
		logger:         l,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/resolve", func(r chi.Router) {
			r.Post("/machine-spec", h.resolveMachineSpec)
			r.Post("/bulk-inference-spec", h.resolveBulkInferenceSpec)
			r.Post("/image-uri", h.resolveImageURI)
			r.Post("/private-image-uri", h.resolvePrivateImageURI)
			r.Post("/reference-model", h.resolveReferenceModel)
			r.Post("/default-instruction", h.resolveDefaultInstruction)
			r.Post("/instruction", h.resolveInstruction)
			r.Post("/deploy-model", h.resolveDeployModel)
			r.Post("/upload-model", h.resolveUploadModel)
			r.Post("/candidate-columns", h.resolveCandidateColumns)
			r.Post("/value-exists", h.resolveValueExists)
			r.Post("/join", h.resolveJoin)
			r.Post("/data-paths", h.resolveDataPaths)
			r.Post("/upload-location", h.resolveUploadLocation)
			r.Post("/regional-endpoint", h.resolveRegionalEndpoint)
			r.Post("/display-name", h.resolveDisplayName)
			r.Post("/manifest", h.resolveManifest)
			r.Post("/model-resource", h.resolveModelResource)
		})

		r.Get("/operations", h.listOperations)
		r.Get("/operations/{id}", h.getOperation)
	})

	r.Get("/healthz", h.health)
	r.Get("/openapi.json", specGenerator().Handler())

	return r
}

// jsonContentType sets the JSON content type on all responses.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Resolution Plumbing
// =============================================================================

// decode reads the request body into dst, answering 400 on malformed JSON.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respond writes body as JSON with the given status.
func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// finish records the resolution as an operation and answers the request:
// the resolved value on success, a 400 with the validation error otherwise.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, kind string, req, resp any, resolveErr error) {
	h.record(r.Context(), kind, req, resp, resolveErr)

	if resolveErr != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: resolveErr.Error()})
		return
	}
	h.respond(w, http.StatusOK, resp)
}

// record persists the resolution outcome. Failures are logged, not
// surfaced; the resolution result stands on its own.
func (h *Handler) record(ctx context.Context, kind string, req, resp any, resolveErr error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		h.logger.Error("failed to marshal operation request", "kind", kind, "error", err)
		return
	}

	record := &store.OperationRecord{
		ID:      uuid.NewString(),
		Kind:    kind,
		Request: reqJSON,
	}
	if resolveErr != nil {
		record.Error = resolveErr.Error()
	} else {
		respJSON, err := json.Marshal(resp)
		if err != nil {
			h.logger.Error("failed to marshal operation response", "kind", kind, "error", err)
			return
		}
		record.Response = respJSON
	}

	if err := h.store.CreateOperation(ctx, record); err != nil {
		h.logger.Error("failed to record operation", "kind", kind, "error", err)
	}
}

// =============================================================================
// Resolver Endpoints
// =============================================================================

func (h *Handler) resolveMachineSpec(w http.ResponseWriter, r *http.Request) {
	var req MachineSpecRequest
	if !h.decode(w, r, &req) {
		return
	}
	spec, err := machine.Resolve(req.Location, req.UseTestSpec)
	h.finish(w, r, "machine-spec", req, spec, err)
}

func (h *Handler) resolveBulkInferenceSpec(w http.ResponseWriter, r *http.Request) {
	var req BulkInferenceSpecRequest
	if !h.decode(w, r, &req) {
		return
	}
	override, err := machine.NewOverride(req.AcceleratorTypeOverride, req.AcceleratorCountOverride)
	if err != nil {
		h.finish(w, r, "bulk-inference-spec", req, nil, err)
		return
	}
	spec, err := machine.ResolveBulkInference(req.ModelReference, req.UseGPUDefaults, override)
	h.finish(w, r, "bulk-inference-spec", req, spec, err)
}

func (h *Handler) resolveImageURI(w http.ResponseWriter, r *http.Request) {
	var req ImageURIRequest
	if !h.decode(w, r, &req) {
		return
	}
	uri := image.Resolve(
		req.ImageName,
		req.Project,
		req.Location,
		req.ArtifactRegistry,
		req.ImageNamePrefix,
		req.Tag,
		req.AcceleratorType,
		req.AcceleratorCount,
	)
	h.finish(w, r, "image-uri", req, ImageURIResponse{ImageURI: uri}, nil)
}

func (h *Handler) resolvePrivateImageURI(w http.ResponseWriter, r *http.Request) {
	var req PrivateImageURIRequest
	if !h.decode(w, r, &req) {
		return
	}
	uri := h.registry.Resolve(req.ImageName, req.AcceleratorType, req.AcceleratorCount)
	h.finish(w, r, "private-image-uri", req, ImageURIResponse{ImageURI: uri}, nil)
}

func (h *Handler) resolveReferenceModel(w http.ResponseWriter, r *http.Request) {
	var req ReferenceModelRequest
	if !h.decode(w, r, &req) {
		return
	}
	md, err := refmodel.Resolve(req.LargeModelReference, req.ReferenceModelPath)
	h.finish(w, r, "reference-model", req, md, err)
}

func (h *Handler) resolveDefaultInstruction(w http.ResponseWriter, r *http.Request) {
	var req DefaultInstructionRequest
	if !h.decode(w, r, &req) {
		return
	}
	instruction, err := params.DefaultInstruction(req.Task, req.TargetSequenceLength, req.InstructionOverride)
	h.finish(w, r, "default-instruction", req, InstructionResponse{Instruction: instruction}, err)
}

func (h *Handler) resolveInstruction(w http.ResponseWriter, r *http.Request) {
	var req InstructionRequest
	if !h.decode(w, r, &req) {
		return
	}
	instruction := params.ResolveInstruction(req.LargeModelReference, req.Instruction)
	h.finish(w, r, "instruction", req, InstructionResponse{Instruction: instruction}, nil)
}

func (h *Handler) resolveDeployModel(w http.ResponseWriter, r *http.Request) {
	var req DeployModelRequest
	if !h.decode(w, r, &req) {
		return
	}
	deploy := params.ShouldDeployModel(req.DeployModel, req.LargeModelReference)
	h.finish(w, r, "deploy-model", req, DeployModelResponse{DeployModel: deploy}, nil)
}

func (h *Handler) resolveUploadModel(w http.ResponseWriter, r *http.Request) {
	var req UploadModelRequest
	if !h.decode(w, r, &req) {
		return
	}
	upload := params.ShouldUploadModel(req.LargeModelReference)
	h.finish(w, r, "upload-model", req, UploadModelResponse{UploadModel: upload}, nil)
}

func (h *Handler) resolveCandidateColumns(w http.ResponseWriter, r *http.Request) {
	var req CandidateColumnsRequest
	if !h.decode(w, r, &req) {
		return
	}
	columns := params.CandidateColumns(req.CandidateColumns)
	h.finish(w, r, "candidate-columns", req, CandidateColumnsResponse{CandidateColumns: columns}, nil)
}

func (h *Handler) resolveValueExists(w http.ResponseWriter, r *http.Request) {
	var req ValueExistsRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.finish(w, r, "value-exists", req, ValueExistsResponse{Exists: params.ValueExists(req.Value)}, nil)
}

func (h *Handler) resolveJoin(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.finish(w, r, "join", req, JoinResponse{Joined: params.JoinDelimited(req.Items, req.Delimiter)}, nil)
}

func (h *Handler) resolveDataPaths(w http.ResponseWriter, r *http.Request) {
	var req DataPathsRequest
	if !h.decode(w, r, &req) {
		return
	}
	dataDir, name := params.SplitDataPaths(req.InputDataset)
	h.finish(w, r, "data-paths", req, DataPathsResponse{DataDir: dataDir, Name: name}, nil)
}

func (h *Handler) resolveUploadLocation(w http.ResponseWriter, r *http.Request) {
	var req UploadLocationRequest
	if !h.decode(w, r, &req) {
		return
	}
	location := params.ResolveUploadLocation(req.UploadLocation, h.pipelineRegion)
	h.finish(w, r, "upload-location", req, UploadLocationResponse{UploadLocation: location}, nil)
}

func (h *Handler) resolveRegionalEndpoint(w http.ResponseWriter, r *http.Request) {
	var req RegionalEndpointRequest
	if !h.decode(w, r, &req) {
		return
	}
	endpoint := params.RegionalEndpoint(req.UploadLocation)
	h.finish(w, r, "regional-endpoint", req, RegionalEndpointResponse{RegionalEndpoint: endpoint}, nil)
}

func (h *Handler) resolveDisplayName(w http.ResponseWriter, r *http.Request) {
	var req DisplayNameRequest
	if !h.decode(w, r, &req) {
		return
	}
	name := params.DisplayName(req.LargeModelReference, req.ModelDisplayName)
	h.finish(w, r, "display-name", req, DisplayNameResponse{DisplayName: name}, nil)
}

// resolveManifest runs the full resolution chain for a deployment and
// optionally writes the result as a YAML manifest for job submission.
func (h *Handler) resolveManifest(w http.ResponseWriter, r *http.Request) {
	var req ManifestRequest
	if !h.decode(w, r, &req) {
		return
	}

	spec, err := machine.Resolve(req.Location, req.UseTestSpec)
	if err != nil {
		h.finish(w, r, "manifest", req, nil, err)
		return
	}
	md, err := refmodel.Resolve(req.LargeModelReference, req.ReferenceModelPath)
	if err != nil {
		h.finish(w, r, "manifest", req, nil, err)
		return
	}

	var imageURIs map[string]string
	if len(req.ImageNames) > 0 {
		imageURIs = make(map[string]string, len(req.ImageNames))
		for _, name := range req.ImageNames {
			imageURIs[name] = h.registry.Resolve(name, spec.AcceleratorType, spec.AcceleratorCount)
		}
	}

	manifest := artifact.Manifest{
		Location:       req.Location,
		MachineSpec:    spec,
		ReferenceModel: md,
		ImageURIs:      imageURIs,
		Instruction:    params.ResolveInstruction(req.LargeModelReference, req.Instruction),
		DisplayName:    params.DisplayName(md.LargeModelReference, req.ModelDisplayName),
		UploadModel:    params.ShouldUploadModel(md.LargeModelReference),
		DeployModel:    params.ShouldDeployModel(req.DeployModel, md.LargeModelReference),
	}

	if req.OutputPath != "" {
		if err := artifact.WriteManifest(req.OutputPath, manifest); err != nil {
			h.logger.Error("failed to write manifest", "path", req.OutputPath, "error", err)
			h.record(r.Context(), "manifest", req, nil, err)
			h.respond(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to write manifest"})
			return
		}
	}
	h.finish(w, r, "manifest", req, manifest, nil)
}

// resolveModelResource composes the fully qualified model resource name
// and URI, optionally writing them as a tracking record for the
// orchestrator to poll.
func (h *Handler) resolveModelResource(w http.ResponseWriter, r *http.Request) {
	var req ModelResourceRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Project == "" || req.Location == "" {
		h.finish(w, r, "model-resource", req, nil, errors.New("project and location are required"))
		return
	}

	name := artifact.ModelResourceName(req.Project, req.Location, req.Model)
	uri := artifact.ModelResourceURI(req.Location, name)

	if req.OutputPath != "" {
		record := artifact.Resource{ResourceType: "Model", ResourceURI: uri}
		if err := artifact.WriteTrackingRecord(req.OutputPath, record); err != nil {
			h.logger.Error("failed to write tracking record", "path", req.OutputPath, "error", err)
			h.record(r.Context(), "model-resource", req, nil, err)
			h.respond(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to write tracking record"})
			return
		}
	}
	h.finish(w, r, "model-resource", req, ModelResourceResponse{ResourceName: name, ResourceURI: uri}, nil)
}

// =============================================================================
// Operation Endpoints
// =============================================================================

func (h *Handler) listOperations(w http.ResponseWriter, r *http.Request) {
	opts := store.DefaultListOptions()
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset >= 0 {
		opts.Offset = offset
	}

	var (
		records []store.OperationRecord
		err     error
	)
	if kind := r.URL.Query().Get("kind"); kind != "" {
		records, err = h.store.ListOperationsByKind(r.Context(), kind, opts)
	} else {
		records, err = h.store.ListOperations(r.Context(), opts)
	}
	if err != nil {
		h.logger.Error("failed to list operations", "error", err)
		h.respond(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list operations"})
		return
	}
	h.respond(w, http.StatusOK, records)
}

func (h *Handler) getOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := h.store.GetOperation(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respond(w, http.StatusNotFound, ErrorResponse{Error: "operation not found: " + id})
			return
		}
		h.logger.Error("failed to get operation", "id", id, "error", err)
		h.respond(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get operation"})
		return
	}
	h.respond(w, http.StatusOK, record)
}

// =============================================================================
// Health
// =============================================================================

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.CountOperations(r.Context()); err != nil {
		h.respond(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
