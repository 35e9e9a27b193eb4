// Package params contains small pure resolvers for scalar tuning-pipeline
// parameters. This is part of the Functional Core - all functions are pure
// with no I/O, except DisplayName which reads the clock.
package params

import (
	"fmt"
	"strings"
	"time"
)

// Model families eligible for upload to the model registry (and, with the
// caller's consent, deployment to an endpoint).
var uploadableModels = map[string]bool{
	"BISON": true,
}

// =============================================================================
// Instructions
// =============================================================================

// DefaultInstruction returns the instruction text for a task. A non-empty
// override is returned unchanged; otherwise the task (case-insensitive)
// selects a template parameterized by the target sequence length.
func DefaultInstruction(task string, targetSequenceLength int, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	switch strings.ToLower(task) {
	case "summarization":
		return fmt.Sprintf("Summarize in less than %d words.", targetSequenceLength), nil
	case "question_answer":
		return fmt.Sprintf("Answer the question in less than %d words.", targetSequenceLength), nil
	default:
		return "", &UnsupportedTaskError{Task: task}
	}
}

// ResolveInstruction returns the instruction to use during tokenization.
// Chat models get an empty string because the instruction is prepended as
// the default context instead.
func ResolveInstruction(largeModelReference, instruction string) string {
	if strings.Contains(strings.ToLower(largeModelReference), "chat") {
		return ""
	}
	return instruction
}

// =============================================================================
// Upload / Deploy Eligibility
// =============================================================================

// ShouldUploadModel reports whether the tuned model should be uploaded to
// the model registry.
func ShouldUploadModel(largeModelReference string) bool {
	return uploadableModels[largeModelReference]
}

// ShouldDeployModel reports whether the tuned model should be deployed to
// an endpoint. Requires both the caller's intent and an uploadable model.
func ShouldDeployModel(deployModel bool, largeModelReference string) bool {
	return deployModel && uploadableModels[largeModelReference]
}

// =============================================================================
// Defaults and Predicates
// =============================================================================

// CandidateColumns returns the caller's candidate columns, or the default
// pair when none are given.
func CandidateColumns(columns []string) []string {
	if len(columns) > 0 {
		return columns
	}
	return []string{"candidate_0", "candidate_1"}
}

// ValueExists reports whether an optional parameter was provided and is
// non-empty.
func ValueExists(value *string) bool {
	return value != nil && *value != ""
}

// JoinDelimited joins items with the delimiter, defaulting to a comma when
// the delimiter is empty.
func JoinDelimited(items []string, delimiter string) string {
	if delimiter == "" {
		delimiter = ","
	}
	return strings.Join(items, delimiter)
}

// SplitDataPaths splits a dataset locator at its final path separator into
// the data directory and the dataset name.
func SplitDataPaths(inputDataset string) (dataDir, name string) {
	idx := strings.LastIndex(inputDataset, "/")
	if idx < 0 {
		return "", inputDataset
	}
	return inputDataset[:idx], inputDataset[idx+1:]
}

// =============================================================================
// Upload Targets
// =============================================================================

// ResolveUploadLocation returns the region to upload the model to, falling
// back to the region the pipeline runs in.
func ResolveUploadLocation(uploadLocation, pipelineRegion string) string {
	if uploadLocation != "" {
		return uploadLocation
	}
	return pipelineRegion
}

// RegionalEndpoint returns the regional endpoint used to upload a model to
// the registry.
func RegionalEndpoint(uploadLocation string) string {
	return fmt.Sprintf("https://%s-aiplatform.googleapis.com/ui", uploadLocation)
}

// DisplayName returns the registry display name for the tuned model:
// the override when given, otherwise {reference}-{timestamp}. The default
// is time-dependent and unique per second.
func DisplayName(largeModelReference, override string) string {
	if override != "" {
		return override
	}
	now := time.Now().Format("2006-01-02-15-04-05")
	return fmt.Sprintf("%s-%s", strings.ToLower(largeModelReference), now)
}
