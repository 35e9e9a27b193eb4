// Package refmodel contains the reference base-model registry and pure
// functions for resolving model identifiers against it. This is part of
// the Functional Core - all functions are pure with no I/O.
package refmodel

import (
	"sort"
	"strings"
)

// =============================================================================
// Metadata
// =============================================================================

// Metadata describes a reference base model: the canonical model name, the
// checkpoint it is loaded from, and the reward model paired with it.
type Metadata struct {
	LargeModelReference  string `json:"large_model_reference" yaml:"large_model_reference"`
	ReferenceModelPath   string `json:"reference_model_path" yaml:"reference_model_path"`
	RewardModelReference string `json:"reward_model_reference" yaml:"reward_model_reference"`
	RewardModelPath      string `json:"reward_model_path" yaml:"reward_model_path"`
}

// entry is a registry row. Unsupported entries are kept for lineage and
// stay resolvable by exact key, but are left out of the guidance shown on
// a lookup miss.
type entry struct {
	Metadata
	supported bool
}

// =============================================================================
// Registry
// =============================================================================

// Several identifiers intentionally share reward-model artifacts: the chat
// Llama variants reuse their base model's reward checkpoint, and the
// PaLM-family variants all reuse OTTER's.
var registry = map[string]entry{
	"t5-small": {
		Metadata: Metadata{
			LargeModelReference:  "T5_SMALL",
			ReferenceModelPath:   "gs://t5-data/pretrained_models/t5x/flan_t5_small/",
			RewardModelReference: "T5_SMALL",
			RewardModelPath:      "gs://t5-data/pretrained_models/t5x/t5_1_1_small",
		},
		supported: true,
	},
	"t5-large": {
		Metadata: Metadata{
			LargeModelReference:  "T5_LARGE",
			ReferenceModelPath:   "gs://t5-data/pretrained_models/t5x/flan_t5_large/",
			RewardModelReference: "T5_LARGE",
			RewardModelPath:      "gs://t5-data/pretrained_models/t5x/t5_1_1_large",
		},
		supported: true,
	},
	"t5-xl": {
		Metadata: Metadata{
			LargeModelReference:  "T5_XL",
			ReferenceModelPath:   "gs://t5-data/pretrained_models/t5x/flan_t5_xl/",
			RewardModelReference: "T5_XL",
			RewardModelPath:      "gs://t5-data/pretrained_models/t5x/t5_1_1_xl",
		},
		supported: true,
	},
	"t5-xxl": {
		Metadata: Metadata{
			LargeModelReference:  "T5_XXL",
			ReferenceModelPath:   "gs://t5-data/pretrained_models/t5x/flan_t5_xxl/",
			RewardModelReference: "T5_XL",
			RewardModelPath:      "gs://t5-data/pretrained_models/t5x/t5_1_1_xl",
		},
		supported: true,
	},
	"palm-tiny": {
		Metadata: Metadata{
			LargeModelReference:  "PALM_TINY",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_palm_tiny/",
			RewardModelReference: "PALM_TINY",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_palm_tiny/",
		},
		supported: false,
	},
	"gecko": {
		Metadata: Metadata{
			LargeModelReference:  "GECKO",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_gecko/",
			RewardModelReference: "GECKO",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_gecko_pretrain/",
		},
		supported: false,
	},
	"otter": {
		Metadata: Metadata{
			LargeModelReference:  "OTTER",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		supported: false,
	},
	// Deprecated: use text-bison@001 instead.
	"bison": {
		Metadata: Metadata{
			LargeModelReference:  "BISON",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_bison/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		supported: false,
	},
	"text-bison@001": {
		Metadata: Metadata{
			LargeModelReference:  "BISON",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_bison/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		supported: true,
	},
	"chat-bison@001": {
		Metadata: Metadata{
			LargeModelReference:  "BISON",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_bison/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		supported: true,
	},
	"elephant": {
		Metadata: Metadata{
			LargeModelReference:  "ELEPHANT",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_elephant/",
			RewardModelReference: "OTTER",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/palm/t5x_otter_pretrain/",
		},
		supported: false,
	},
	"llama-2-7b": {
		Metadata: Metadata{
			LargeModelReference:  "LLAMA_2_7B",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_7b/",
			RewardModelReference: "LLAMA_2_7B",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_7b/",
		},
		supported: true,
	},
	"llama-2-13b": {
		Metadata: Metadata{
			LargeModelReference:  "LLAMA_2_13B",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_13b/",
			RewardModelReference: "LLAMA_2_13B",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_13b/",
		},
		supported: true,
	},
	"llama-2-7b-chat": {
		Metadata: Metadata{
			LargeModelReference:  "LLAMA_2_7B_CHAT",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_7b_chat/",
			RewardModelReference: "LLAMA_2_7B",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_7b/",
		},
		supported: true,
	},
	"llama-2-13b-chat": {
		Metadata: Metadata{
			LargeModelReference:  "LLAMA_2_13B_CHAT",
			ReferenceModelPath:   "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_13b_chat/",
			RewardModelReference: "LLAMA_2_13B",
			RewardModelPath:      "gs://vertex-rlhf-restricted/pretrained_models/llama/t5x_llama_2_13b/",
		},
		supported: true,
	},
}

// =============================================================================
// Resolution
// =============================================================================

// NormalizeKey lowers a model identifier and replaces underscores with
// hyphens, yielding the registry key form.
func NormalizeKey(largeModelReference string) string {
	return strings.ReplaceAll(strings.ToLower(largeModelReference), "_", "-")
}

// SupportedModels returns the sorted registry keys flagged as supported.
// Deprecated entries stay resolvable by exact key but are not suggested.
func SupportedModels() []string {
	models := make([]string, 0, len(registry))
	for key, e := range registry {
		if e.supported {
			models = append(models, key)
		}
	}
	sort.Strings(models)
	return models
}

// Resolve normalizes a model identifier, looks it up in the registry, and
// returns its metadata. A non-empty referenceModelPath replaces the
// registry's checkpoint path, for callers tuning from a checkpoint of the
// same base model. A miss fails with UnknownReferenceModelError suggesting
// only supported identifiers.
func Resolve(largeModelReference, referenceModelPath string) (Metadata, error) {
	key := NormalizeKey(largeModelReference)
	e, ok := registry[key]
	if !ok {
		return Metadata{}, &UnknownReferenceModelError{
			Model:     largeModelReference,
			Supported: SupportedModels(),
		}
	}

	md := e.Metadata
	if referenceModelPath != "" {
		md.ReferenceModelPath = referenceModelPath
	}
	return md, nil
}
