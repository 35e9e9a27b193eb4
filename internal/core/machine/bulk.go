package machine

import "sort"

// =============================================================================
// Bulk Inference Defaults
// =============================================================================

// Per-model GPU defaults for bulk inference, sized from profiling runs.
var bulkInferenceGPUDefaults = map[string]Spec{
	"PALM_TINY": {MachineType: MachineHighGPU1G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 1},
	"GECKO":     {MachineType: MachineHighGPU1G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 1},
	"OTTER":     {MachineType: MachineHighGPU2G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 2},
	"BISON":     {MachineType: MachineHighGPU8G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 8},
	"ELEPHANT":  {MachineType: MachineHighGPU8G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 8},
	"T5_SMALL":  {MachineType: MachineHighGPU1G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 1},
	"T5_LARGE":  {MachineType: MachineHighGPU1G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 1},
	"T5_XL":     {MachineType: MachineHighGPU1G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 1},
	"T5_XXL":    {MachineType: MachineHighGPU2G, AcceleratorType: AcceleratorA10040GB, AcceleratorCount: 2},
}

// Only v3 TPU pods are available in the shared pool, so the default count
// must be >= 32.
var bulkInferenceTPUDefault = Spec{
	MachineType:      MachineCloudTPU,
	AcceleratorType:  AcceleratorTPUV3,
	AcceleratorCount: 32,
}

// SupportedModelReferences returns the sorted allow-list of model families
// accepted for bulk inference.
func SupportedModelReferences() []string {
	models := make([]string, 0, len(bulkInferenceGPUDefaults))
	for m := range bulkInferenceGPUDefaults {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// =============================================================================
// Accelerator Override
// =============================================================================

// AcceleratorOverride replaces the default accelerator type and count as a
// pair. The pair is all-or-nothing; use NewOverride to build one from
// independently optional inputs.
type AcceleratorOverride struct {
	AcceleratorType  string
	AcceleratorCount int
}

// NewOverride reconciles optional accelerator type and count inputs into an
// override. Both empty yields no override (nil); exactly one set fails with
// InvalidOverrideError. Feasibility of the overridden values for the model
// is deferred to the resource provisioner.
func NewOverride(acceleratorType string, acceleratorCount int) (*AcceleratorOverride, error) {
	if acceleratorType == "" && acceleratorCount == 0 {
		return nil, nil
	}
	if acceleratorType == "" || acceleratorCount == 0 {
		return nil, &InvalidOverrideError{
			AcceleratorType:  acceleratorType,
			AcceleratorCount: acceleratorCount,
		}
	}
	return &AcceleratorOverride{
		AcceleratorType:  acceleratorType,
		AcceleratorCount: acceleratorCount,
	}, nil
}

// =============================================================================
// Bulk Inference Spec Resolution
// =============================================================================

// ResolveBulkInference returns the machine spec for bulk inference over a
// model family. When useGPUDefaults is set the per-model GPU default is
// used, otherwise the shared TPU pool default. A non-nil override replaces
// the default accelerator type and count entirely; the machine type is then
// re-tiered from whichever pair is in effect.
func ResolveBulkInference(modelReference string, useGPUDefaults bool, override *AcceleratorOverride) (Spec, error) {
	def, ok := bulkInferenceGPUDefaults[modelReference]
	if !ok {
		return Spec{}, &UnknownModelError{
			Model: modelReference,
			Valid: SupportedModelReferences(),
		}
	}
	if !useGPUDefaults {
		def = bulkInferenceTPUDefault
	}

	acceleratorType := def.AcceleratorType
	acceleratorCount := def.AcceleratorCount
	if override != nil {
		acceleratorType = override.AcceleratorType
		acceleratorCount = override.AcceleratorCount
	}

	machineType, err := MachineTypeFor(acceleratorType, acceleratorCount)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		MachineType:      machineType,
		AcceleratorType:  acceleratorType,
		AcceleratorCount: acceleratorCount,
	}, nil
}
