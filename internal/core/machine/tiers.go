package machine

import "sort"

// =============================================================================
// Accelerator Tier Tables
// =============================================================================

// tier maps an inclusive accelerator-count upper bound to a machine type.
// Tables are ordered by ascending bound; the first bound that is >= the
// requested count wins.
type tier struct {
	maxCount    int
	machineType string
}

var gpuTiers = map[string][]tier{
	AcceleratorA10040GB: {
		{1, MachineHighGPU1G},
		{2, MachineHighGPU2G},
		{4, MachineHighGPU4G},
		{8, MachineHighGPU8G},
		{16, MachineMegaGPU16G},
	},
	AcceleratorA10080GB: {
		{1, MachineUltraGPU1G},
		{2, MachineUltraGPU2G},
		{4, MachineUltraGPU4G},
		{8, MachineUltraGPU8G},
	},
}

// TPU families all map to the single cloud-tpu machine type; the slice
// shape is carried by the accelerator count instead.
var tpuAccelerators = map[string]bool{
	AcceleratorTPUV2: true,
	AcceleratorTPUV3: true,
}

// ValidAcceleratorTypes returns the sorted union of the TPU and GPU
// accelerator families.
func ValidAcceleratorTypes() []string {
	types := make([]string, 0, len(tpuAccelerators)+len(gpuTiers))
	for t := range tpuAccelerators {
		types = append(types, t)
	}
	for t := range gpuTiers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// MachineTypeFor returns the machine-type tier for an accelerator type and
// count. TPU families always resolve to cloud-tpu. GPU families resolve
// through the tier ladder for that family and fail with
// TooManyAcceleratorsError past the ladder's ceiling.
func MachineTypeFor(acceleratorType string, acceleratorCount int) (string, error) {
	if acceleratorCount < 1 {
		return "", &InvalidAcceleratorCountError{Count: acceleratorCount}
	}
	if tpuAccelerators[acceleratorType] {
		return MachineCloudTPU, nil
	}
	tiers, ok := gpuTiers[acceleratorType]
	if !ok {
		return "", &UnknownAcceleratorTypeError{
			AcceleratorType: acceleratorType,
			Valid:           ValidAcceleratorTypes(),
		}
	}
	for _, t := range tiers {
		if acceleratorCount <= t.maxCount {
			return t.machineType, nil
		}
	}
	return "", &TooManyAcceleratorsError{
		AcceleratorType: acceleratorType,
		Count:           acceleratorCount,
		Limit:           tiers[len(tiers)-1].maxCount,
	}
}
