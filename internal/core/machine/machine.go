// Package machine contains pure functions for resolving machine and
// accelerator specifications. This is part of the Functional Core - all
// functions are pure with no I/O.
package machine

import "sort"

// =============================================================================
// Spec
// =============================================================================

// Spec describes the machine shape a tuning or inference job runs on.
type Spec struct {
	MachineType      string `json:"machine_type" yaml:"machine_type"`
	AcceleratorType  string `json:"accelerator_type" yaml:"accelerator_type"`
	AcceleratorCount int    `json:"accelerator_count" yaml:"accelerator_count"`
}

// Machine types.
const (
	MachineCloudTPU   = "cloud-tpu"
	MachineHighGPU1G  = "a2-highgpu-1g"
	MachineHighGPU2G  = "a2-highgpu-2g"
	MachineHighGPU4G  = "a2-highgpu-4g"
	MachineHighGPU8G  = "a2-highgpu-8g"
	MachineMegaGPU16G = "a2-megagpu-16g"
	MachineUltraGPU1G = "a2-ultragpu-1g"
	MachineUltraGPU2G = "a2-ultragpu-2g"
	MachineUltraGPU4G = "a2-ultragpu-4g"
	MachineUltraGPU8G = "a2-ultragpu-8g"
)

// Accelerator types.
const (
	AcceleratorTPUV2    = "TPU_V2"
	AcceleratorTPUV3    = "TPU_V3"
	AcceleratorA10040GB = "NVIDIA_TESLA_A100"
	AcceleratorA10080GB = "NVIDIA_A100_80GB"
)

// =============================================================================
// Region Classification
// =============================================================================

// Regions where the shared accelerator pools live. A region may be in at
// most one set; a region in neither cannot run accelerated jobs.
var (
	tpuRegions = map[string]bool{
		"europe-west4": true,
	}
	gpuRegions = map[string]bool{
		"us-central1": true,
	}
)

// SupportedRegions returns the sorted union of TPU and GPU regions.
func SupportedRegions() []string {
	regions := make([]string, 0, len(tpuRegions)+len(gpuRegions))
	for r := range tpuRegions {
		regions = append(regions, r)
	}
	for r := range gpuRegions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// =============================================================================
// Machine Spec Resolution
// =============================================================================

// Resolve returns the machine spec to use for a given region. When
// useTestSpec is set a small single-GPU spec is returned regardless of
// region. Otherwise the region's accelerator pool determines the spec:
// TPU regions get a 64-chip TPU v3 slice, GPU regions an 8x A100 80GB
// machine. Regions outside both pools fail with UnsupportedLocationError.
func Resolve(location string, useTestSpec bool) (Spec, error) {
	if useTestSpec {
		return Spec{
			MachineType:      MachineHighGPU1G,
			AcceleratorType:  AcceleratorA10040GB,
			AcceleratorCount: 1,
		}, nil
	}
	if tpuRegions[location] {
		return Spec{
			MachineType:      MachineCloudTPU,
			AcceleratorType:  AcceleratorTPUV3,
			AcceleratorCount: 64,
		}, nil
	}
	if gpuRegions[location] {
		return Spec{
			MachineType:      MachineUltraGPU8G,
			AcceleratorType:  AcceleratorA10080GB,
			AcceleratorCount: 8,
		}, nil
	}
	return Spec{}, &UnsupportedLocationError{
		Location: location,
		Valid:    SupportedRegions(),
	}
}
