// Package providers contains the GPU capacity vendor adapters. Every vendor
// hides behind the same Provider interface; the orchestrator walks a static,
// cost-ordered preference list instead of dispatching on vendor names.
package providers

import "context"

// Instance is one launched GPU machine as reported by a vendor.
type Instance struct {
	InstanceID string  `json:"instance_id"` // Vendor-side identifier
	GPUClass   string  `json:"gpu_class"`   // Launched GPU class
	HourlyCost float64 `json:"hourly_cost"` // USD per hour
	Region     string  `json:"region"`      // Vendor region
}

// Provider launches and terminates GPU instances at one vendor.
type Provider interface {
	// Name returns the stable vendor identifier stored on GPU node rows.
	Name() string
	// Launch starts up to count instances of the given GPU class. A short
	// result is partial success, not an error.
	Launch(ctx context.Context, count int, gpuClass string) ([]Instance, error)
	// Terminate shuts one instance down. An error means the instance is
	// still running and must not be marked terminated.
	Terminate(ctx context.Context, instanceID string) error
}

// PreferenceOrder returns the vendors cheapest first. Scale-up walks this
// list; the order is fixed at build time rather than derived at runtime.
func PreferenceOrder(vast, runpod, lambda Provider) []Provider {
	return []Provider{vast, runpod, lambda}
}
