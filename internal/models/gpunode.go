package models

import (
	"time"

	"github.com/google/uuid"
)

// GPU node statuses. Terminated rows are retained for audit.
const (
	NodeAvailable   = "available"
	NodeBusy        = "busy"
	NodeMaintenance = "maintenance"
	NodeTerminated  = "terminated"
)

// GPU classes, cheapest first.
const (
	GPURTX4090  = "rtx4090"
	GPUA10040GB = "a100_40gb"
	GPUA10080GB = "a100_80gb"
	GPUH100     = "h100"
)

// GPUNodeDB represents one remote compute worker tracked for capacity
// planning. The worker itself runs at the provider; this row is bookkeeping.
type GPUNodeDB struct {
	NodeID           uuid.UUID  `json:"node_id" db:"node_id"`                                 // Primary key
	Provider         string     `json:"provider" db:"provider"`                               // vast, runpod, lambda
	InstanceID       string     `json:"instance_id" db:"instance_id"`                         // Provider-side instance identifier
	GPUClass         string     `json:"gpu_class" db:"gpu_class"`                             // rtx4090, a100_40gb, a100_80gb, h100
	HourlyCost       float64    `json:"hourly_cost" db:"hourly_cost"`                         // USD per hour
	Status           string     `json:"status" db:"status"`                                   // available, busy, maintenance, terminated
	CurrentProjectID *uuid.UUID `json:"current_project_id,omitempty" db:"current_project_id"` // Project currently served, if busy
	PerformanceScore float64    `json:"performance_score" db:"performance_score"`             // Relative benchmark score
	Region           string     `json:"region" db:"region"`                                   // Provider region
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`                           // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`                           // Last update timestamp
}

// ClusterStatus is the aggregate view of the GPU pool.
type ClusterStatus struct {
	TotalNodes     int     `json:"total_nodes"`     // All non-terminated nodes
	AvailableNodes int     `json:"available_nodes"` // Nodes ready for assignment
	BusyNodes      int     `json:"busy_nodes"`      // Nodes serving a project
	Utilization    float64 `json:"utilization"`     // busy / total * 100
	HourlyCost     float64 `json:"hourly_cost"`     // Sum over available and busy nodes
	DailyCost      float64 `json:"daily_cost"`      // HourlyCost * 24
	MonthlyCost    float64 `json:"monthly_cost"`    // HourlyCost * 24 * 30
}
