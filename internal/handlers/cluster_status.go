package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/services"
)

// AdminVerifier gates operator-only endpoints.
type AdminVerifier interface {
	Verify(ctx context.Context, userID uuid.UUID) error
}

// ClusterStatusReader defines the interface that the service must implement.
type ClusterStatusReader interface {
	Status(ctx context.Context) (*models.ClusterStatus, error)
}

// ClusterStatusResponse represents the aggregate cluster view
// swagger:model ClusterStatusResponse
type ClusterStatusResponse struct {
	TotalNodes     int     `json:"total_nodes"`
	AvailableNodes int     `json:"available_nodes"`
	BusyNodes      int     `json:"busy_nodes"`
	Utilization    float64 `json:"utilization"`
	HourlyCost     float64 `json:"hourly_cost"`
	DailyCost      float64 `json:"daily_cost"`
	MonthlyCost    float64 `json:"monthly_cost"`
}

// ClusterErrorResponse represents an error response for cluster endpoints
// swagger:model ClusterErrorResponse
type ClusterErrorResponse struct {
	// Error message
	// default: Admin access required
	Error string `json:"error"`
}

// NewClusterStatusHandler returns an HTTP handler for the cluster overview.
// @Summary Get cluster status
// @Description Returns node counts, utilization and cost projections. Admin only.
// @Tags cluster
// @Produce json
// @Success 200 {object} handlers.ClusterStatusResponse "Cluster status"
// @Failure 401 {object} handlers.ClusterErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ClusterErrorResponse "Admin access required"
// @Router /cluster/status [get]
// @Security BearerAuth
func NewClusterStatusHandler(svc ClusterStatusReader, admin AdminVerifier, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		if err := admin.Verify(ctx, claims.UserID); err != nil {
			if err == services.ErrAdminRequired {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ClusterErrorResponse{
					Error: "Admin access required",
				})
				return
			}
			logger.Log.Errorw("admin check failed", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClusterErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		status, err := svc.Status(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get cluster status", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClusterErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClusterStatusResponse{
			TotalNodes:     status.TotalNodes,
			AvailableNodes: status.AvailableNodes,
			BusyNodes:      status.BusyNodes,
			Utilization:    status.Utilization,
			HourlyCost:     status.HourlyCost,
			DailyCost:      status.DailyCost,
			MonthlyCost:    status.MonthlyCost,
		})
	}
}
