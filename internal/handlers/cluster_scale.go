package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/services"
)

// ClusterScaler defines the interface that the service must implement.
type ClusterScaler interface {
	ScaleUp(ctx context.Context, n int) ([]uuid.UUID, error)
	ScaleDown(ctx context.Context, n int) ([]uuid.UUID, error)
}

// OperatorVerifier gates capacity changes to enterprise-tier admins.
type OperatorVerifier interface {
	VerifyOperator(ctx context.Context, userID uuid.UUID) error
}

// ScaleRequest represents the JSON body for a scale operation
// swagger:model ScaleRequest
type ScaleRequest struct {
	// Action: up or down
	// required: true
	// default: up
	Action string `json:"action"`

	// Number of nodes to add or remove
	// required: true
	// default: 1
	Count int `json:"count"`
}

// ScaleResponse represents the outcome of a scale operation
// swagger:model ScaleResponse
type ScaleResponse struct {
	// Nodes actually added or removed; may be fewer than requested
	Nodes []string `json:"nodes"`
}

// NewClusterScaleHandler returns an HTTP handler for manual scaling.
// @Summary Scale the cluster
// @Description Adds or removes GPU nodes. Scale-up buys from the cheapest vendor first; scale-down terminates the most expensive idle nodes. Enterprise-tier admins only.
// @Tags cluster
// @Accept json
// @Produce json
// @Param scaleRequest body handlers.ScaleRequest true "Scale request"
// @Success 200 {object} handlers.ScaleResponse "Nodes changed"
// @Failure 400 {object} handlers.ClusterErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ClusterErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ClusterErrorResponse "Admin access required"
// @Router /cluster/scale [post]
// @Security BearerAuth
func NewClusterScaleHandler(svc ClusterScaler, admin OperatorVerifier, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		if err := admin.VerifyOperator(ctx, claims.UserID); err != nil {
			switch err {
			case services.ErrAdminRequired:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ClusterErrorResponse{
					Error: "Admin access required",
				})
				return
			case services.ErrEnterpriseRequired:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ClusterErrorResponse{
					Error: "Enterprise subscription required",
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

		var req ScaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Count <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClusterErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		var nodeIDs []uuid.UUID
		var err error
		switch req.Action {
		case "up":
			nodeIDs, err = svc.ScaleUp(ctx, req.Count)
		case "down":
			nodeIDs, err = svc.ScaleDown(ctx, req.Count)
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClusterErrorResponse{
				Error: "Invalid request",
			})
			return
		}
		if err != nil {
			logger.Log.Errorw("scale operation failed", "action", req.Action, "count", req.Count, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClusterErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		nodes := make([]string, 0, len(nodeIDs))
		for _, id := range nodeIDs {
			nodes = append(nodes, id.String())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScaleResponse{Nodes: nodes})
	}
}
