package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

// ProjectLister defines the interface that the service must implement.
type ProjectLister interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProjectDB, error)
}

// ListProjectsResponse represents the project listing response
// swagger:model ListProjectsResponse
type ListProjectsResponse struct {
	// The caller's projects, newest first
	Projects []ProjectView `json:"projects"`
}

// NewListProjectsHandler returns an HTTP handler for listing the caller's projects.
// @Summary List projects
// @Description Returns the caller's projects, newest first.
// @Tags projects
// @Produce json
// @Param limit query int false "Page size, max 100"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.ListProjectsResponse "Projects"
// @Failure 401 {object} handlers.GetProjectErrorResponse "Unauthorized"
// @Router /projects [get]
// @Security BearerAuth
func NewListProjectsHandler(svc ProjectLister, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		projects, err := svc.List(ctx, claims.UserID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list projects", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetProjectErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		views := make([]ProjectView, 0, len(projects))
		for i := range projects {
			views = append(views, projectView(&projects[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListProjectsResponse{Projects: views})
	}
}
