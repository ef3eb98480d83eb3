package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/services"
)

// ProjectGetter defines the interface that the service must implement.
type ProjectGetter interface {
	Get(ctx context.Context, userID, projectID uuid.UUID) (*models.ProjectDB, error)
}

// ProjectView represents a project in API responses
// swagger:model ProjectView
type ProjectView struct {
	ProjectID           string     `json:"project_id"`
	Title               string     `json:"title"`
	DurationMinutes     int        `json:"duration_minutes"`
	Format              string     `json:"format"`
	Quality             string     `json:"quality"`
	Status              string     `json:"status"`
	Progress            int        `json:"progress"`
	Cost                float64    `json:"cost"`
	FilmURL             *string    `json:"film_url,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	EstimatedCompletion time.Time  `json:"estimated_completion"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

// GetProjectErrorResponse represents an error response for project reads
// swagger:model GetProjectErrorResponse
type GetProjectErrorResponse struct {
	// Error message
	// default: Project not found
	Error string `json:"error"`
}

func projectView(p *models.ProjectDB) ProjectView {
	return ProjectView{
		ProjectID:           p.ProjectID.String(),
		Title:               p.Title,
		DurationMinutes:     p.DurationMinutes,
		Format:              p.Format,
		Quality:             p.Quality,
		Status:              p.Status,
		Progress:            p.Progress,
		Cost:                p.Cost,
		FilmURL:             p.FilmURL,
		CreatedAt:           p.CreatedAt,
		EstimatedCompletion: p.EstimatedCompletion,
		CompletedAt:         p.CompletedAt,
	}
}

// NewGetProjectHandler returns an HTTP handler for polling a project.
// @Summary Get project status
// @Description Returns the project with its current status, progress and film URL once complete. Owner only.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} handlers.ProjectView "Project"
// @Failure 401 {object} handlers.GetProjectErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GetProjectErrorResponse "Not the project owner"
// @Failure 404 {object} handlers.GetProjectErrorResponse "Project not found"
// @Router /projects/{id} [get]
// @Security BearerAuth
func NewGetProjectHandler(svc ProjectGetter, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetProjectErrorResponse{
				Error: "Invalid project id",
			})
			return
		}

		project, err := svc.Get(ctx, claims.UserID, projectID)
		if err != nil {
			switch err {
			case services.ErrProjectNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetProjectErrorResponse{
					Error: "Project not found",
				})
			case services.ErrNotProjectOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GetProjectErrorResponse{
					Error: "Not the project owner",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetProjectErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(projectView(project))
	}
}
