package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/jwt"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/pricing"
	"github.com/sysrai/sysrai-platform/internal/services"
)

// ProjectTokener defines only the methods needed by the project handlers.
type ProjectTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProjectCreator defines the interface that the service must implement.
type ProjectCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req services.CreateProjectRequest) (*models.ProjectDB, pricing.Breakdown, error)
}

// CreateProjectRequest represents the JSON body for project submission
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Project title
	// required: true
	// default: My First Film
	Title string `json:"title"`

	// Requested duration in minutes
	// required: true
	// default: 10
	DurationMinutes int `json:"duration_minutes"`

	// Output format: film, series or short
	// default: film
	Format string `json:"format"`

	// Generate a script deliverable
	// default: true
	IncludeScript bool `json:"include_script"`

	// Generate a storyboard deliverable
	// default: true
	IncludeStoryboard bool `json:"include_storyboard"`

	// Quality tier: standard, premium or ultra
	// default: standard
	Quality string `json:"quality"`

	// Apply the rush surcharge for priority processing
	// default: false
	Rush bool `json:"rush"`

	// Source material the script is generated from
	SourceContent string `json:"source_content"`
}

// CostBreakdown itemizes the charged credits
// swagger:model CostBreakdown
type CostBreakdown struct {
	Video      float64 `json:"video"`
	Script     float64 `json:"script"`
	Storyboard float64 `json:"storyboard"`
	Subtotal   float64 `json:"subtotal"`
	QualityFee float64 `json:"quality_fee"`
	RushFee    float64 `json:"rush_fee"`
	Total      float64 `json:"total"`
}

// CreateProjectResponse represents a successful submission response
// swagger:model CreateProjectResponse
type CreateProjectResponse struct {
	// New project id
	ProjectID string `json:"project_id"`

	// Initial status
	// default: queued
	Status string `json:"status"`

	// Charged credits
	Cost CostBreakdown `json:"cost"`

	// Estimated completion time
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

// CreateProjectErrorResponse represents an error response for submission
// swagger:model CreateProjectErrorResponse
type CreateProjectErrorResponse struct {
	// Error message
	// default: Insufficient credits
	Error string `json:"error"`

	// Credits the request needed, present on 402 only
	Required float64 `json:"required,omitempty"`

	// Credits the user had, present on 402 only
	Available float64 `json:"available,omitempty"`
}

// NewCreateProjectHandler returns an HTTP handler for project submission.
// @Summary Submit a film project
// @Description Prices the request, debits the credits and queues the project for generation. Rejected requests never debit.
// @Tags projects
// @Accept json
// @Produce json
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project submission request"
// @Success 201 {object} handlers.CreateProjectResponse "Project queued"
// @Failure 400 {object} handlers.CreateProjectErrorResponse "Invalid request / duration exceeds tier"
// @Failure 401 {object} handlers.CreateProjectErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.CreateProjectErrorResponse "Insufficient credits"
// @Router /projects [post]
// @Security BearerAuth
func NewCreateProjectHandler(svc ProjectCreator, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateProjectErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		project, cost, err := svc.Create(ctx, claims.UserID, services.CreateProjectRequest{
			Title:             req.Title,
			DurationMinutes:   req.DurationMinutes,
			Format:            req.Format,
			IncludeScript:     req.IncludeScript,
			IncludeStoryboard: req.IncludeStoryboard,
			Quality:           req.Quality,
			Rush:              req.Rush,
			SourceContent:     req.SourceContent,
		})
		if err != nil {
			var insufficient *services.InsufficientCreditsError
			switch {
			case errors.As(err, &insufficient):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(CreateProjectErrorResponse{
					Error:     "Insufficient credits",
					Required:  insufficient.Required,
					Available: insufficient.Available,
				})
			case errors.Is(err, services.ErrInvalidProject):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateProjectErrorResponse{
					Error: "Invalid request",
				})
			case errors.Is(err, services.ErrDurationExceedsTier):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateProjectErrorResponse{
					Error: "Duration exceeds subscription tier limit",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateProjectErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateProjectResponse{
			ProjectID: project.ProjectID.String(),
			Status:    project.Status,
			Cost: CostBreakdown{
				Video:      cost.Video,
				Script:     cost.Script,
				Storyboard: cost.Storyboard,
				Subtotal:   cost.Subtotal,
				QualityFee: cost.QualityFee,
				RushFee:    cost.RushFee,
				Total:      cost.Total,
			},
			EstimatedCompletion: project.EstimatedCompletion,
		})
	}
}

// claimsFromRequest resolves the bearer token or writes a 401.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokener ProjectTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(CreateProjectErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(CreateProjectErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	return claims, true
}
