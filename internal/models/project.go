package models

import (
	"time"

	"github.com/google/uuid"
)

// Project statuses. A project starts queued and either reaches complete or
// fails; failed is reachable from any non-terminal status.
const (
	StatusQueued             = "queued"
	StatusGenerating         = "generating"
	StatusScriptComplete     = "script_complete"
	StatusStoryboardComplete = "storyboard_complete"
	StatusComplete           = "complete"
	StatusFailed             = "failed"
)

// Project formats
const (
	FormatFilm   = "film"
	FormatSeries = "series"
	FormatShort  = "short"
)

// Quality tiers
const (
	QualityStandard = "standard"
	QualityPremium  = "premium"
	QualityUltra    = "ultra"
)

// Stage progress percentages. Progress is monotonically non-decreasing.
const (
	ProgressQueued             = 0
	ProgressGenerating         = 10
	ProgressScriptComplete     = 30
	ProgressStoryboardComplete = 50
	ProgressComplete           = 100
)

// ProjectDB represents one film generation request in the database.
// The projects table doubles as the durable generation queue: the pipeline
// worker claims rows by flipping status with update-if-unchanged writes.
type ProjectDB struct {
	ProjectID           uuid.UUID  `json:"project_id" db:"project_id"`                     // Primary key
	UserID              uuid.UUID  `json:"user_id" db:"user_id"`                           // Owning user
	Title               string     `json:"title" db:"title"`                               // Project title
	DurationMinutes     int        `json:"duration_minutes" db:"duration_minutes"`         // Requested duration
	Format              string     `json:"format" db:"format"`                             // film, series, short
	Quality             string     `json:"quality" db:"quality"`                           // standard, premium, ultra
	Status              string     `json:"status" db:"status"`                             // Lifecycle status
	Progress            int        `json:"progress" db:"progress"`                         // 0-100
	Cost                float64    `json:"cost" db:"cost"`                                 // Credits debited at submission
	FilmURL             *string    `json:"film_url,omitempty" db:"film_url"`               // Public URL of the finished film
	Metadata            string     `json:"metadata" db:"metadata"`                         // JSON blob; failure errors are appended here
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`                     // Submission timestamp
	EstimatedCompletion time.Time  `json:"estimated_completion" db:"estimated_completion"` // Submission + 2x duration
	CompletedAt         *time.Time `json:"completed_at,omitempty" db:"completed_at"`       // Terminal timestamp
}

// Terminal reports whether the project can no longer change status.
func (p *ProjectDB) Terminal() bool {
	return p.Status == StatusComplete || p.Status == StatusFailed
}
