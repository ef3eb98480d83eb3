package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// BalanceReader defines the interface that the service must implement.
// The balance is the sum of the user's ledger rows.
type BalanceReader interface {
	Sum(ctx context.Context, userID uuid.UUID) (float64, error)
}

// BalanceResponse represents the credit balance response
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Current credit balance
	// default: 50.0
	Credits float64 `json:"credits"`
}

// BalanceErrorResponse represents an error response for balance reads
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for the credit balance.
// @Summary Get credit balance
// @Description Returns the caller's balance computed from the transaction ledger.
// @Tags credits
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Credit balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /credits/balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		credits, err := svc.Sum(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Credits: credits})
	}
}
