package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/facades"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/services"
)

// CreditPurchaser defines the interface that the service must implement.
type CreditPurchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, packageType string) (*facades.PaymentIntent, float64, error)
}

// PurchaseRequest represents the JSON body for a credit purchase
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Credit package: small, medium, large or mega
	// required: true
	// default: small
	PackageType string `json:"package_type"`
}

// PurchaseResponse represents an opened payment
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// Payment intent id
	PaymentIntentID string `json:"payment_intent_id"`

	// Client secret for completing the payment
	ClientSecret string `json:"client_secret"`

	// Price in USD
	// default: 19.99
	AmountUSD float64 `json:"amount_usd"`

	// Credits granted once the payment is captured
	// default: 50
	Credits float64 `json:"credits"`
}

// PurchaseErrorResponse represents an error response for purchases
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// default: Invalid credit package
	Error string `json:"error"`
}

// NewPurchaseHandler returns an HTTP handler for buying credit packages.
// @Summary Purchase credits
// @Description Opens a payment for a credit package. Credits are granted when the processor confirms capture, not here.
// @Tags credits
// @Accept json
// @Produce json
// @Param purchaseRequest body handlers.PurchaseRequest true "Credit purchase request"
// @Success 200 {object} handlers.PurchaseResponse "Payment opened"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Invalid credit package"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Router /credits/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc CreditPurchaser, tokener ProjectTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{
				Error: "Invalid request",
			})
			return
		}

		intent, credits, err := svc.Purchase(ctx, claims.UserID, req.PackageType)
		if err != nil {
			switch err {
			case services.ErrInvalidPackage:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{
					Error: "Invalid credit package",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseResponse{
			PaymentIntentID: intent.ID,
			ClientSecret:    intent.ClientSecret,
			AmountUSD:       intent.AmountUSD,
			Credits:         credits,
		})
	}
}
