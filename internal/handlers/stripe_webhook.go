package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// PurchaseGranter defines the interface that the service must implement.
type PurchaseGranter interface {
	GrantPurchase(ctx context.Context, userID uuid.UUID, packageType, paymentIntentID string) (float64, error)
}

// maxWebhookBody caps the accepted payload size, per Stripe's guidance.
const maxWebhookBody = 65536

// NewStripeWebhookHandler returns an HTTP handler for Stripe events. A
// captured payment intent grants the purchased credits; everything else is
// acknowledged and ignored.
// @Summary Stripe webhook
// @Description Receives payment events from Stripe. Credits are granted on payment_intent.succeeded.
// @Tags credits
// @Accept json
// @Success 200 "Event processed"
// @Failure 400 "Invalid signature or payload"
// @Router /webhooks/stripe [post]
func NewStripeWebhookHandler(svc PurchaseGranter, signingSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), signingSecret)
		if err != nil {
			logger.Log.Errorw("invalid stripe signature", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if event.Type != "payment_intent.succeeded" {
			w.WriteHeader(http.StatusOK)
			return
		}

		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			logger.Log.Errorw("failed to parse payment intent", "event", event.ID, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		userID, err := uuid.Parse(intent.Metadata["user_id"])
		if err != nil {
			logger.Log.Errorw("payment intent without a valid user id", "payment_intent", intent.ID)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if _, err := svc.GrantPurchase(ctx, userID, intent.Metadata["package"], intent.ID); err != nil {
			// Non-2xx makes Stripe retry the event later.
			logger.Log.Errorw("failed to grant purchase",
				"payment_intent", intent.ID, "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		logger.Log.Infow("stripe payment captured",
			"payment_intent", intent.ID, "user_id", userID, "package", intent.Metadata["package"])
		w.WriteHeader(http.StatusOK)
	}
}
