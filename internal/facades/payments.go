package facades

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// PaymentIntent is the subset of the processor's intent the platform needs.
type PaymentIntent struct {
	ID           string  // Processor-side intent identifier
	ClientSecret string  // Secret handed to the browser to confirm the payment
	AmountUSD    float64 // Charged amount in dollars
}

// StripePaymentsFacade wraps the Stripe SDK behind the one call the billing
// service makes.
type StripePaymentsFacade struct {
	api *client.API
}

// NewStripePaymentsFacade creates a facade with the given secret key.
func NewStripePaymentsFacade(secretKey string) *StripePaymentsFacade {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripePaymentsFacade{api: api}
}

// CreatePaymentIntent opens a payment for priceUSD dollars and tags it with
// the user and the credits to grant on capture.
func (f *StripePaymentsFacade) CreatePaymentIntent(ctx context.Context, userID, packageType string, priceUSD, credits float64) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(priceUSD * 100)), // Stripe uses cents
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)
	params.AddMetadata("package", packageType)
	params.AddMetadata("credits", fmt.Sprintf("%g", credits))

	pi, err := f.api.PaymentIntents.New(params)
	if err != nil {
		logger.Log.Errorw("failed to create payment intent",
			"user_id", userID, "package", packageType, "error", err)
		return nil, err
	}

	logger.Log.Infow("payment intent created",
		"payment_intent_id", pi.ID, "user_id", userID, "package", packageType)

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountUSD:    float64(pi.Amount) / 100,
	}, nil
}
