package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/facades"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/pricing"
)

// ErrInvalidPackage is returned for unknown credit package types.
var ErrInvalidPackage = errors.New("invalid credit package")

// PaymentIntentCreator opens payments at the processor.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, userID, packageType string, priceUSD, credits float64) (*facades.PaymentIntent, error)
}

// BillingService sells credit packages. Credits are granted only after the
// processor confirms capture (via webhook), never at intent creation.
type BillingService struct {
	payments PaymentIntentCreator
	ledger   CreditApplier
}

// NewBillingService creates a new BillingService.
func NewBillingService(payments PaymentIntentCreator, ledger CreditApplier) *BillingService {
	return &BillingService{
		payments: payments,
		ledger:   ledger,
	}
}

// Purchase opens a payment intent for a credit package and returns it with
// the credits (base + bonus) the capture will grant.
func (s *BillingService) Purchase(ctx context.Context, userID uuid.UUID, packageType string) (*facades.PaymentIntent, float64, error) {
	pkg, ok := pricing.CreditPackages[packageType]
	if !ok {
		logger.Log.Warnw("unknown credit package", "package", packageType)
		return nil, 0, ErrInvalidPackage
	}

	totalCredits := pkg.Credits + pkg.Bonus
	intent, err := s.payments.CreatePaymentIntent(ctx, userID.String(), packageType, pkg.PriceUSD, totalCredits)
	if err != nil {
		return nil, 0, err
	}

	return intent, totalCredits, nil
}

// GrantPurchase applies the purchased credits once the processor reports a
// captured payment. Keyed by the payment intent id for audit.
func (s *BillingService) GrantPurchase(ctx context.Context, userID uuid.UUID, packageType, paymentIntentID string) (float64, error) {
	pkg, ok := pricing.CreditPackages[packageType]
	if !ok {
		return 0, ErrInvalidPackage
	}

	totalCredits := pkg.Credits + pkg.Bonus
	description := fmt.Sprintf("Purchase of %s credit package", packageType)

	balance, err := s.ledger.Apply(ctx, userID, totalCredits, models.TxPurchase, description, &paymentIntentID)
	if err != nil {
		logger.Log.Errorw("failed to grant purchased credits",
			"user_id", userID, "package", packageType, "payment_intent", paymentIntentID, "error", err)
		return 0, err
	}

	logger.Log.Infow("purchased credits granted",
		"user_id", userID, "package", packageType, "credits", totalCredits, "balance", balance)
	return balance, nil
}
