// Package pricing holds the platform price catalog and the project cost
// calculators. Everything here is pure: no I/O, no clock, no storage.
package pricing

import (
	"errors"
	"math"
)

// Catalog rates, in credits.
const (
	VideoPerMinute  = 3.00
	ScriptPerMinute = 1.00
	StoryboardFlat  = 10.00

	// DefaultRushMultiplier applies when a rush surcharge is requested and no
	// override is configured.
	DefaultRushMultiplier = 1.5
)

// QualityMultipliers maps quality tiers to price multipliers.
// Unknown qualities fall back to 1.0.
var QualityMultipliers = map[string]float64{
	"standard": 1.0,
	"premium":  1.5,
	"ultra":    2.0,
}

// CreditPackage is a purchasable credit bundle.
type CreditPackage struct {
	Credits  float64 // Base credits in the bundle
	PriceUSD float64 // Price charged by the payment processor
	Bonus    float64 // Extra credits granted on top
}

// CreditPackages are the purchasable bundles, keyed by package type.
var CreditPackages = map[string]CreditPackage{
	"small":  {Credits: 50, PriceUSD: 19.99, Bonus: 0},
	"medium": {Credits: 150, PriceUSD: 49.99, Bonus: 10},
	"large":  {Credits: 500, PriceUSD: 149.99, Bonus: 50},
	"mega":   {Credits: 2000, PriceUSD: 499.99, Bonus: 300},
}

// Tier bounds a subscription level. MaxDurationMinutes of -1 means unlimited.
type Tier struct {
	MonthlyPriceUSD    float64 // Subscription price
	IncludedCredits    float64 // Credits included per month
	PricePerMinute     float64 // Per-minute override used by the tier pricing strategy
	MaxDurationMinutes int     // Project duration ceiling, -1 for unlimited
}

// SubscriptionTiers is the tier table, keyed by tier name.
var SubscriptionTiers = map[string]Tier{
	"free":       {MonthlyPriceUSD: 0, IncludedCredits: 10, PricePerMinute: 5.00, MaxDurationMinutes: 10},
	"starter":    {MonthlyPriceUSD: 29.99, IncludedCredits: 100, PricePerMinute: 3.00, MaxDurationMinutes: 60},
	"pro":        {MonthlyPriceUSD: 99.99, IncludedCredits: 500, PricePerMinute: 2.50, MaxDurationMinutes: 180},
	"enterprise": {MonthlyPriceUSD: 499.99, IncludedCredits: 3000, PricePerMinute: 2.00, MaxDurationMinutes: -1},
}

// ErrUnknownTier is returned when a tier name does not resolve.
var ErrUnknownTier = errors.New("unknown subscription tier")

// Breakdown is an itemized project cost.
type Breakdown struct {
	Video      float64 `json:"video"`       // duration * video rate
	Script     float64 `json:"script"`      // duration * script rate, 0 if not requested
	Storyboard float64 `json:"storyboard"`  // flat fee, 0 if not requested
	Subtotal   float64 `json:"subtotal"`    // video + script + storyboard
	QualityFee float64 `json:"quality_fee"` // subtotal * (quality multiplier - 1)
	RushFee    float64 `json:"rush_fee"`    // subtotal * (rush multiplier - 1), 0 if not rushed
	Total      float64 `json:"total"`       // subtotal + fees, rounded to 2 decimals
}

// Request are the pricing inputs for one project.
type Request struct {
	DurationMinutes   int    // Requested duration
	IncludeScript     bool   // Script generation requested
	IncludeStoryboard bool   // Storyboard generation requested
	Quality           string // standard, premium, ultra; unknown treated as standard
	Rush              bool   // Rush surcharge requested
}

// Pricer prices a project for a user on a given subscription tier.
// Two strategies exist because the original product shipped two divergent
// formulas; which one bills is a configuration choice, not a code change.
type Pricer interface {
	Price(req Request, tier string) (Breakdown, error)
}

// CatalogPricer prices from the per-minute catalog rates with quality and
// rush multipliers. This is the default billing strategy.
type CatalogPricer struct {
	RushMultiplier float64 // 0 means DefaultRushMultiplier
}

// Price implements Pricer. The tier is ignored: catalog pricing is the same
// for every subscription level.
func (p CatalogPricer) Price(req Request, tier string) (Breakdown, error) {
	rush := p.RushMultiplier
	if rush == 0 {
		rush = DefaultRushMultiplier
	}
	return Calculate(req, rush), nil
}

// TierPricer charges the subscription tier's per-minute override for the
// whole duration, with no line items. This is what the original usage
// deduction path billed.
type TierPricer struct{}

// Price implements Pricer.
func (p TierPricer) Price(req Request, tier string) (Breakdown, error) {
	t, ok := SubscriptionTiers[tier]
	if !ok {
		return Breakdown{}, ErrUnknownTier
	}
	video := float64(req.DurationMinutes) * t.PricePerMinute
	return Breakdown{
		Video:    video,
		Subtotal: video,
		Total:    round2(video),
	}, nil
}

// Calculate computes the catalog cost breakdown. Line items are exact; only
// Total is rounded, so rounding error never compounds across items.
func Calculate(req Request, rushMultiplier float64) Breakdown {
	b := Breakdown{
		Video: float64(req.DurationMinutes) * VideoPerMinute,
	}
	if req.IncludeScript {
		b.Script = float64(req.DurationMinutes) * ScriptPerMinute
	}
	if req.IncludeStoryboard {
		b.Storyboard = StoryboardFlat
	}
	b.Subtotal = b.Video + b.Script + b.Storyboard

	qm, ok := QualityMultipliers[req.Quality]
	if !ok {
		qm = 1.0
	}
	b.QualityFee = b.Subtotal * (qm - 1)

	if req.Rush {
		b.RushFee = b.Subtotal * (rushMultiplier - 1)
	}

	b.Total = round2(b.Subtotal + b.QualityFee + b.RushFee)
	return b
}

// MaxDuration returns the duration ceiling for the tier, -1 for unlimited.
func MaxDuration(tier string) (int, error) {
	t, ok := SubscriptionTiers[tier]
	if !ok {
		return 0, ErrUnknownTier
	}
	return t.MaxDurationMinutes, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
