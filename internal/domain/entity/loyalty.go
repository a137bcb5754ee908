package entity

import (
	"math"
	"sort"
	"time"
)

// SignupBonus is the fixed point credit granted once at registration.
const SignupBonus = 10

// Customer is a loyalty-program member, keyed by phone number.
type Customer struct {
	ID            string    `json:"id" firestore:"-"`
	TenantID      string    `json:"cafe_id" firestore:"cafe_id"`
	Name          string    `json:"name" firestore:"name"`
	Phone         string    `json:"phone" firestore:"phone"`
	LoyaltyPoints int       `json:"loyaltyPoints" firestore:"loyaltyPoints"`
	TotalOrders   int       `json:"totalOrders" firestore:"totalOrders"`
	RegisteredAt  time.Time `json:"registeredAt" firestore:"registeredAt,serverTimestamp"`
	LastVisit     time.Time `json:"lastVisit" firestore:"lastVisit,serverTimestamp"`
}

// Tier is a named loyalty bracket keyed by a minimum point threshold.
// DiscountPercent is declared in settings but intentionally not applied
// to order totals; it is surfaced for manual use.
type Tier struct {
	Name            string `json:"name" firestore:"name"`
	MinPoints       int    `json:"minPoints" firestore:"minPoints"`
	DiscountPercent int    `json:"discount" firestore:"discount"`
}

// LoyaltySettings is the tenant-wide loyalty configuration singleton.
type LoyaltySettings struct {
	// PointsPerPound is the accrual rate per currency unit spent.
	PointsPerPound float64 `json:"pointsPerPound" firestore:"pointsPerPound"`

	// RedemptionRate is how many points equal one unit of discount currency.
	RedemptionRate int `json:"redemptionRate" firestore:"redemptionRate"`

	// MinPointsForRedemption is the eligibility floor for redeeming.
	MinPointsForRedemption int `json:"minPointsForRedemption" firestore:"minPointsForRedemption"`

	// BirthdayBonus is the point credit granted on a customer's birthday.
	BirthdayBonus int `json:"birthdayBonus" firestore:"birthdayBonus"`

	// Tiers is ordered by ascending MinPoints.
	Tiers []Tier `json:"tiers" firestore:"tiers"`
}

// DefaultLoyaltySettings mirrors the values the dashboard seeds a new
// tenant with.
func DefaultLoyaltySettings() LoyaltySettings {
	return LoyaltySettings{
		PointsPerPound:         0.1,
		RedemptionRate:         10,
		MinPointsForRedemption: 50,
		BirthdayBonus:          20,
		Tiers: []Tier{
			{Name: "bronze", MinPoints: 0, DiscountPercent: 0},
			{Name: "silver", MinPoints: 500, DiscountPercent: 5},
			{Name: "gold", MinPoints: 1500, DiscountPercent: 10},
		},
	}
}

// Normalize guards the settings against nonsensical values and keeps the
// tiers sorted by ascending threshold.
func (s *LoyaltySettings) Normalize() {
	if s.RedemptionRate <= 0 {
		s.RedemptionRate = 10
	}
	if s.PointsPerPound < 0 {
		s.PointsPerPound = 0
	}
	if s.MinPointsForRedemption < 0 {
		s.MinPointsForRedemption = 0
	}
	if s.BirthdayBonus < 0 {
		s.BirthdayBonus = 0
	}
	sort.SliceStable(s.Tiers, func(i, j int) bool {
		return s.Tiers[i].MinPoints < s.Tiers[j].MinPoints
	})
}

// TierFor returns the highest tier whose MinPoints does not exceed the
// balance. ok is false when no tier qualifies.
func (s LoyaltySettings) TierFor(points int) (Tier, bool) {
	var best Tier
	found := false
	for _, tier := range s.Tiers {
		if tier.MinPoints <= points && (!found || tier.MinPoints >= best.MinPoints) {
			best = tier
			found = true
		}
	}

	return best, found
}

// RedemptionQuote is the outcome of the redemption rules for one checkout.
type RedemptionQuote struct {
	Eligible bool `json:"eligible"`

	// Discount is the currency value subtracted from the order total.
	// Never exceeds the subtotal.
	Discount float64 `json:"discount"`

	// PointsUsed is the point cost debited from the customer's balance:
	// Discount * RedemptionRate.
	PointsUsed int `json:"pointsUsed"`
}

// QuoteRedemption applies the redemption rules: eligibility requires the
// balance to reach the floor; the discount is floored to whole currency
// and capped at the subtotal so the total can never go negative. When
// the customer has not opted in, the quote is eligible but zero-valued.
func (s LoyaltySettings) QuoteRedemption(points int, subtotal float64, optIn bool) RedemptionQuote {
	if points < s.MinPointsForRedemption {
		return RedemptionQuote{}
	}
	if !optIn {
		return RedemptionQuote{Eligible: true}
	}

	discount := math.Min(math.Floor(float64(points)/float64(s.RedemptionRate)), subtotal)
	if discount < 0 {
		discount = 0
	}

	return RedemptionQuote{
		Eligible:   true,
		Discount:   discount,
		PointsUsed: int(math.Round(discount * float64(s.RedemptionRate))),
	}
}

// PointsEarned is the accrual for a settled order: floor of the total
// divided by the redemption rate.
func (s LoyaltySettings) PointsEarned(total float64) int {
	if total <= 0 {
		return 0
	}

	return int(math.Floor(total / float64(s.RedemptionRate)))
}
