package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// LoyaltyStatus is a customer's loyalty summary for the profile screen.
type LoyaltyStatus struct {
	Customer *entity.Customer
	Tier     *entity.Tier // nil when no tier qualifies
}

// LoyaltyUsecase defines the interface for loyalty program use cases
type LoyaltyUsecase interface {
	// GetSettings retrieves the loyalty configuration.
	GetSettings(ctx context.Context) (*entity.LoyaltySettings, error)

	// UpdateSettings normalizes and persists the loyalty configuration.
	UpdateSettings(ctx context.Context, settings *entity.LoyaltySettings) error

	// QuoteRedemption previews the discount a customer's balance buys
	// against a cart subtotal.
	QuoteRedemption(ctx context.Context, customerID string, subtotal float64, optIn bool) (*entity.RedemptionQuote, error)

	// GrantBirthdayBonus credits the configured birthday bonus to a
	// customer's balance atomically and returns the refreshed status.
	GrantBirthdayBonus(ctx context.Context, customerID string) (*LoyaltyStatus, error)

	// GetStatus resolves a customer's balance and tier.
	GetStatus(ctx context.Context, customerID string) (*LoyaltyStatus, error)
}
