package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// LoyaltyRepository defines the interface for loyalty program configuration storage.
// The settings live in a single well-known document; a missing document yields defaults.
type LoyaltyRepository interface {
	// GetSettings retrieves the loyalty configuration, falling back to
	// defaults when none has been saved yet.
	GetSettings(ctx context.Context) (*entity.LoyaltySettings, error)

	// SaveSettings overwrites the loyalty configuration.
	SaveSettings(ctx context.Context, settings *entity.LoyaltySettings) error
}
