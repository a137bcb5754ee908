package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/errors"
)

// ErrBannerNotFound is returned when a banner is not found.
var ErrBannerNotFound = errors.New("banner not found")

// BannerRepository defines the interface for promotional banner storage operations.
type BannerRepository interface {
	// Create persists a new banner and returns its generated document ID.
	Create(ctx context.Context, banner *entity.Banner) (string, error)

	// FindByID retrieves a banner by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Banner, error)

	// List retrieves all banners, newest first.
	List(ctx context.Context) ([]*entity.Banner, error)

	// ListActive retrieves only banners currently flagged active.
	ListActive(ctx context.Context) ([]*entity.Banner, error)

	// Update overwrites the mutable fields of a banner.
	Update(ctx context.Context, banner *entity.Banner) error

	// SetActive toggles a banner's visibility flag.
	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes a banner permanently.
	Delete(ctx context.Context, id string) error
}
