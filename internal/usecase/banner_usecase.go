package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// BannerUsecase defines the interface for promotional banner use cases
type BannerUsecase interface {
	// ListBanners retrieves all banners for the management screen.
	ListBanners(ctx context.Context) ([]*entity.Banner, error)

	// ActiveBanners retrieves the banners eligible for the carousel.
	ActiveBanners(ctx context.Context) ([]*entity.Banner, error)

	// CreateBanner adds a banner after validating its date range.
	CreateBanner(ctx context.Context, banner *entity.Banner) (*entity.Banner, error)

	// UpdateBanner edits a banner.
	UpdateBanner(ctx context.Context, banner *entity.Banner) error

	// SetActive toggles a banner's visibility flag.
	SetActive(ctx context.Context, id string, active bool) error

	// DeleteBanner removes a banner permanently.
	DeleteBanner(ctx context.Context, id string) error

	// SweepExpired deactivates every active banner whose end date has
	// passed. Returns the number of banners demoted. The sweep never
	// reactivates or deletes anything.
	SweepExpired(ctx context.Context) (int, error)
}
