package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// bannerService implements the BannerUsecase interface.
type bannerService struct {
	bannerRepo repository.BannerRepository
	logger     *slog.Logger
}

// BannerServiceParams holds dependencies for BannerService, injected by Fx.
type BannerServiceParams struct {
	fx.In

	BannerRepo repository.BannerRepository
	Logger     *slog.Logger
}

// NewBannerService creates a new banner service instance
func NewBannerService(params BannerServiceParams) usecase.BannerUsecase {
	return &bannerService{
		bannerRepo: params.BannerRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *bannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListBanners retrieves all banners for the management screen.
func (s *bannerService) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := s.bannerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}

// ActiveBanners retrieves the banners eligible for the carousel.
func (s *bannerService) ActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := s.bannerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active banners")
	}

	return entity.EligibleBanners(banners), nil
}

// CreateBanner adds a banner after validating its date range.
func (s *bannerService) CreateBanner(ctx context.Context, banner *entity.Banner) (*entity.Banner, error) {
	if err := validateBanner(banner); err != nil {
		return nil, err
	}

	id, err := s.bannerRepo.Create(ctx, banner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}
	banner.ID = id

	return banner, nil
}

// UpdateBanner edits a banner.
func (s *bannerService) UpdateBanner(ctx context.Context, banner *entity.Banner) error {
	if err := validateBanner(banner); err != nil {
		return err
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to update banner")
	}

	return nil
}

// SetActive toggles a banner's visibility flag.
func (s *bannerService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.bannerRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to toggle banner")
	}

	return nil
}

// DeleteBanner removes a banner permanently.
func (s *bannerService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to delete banner")
	}

	s.log(ctx).Info("banner deleted", slog.String("banner_id", id))

	return nil
}

// SweepExpired deactivates every active banner whose end date has
// passed. The sweep only ever demotes; reactivation stays a manual
// admin action.
func (s *bannerService) SweepExpired(ctx context.Context) (int, error) {
	banners, err := s.bannerRepo.ListActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active banners")
	}

	now := time.Now()
	swept := 0
	for _, banner := range banners {
		if !banner.Expired(now) {
			continue
		}
		if err := s.bannerRepo.SetActive(ctx, banner.ID, false); err != nil {
			s.log(ctx).Error("failed to deactivate expired banner",
				slog.String("banner_id", banner.ID),
				slog.Any("error", err),
			)

			continue
		}
		swept++
	}

	if swept > 0 {
		s.log(ctx).Info("expired banners deactivated", slog.Int("count", swept))
	}

	return swept, nil
}

// validateBanner checks the fields shared by create and update.
func validateBanner(banner *entity.Banner) error {
	if banner.Title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("banner title is required")
	}
	if !banner.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown banner type")
	}
	if banner.StartDate != "" && banner.EndDate != "" && banner.EndDate < banner.StartDate {
		return domainerrors.ErrInvalidDateRange
	}

	return nil
}
