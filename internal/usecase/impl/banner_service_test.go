package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	mockRepo "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

func newBannerService(t *testing.T) (usecase.BannerUsecase, *mockRepo.MockBannerRepository) {
	bannerRepo := mockRepo.NewMockBannerRepository(t)
	service := NewBannerService(BannerServiceParams{
		BannerRepo: bannerRepo,
		Logger:     newTestLogger(),
	})

	return service, bannerRepo
}

func TestBannerService_SweepExpired_DemotesOnly(t *testing.T) {
	service, bannerRepo := newBannerService(t)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	bannerRepo.On("ListActive", ctx).Return([]*entity.Banner{
		{ID: "expired", Active: true, EndDate: yesterday},
		{ID: "current", Active: true, EndDate: tomorrow},
		{ID: "open-ended", Active: true},
	}, nil)
	bannerRepo.On("SetActive", ctx, "expired", false).Return(nil)

	swept, err := service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	bannerRepo.AssertNotCalled(t, "SetActive", ctx, "current", false)
	bannerRepo.AssertNotCalled(t, "Delete", ctx, "expired")
}

func TestBannerService_SweepExpired_NothingToDo(t *testing.T) {
	service, bannerRepo := newBannerService(t)
	ctx := context.Background()

	bannerRepo.On("ListActive", ctx).Return([]*entity.Banner{}, nil)

	swept, err := service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, swept)
}

func TestBannerService_CreateBanner(t *testing.T) {
	service, bannerRepo := newBannerService(t)
	ctx := context.Background()

	banner := &entity.Banner{
		Title:     "خصم الصيف",
		Type:      entity.BannerGradient,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Active:    true,
	}
	bannerRepo.On("Create", ctx, banner).Return("banner1", nil)

	created, err := service.CreateBanner(ctx, banner)
	require.NoError(t, err)
	assert.Equal(t, "banner1", created.ID)
}

func TestBannerService_CreateBanner_Rejections(t *testing.T) {
	service, _ := newBannerService(t)
	ctx := context.Background()

	_, err := service.CreateBanner(ctx, &entity.Banner{Type: entity.BannerGradient})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateBanner(ctx, &entity.Banner{Title: "x", Type: entity.BannerType("video")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateBanner(ctx, &entity.Banner{
		Title:     "x",
		Type:      entity.BannerImage,
		StartDate: "2024-06-30",
		EndDate:   "2024-06-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestBannerService_ActiveBanners(t *testing.T) {
	service, bannerRepo := newBannerService(t)
	ctx := context.Background()

	bannerRepo.On("ListActive", ctx).Return([]*entity.Banner{
		{ID: "1", Active: true},
		{ID: "2", Active: true},
	}, nil)

	banners, err := service.ActiveBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 2)
}
