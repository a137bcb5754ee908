package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	mockRepo "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

func newLoyaltyService(t *testing.T) (usecase.LoyaltyUsecase, *mockRepo.MockLoyaltyRepository, *mockRepo.MockCustomerRepository) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewLoyaltyService(LoyaltyServiceParams{
		LoyaltyRepo:  loyaltyRepo,
		CustomerRepo: customerRepo,
		Logger:       newTestLogger(),
	})

	return service, loyaltyRepo, customerRepo
}

func TestLoyaltyService_UpdateSettings_NormalizesBeforeSave(t *testing.T) {
	service, loyaltyRepo, _ := newLoyaltyService(t)
	ctx := context.Background()

	loyaltyRepo.On("SaveSettings", ctx, mock.MatchedBy(func(s *entity.LoyaltySettings) bool {
		return s.RedemptionRate == 10 && s.PointsPerPound == 0
	})).Return(nil)

	err := service.UpdateSettings(ctx, &entity.LoyaltySettings{
		PointsPerPound: -1,
		RedemptionRate: 0,
	})
	require.NoError(t, err)
}

func TestLoyaltyService_QuoteRedemption(t *testing.T) {
	service, loyaltyRepo, customerRepo := newLoyaltyService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "cust1").
		Return(&entity.Customer{ID: "cust1", LoyaltyPoints: 120}, nil)
	loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)

	quote, err := service.QuoteRedemption(ctx, "cust1", 50, true)
	require.NoError(t, err)
	assert.True(t, quote.Eligible)
	assert.Equal(t, float64(12), quote.Discount)
	assert.Equal(t, 120, quote.PointsUsed)
}

func TestLoyaltyService_QuoteRedemption_UnknownCustomer(t *testing.T) {
	service, _, customerRepo := newLoyaltyService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrCustomerNotFound)

	_, err := service.QuoteRedemption(ctx, "missing", 50, true)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestLoyaltyService_GrantBirthdayBonus(t *testing.T) {
	service, loyaltyRepo, customerRepo := newLoyaltyService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "cust1").
		Return(&entity.Customer{ID: "cust1", LoyaltyPoints: 480}, nil).Once()
	loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)
	customerRepo.On("IncrementPoints", ctx, "cust1", 20).Return(nil)

	// Status re-read after the credit
	customerRepo.On("FindByID", ctx, "cust1").
		Return(&entity.Customer{ID: "cust1", LoyaltyPoints: 500}, nil).Once()

	status, err := service.GrantBirthdayBonus(ctx, "cust1")
	require.NoError(t, err)
	assert.Equal(t, 500, status.Customer.LoyaltyPoints)
	require.NotNil(t, status.Tier)
	assert.Equal(t, "silver", status.Tier.Name)
}

func TestLoyaltyService_GrantBirthdayBonus_UnknownCustomer(t *testing.T) {
	service, _, customerRepo := newLoyaltyService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrCustomerNotFound)

	_, err := service.GrantBirthdayBonus(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestLoyaltyService_GetStatus_ResolvesTier(t *testing.T) {
	service, loyaltyRepo, customerRepo := newLoyaltyService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "cust1").
		Return(&entity.Customer{ID: "cust1", LoyaltyPoints: 600}, nil)
	loyaltyRepo.On("GetSettings", ctx).Return(defaultSettingsPtr(), nil)

	status, err := service.GetStatus(ctx, "cust1")
	require.NoError(t, err)
	require.NotNil(t, status.Tier)
	assert.Equal(t, "silver", status.Tier.Name)
}
