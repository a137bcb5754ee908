package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	loyaltyRepo  repository.LoyaltyRepository
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	LoyaltyRepo  repository.LoyaltyRepository
	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		loyaltyRepo:  params.LoyaltyRepo,
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *loyaltyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetSettings retrieves the loyalty configuration.
func (s *loyaltyService) GetSettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	settings, err := s.loyaltyRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	return settings, nil
}

// UpdateSettings normalizes and persists the loyalty configuration.
func (s *loyaltyService) UpdateSettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	settings.Normalize()

	if err := s.loyaltyRepo.SaveSettings(ctx, settings); err != nil {
		return errors.Wrap(err, "failed to save loyalty settings")
	}

	s.log(ctx).Info("loyalty settings updated",
		slog.Int("redemption_rate", settings.RedemptionRate),
		slog.Int("min_points", settings.MinPointsForRedemption),
	)

	return nil
}

// QuoteRedemption previews the discount a customer's balance buys
// against a cart subtotal. Purely informational; nothing is debited.
func (s *loyaltyService) QuoteRedemption(ctx context.Context, customerID string, subtotal float64, optIn bool) (*entity.RedemptionQuote, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	settings, err := s.loyaltyRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	quote := settings.QuoteRedemption(customer.LoyaltyPoints, subtotal, optIn)

	return &quote, nil
}

// GrantBirthdayBonus credits the configured birthday bonus to a
// customer's balance. The credit is a single atomic increment.
func (s *loyaltyService) GrantBirthdayBonus(ctx context.Context, customerID string) (*usecase.LoyaltyStatus, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	settings, err := s.loyaltyRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	if settings.BirthdayBonus > 0 {
		if err := s.customerRepo.IncrementPoints(ctx, customerID, settings.BirthdayBonus); err != nil {
			return nil, errors.Wrap(err, "failed to credit birthday bonus")
		}

		s.log(ctx).Info("birthday bonus granted",
			slog.String("customer_id", customerID),
			slog.Int("bonus", settings.BirthdayBonus),
		)
	}

	return s.GetStatus(ctx, customerID)
}

// GetStatus resolves a customer's balance and tier.
func (s *loyaltyService) GetStatus(ctx context.Context, customerID string) (*usecase.LoyaltyStatus, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	settings, err := s.loyaltyRepo.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loyalty settings")
	}

	status := &usecase.LoyaltyStatus{Customer: customer}
	if tier, ok := settings.TierFor(customer.LoyaltyPoints); ok {
		status.Tier = &tier
	}

	return status, nil
}
