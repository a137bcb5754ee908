package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/ahmedabdelhady55/cafe-ordering-system/config"
	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo  repository.CustomerRepository
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo  repository.CustomerRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo:  params.CustomerRepo,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Register creates a loyalty member keyed by phone number and credits
// the signup bonus. Registering an already-known phone returns the
// existing member unchanged so a re-scan never double-credits.
func (s *customerService) Register(ctx context.Context, name, phone string) (*entity.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and phone are required")
	}

	existing, err := s.customerRepo.FindByPhone(ctx, s.config.Cafe.TenantID, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to look up phone number")
	}

	customer := &entity.Customer{
		TenantID:      s.config.Cafe.TenantID,
		Name:          name,
		Phone:         phone,
		LoyaltyPoints: entity.SignupBonus,
	}

	id, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, domainerrors.ErrPhoneAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}
	customer.ID = id

	s.log(ctx).Info("customer registered", slog.String("customer_id", id))

	return customer, nil
}

// FindByPhone looks a customer up for the returning-visitor flow.
func (s *customerService) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByPhone(ctx, s.config.Cafe.TenantID, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *customerService) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// ListCustomers retrieves all loyalty members for the dashboard.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.List(ctx, s.config.Cafe.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// OpenSession validates the table number from a QR deep link and builds
// the per-visit context. A stale customer reference degrades to a guest
// session rather than blocking the visit.
func (s *customerService) OpenSession(ctx context.Context, tableID, customerID string) (*entity.TableSession, error) {
	if !entity.ValidTableNumber(tableID, s.config.Cafe.MaxTableNumber) {
		return nil, domainerrors.ErrInvalidTableNumber.WrapMessage("table " + tableID)
	}

	session := &entity.TableSession{TableID: tableID}
	if customerID == "" {
		return session, nil
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			s.log(ctx).Warn("session referenced unknown customer, continuing as guest",
				slog.String("customer_id", customerID),
			)

			return session, nil
		}

		return nil, errors.Wrap(err, "failed to resolve session customer")
	}
	session.Customer = customer

	return session, nil
}

// GenerateTableQR renders the QR code image for a table.
func (s *customerService) GenerateTableQR(ctx context.Context, tableID string) ([]byte, error) {
	if !entity.ValidTableNumber(tableID, s.config.Cafe.MaxTableNumber) {
		return nil, domainerrors.ErrInvalidTableNumber.WrapMessage("table " + tableID)
	}

	qr, err := s.qrcodeService.GenerateTableQR(tableID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate table QR")
	}

	return qr, nil
}
