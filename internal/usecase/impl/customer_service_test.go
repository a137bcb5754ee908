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
	mockSvc "github.com/ahmedabdelhady55/cafe-ordering-system/internal/mocks/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

func newCustomerService(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository, *mockSvc.MockQRCodeService) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo:  customerRepo,
		QRCodeService: qrService,
		Config:        newTestConfig(),
		Logger:        newTestLogger(),
	})

	return service, customerRepo, qrService
}

func TestCustomerService_Register_NewMember(t *testing.T) {
	service, customerRepo, _ := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("FindByPhone", ctx, "cafe_001", "0101234567").
		Return(nil, repository.ErrCustomerNotFound)
	customerRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Phone == "0101234567" && c.LoyaltyPoints == entity.SignupBonus
	})).Return("cust1", nil)

	customer, err := service.Register(ctx, " أحمد ", " 0101234567 ")
	require.NoError(t, err)
	assert.Equal(t, "cust1", customer.ID)
	assert.Equal(t, "أحمد", customer.Name)
	assert.Equal(t, entity.SignupBonus, customer.LoyaltyPoints)
}

func TestCustomerService_Register_ExistingPhoneIsIdempotent(t *testing.T) {
	service, customerRepo, _ := newCustomerService(t)
	ctx := context.Background()

	existing := &entity.Customer{ID: "cust1", Name: "سارة", Phone: "0101234567", LoyaltyPoints: 340}
	customerRepo.On("FindByPhone", ctx, "cafe_001", "0101234567").Return(existing, nil)

	customer, err := service.Register(ctx, "سارة", "0101234567")
	require.NoError(t, err)
	assert.Same(t, existing, customer)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Register_RequiresNameAndPhone(t *testing.T) {
	service, _, _ := newCustomerService(t)

	_, err := service.Register(context.Background(), "", "0101234567")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.Register(context.Background(), "أحمد", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_OpenSession_Guest(t *testing.T) {
	service, _, _ := newCustomerService(t)

	session, err := service.OpenSession(context.Background(), "7", "")
	require.NoError(t, err)
	assert.Equal(t, "7", session.TableID)
	assert.Nil(t, session.Customer)
	assert.Equal(t, entity.GuestName, session.CustomerName())
}

func TestCustomerService_OpenSession_InvalidTable(t *testing.T) {
	service, _, _ := newCustomerService(t)

	_, err := service.OpenSession(context.Background(), "0", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTableNumber)

	_, err = service.OpenSession(context.Background(), "abc", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTableNumber)
}

func TestCustomerService_OpenSession_StaleCustomerFallsBackToGuest(t *testing.T) {
	service, customerRepo, _ := newCustomerService(t)
	ctx := context.Background()

	customerRepo.On("FindByID", ctx, "gone").Return(nil, repository.ErrCustomerNotFound)

	session, err := service.OpenSession(ctx, "7", "gone")
	require.NoError(t, err)
	assert.Nil(t, session.Customer)
}

func TestCustomerService_OpenSession_RegisteredCustomer(t *testing.T) {
	service, customerRepo, _ := newCustomerService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: "cust1", Name: "سارة"}
	customerRepo.On("FindByID", ctx, "cust1").Return(customer, nil)

	session, err := service.OpenSession(ctx, "7", "cust1")
	require.NoError(t, err)
	assert.Equal(t, "سارة", session.CustomerName())
}

func TestCustomerService_GenerateTableQR(t *testing.T) {
	service, _, qrService := newCustomerService(t)

	qrService.On("GenerateTableQR", "42").Return([]byte{0x89, 0x50}, nil)

	png, err := service.GenerateTableQR(context.Background(), "42")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = service.GenerateTableQR(context.Background(), "1000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTableNumber)
}
