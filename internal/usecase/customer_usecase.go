package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// CustomerUsecase defines the interface for customer registration and session use cases
type CustomerUsecase interface {
	// Register creates a loyalty member keyed by phone number and credits
	// the signup bonus. Registering an existing phone returns the existing
	// member unchanged.
	Register(ctx context.Context, name, phone string) (*entity.Customer, error)

	// FindByPhone looks a customer up for the returning-visitor flow.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, id string) (*entity.Customer, error)

	// ListCustomers retrieves all loyalty members for the dashboard.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// OpenSession validates the table number from a QR deep link and
	// builds the per-visit context, guest or registered.
	OpenSession(ctx context.Context, tableID, customerID string) (*entity.TableSession, error)

	// GenerateTableQR renders the QR code image for a table.
	GenerateTableQR(ctx context.Context, tableID string) ([]byte, error)
}
