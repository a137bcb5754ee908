package repository

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/errors"
)

// Domain-specific errors for staff persistence.
var (
	// ErrStaffNotFound is returned when a staff account is not found.
	ErrStaffNotFound = errors.New("staff account not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// StaffRepository defines the interface for staff account storage operations.
type StaffRepository interface {
	// Create persists a new staff account and returns its generated document ID.
	Create(ctx context.Context, account *entity.StaffAccount) (string, error)

	// FindByID retrieves a staff account by its document ID.
	FindByID(ctx context.Context, id string) (*entity.StaffAccount, error)

	// FindByUsername retrieves a staff account by its login name.
	FindByUsername(ctx context.Context, username string) (*entity.StaffAccount, error)

	// List retrieves all staff accounts.
	List(ctx context.Context) ([]*entity.StaffAccount, error)

	// Update overwrites the mutable profile fields of an account.
	Update(ctx context.Context, account *entity.StaffAccount) error

	// UpdatePermissions replaces the whole permission document for an account.
	UpdatePermissions(ctx context.Context, id string, permissions entity.Permissions) error

	// SetActive toggles whether the account may log in or act.
	SetActive(ctx context.Context, id string, active bool) error

	// RecordLogin stamps the last successful login time.
	RecordLogin(ctx context.Context, id string) error

	// Delete removes a staff account permanently.
	Delete(ctx context.Context, id string) error
}
