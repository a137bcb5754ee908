package usecase

import (
	"context"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
)

// LoginResult bundles the tokens and the authenticated account.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.StaffAccount
}

// CreateStaffInput carries the fields for a new dashboard account.
// Permissions are seeded from the role preset.
type CreateStaffInput struct {
	Name     string
	Username string
	Password string
	Phone    string
	Role     entity.StaffRole
}

// StaffUsecase defines the interface for staff authentication and management use cases
type StaffUsecase interface {
	// Login verifies credentials and issues a token pair. Deactivated
	// accounts are rejected even with a correct password.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// RefreshTokens exchanges a valid refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*LoginResult, error)

	// GetStaff retrieves one account by ID.
	GetStaff(ctx context.Context, id string) (*entity.StaffAccount, error)

	// ListStaff retrieves all accounts for the management screen.
	ListStaff(ctx context.Context) ([]*entity.StaffAccount, error)

	// CreateStaff registers a new account with role-preset permissions.
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.StaffAccount, error)

	// UpdateStaff edits the profile fields of an account.
	UpdateStaff(ctx context.Context, account *entity.StaffAccount) error

	// SetActive toggles whether an account may log in or act.
	SetActive(ctx context.Context, id string, active bool) error

	// SetPermission flips a single capability by its dot-path.
	SetPermission(ctx context.Context, id, capability string, value bool) error

	// ApplyRolePreset overwrites the whole permission document with the
	// role's baseline.
	ApplyRolePreset(ctx context.Context, id string, role entity.StaffRole) error

	// DeleteStaff removes an account permanently.
	DeleteStaff(ctx context.Context, id string) error
}
