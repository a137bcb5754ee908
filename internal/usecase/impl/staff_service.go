package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/ahmedabdelhady55/cafe-ordering-system/internal/delivery/context"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	domainerrors "github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/errors"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/usecase"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	StaffRepo    repository.StaffRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewStaffService creates a new staff service instance
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		staffRepo:    params.StaffRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Login verifies credentials and issues a token pair. A wrong username
// and a wrong password are indistinguishable to the caller.
func (s *staffService) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	account, err := s.staffRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find staff by username")
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := s.staffRepo.RecordLogin(ctx, account.ID); err != nil {
		s.log(ctx).Warn("failed to record login time",
			slog.String("staff_id", account.ID),
			slog.Any("error", err),
		)
	}

	s.log(ctx).Info("staff logged in",
		slog.String("staff_id", account.ID),
		slog.String("role", account.Role.String()),
	)

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// RefreshTokens exchanges a valid refresh token for a new pair. The
// account is re-read so a deactivation since issuance takes effect.
func (s *staffService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.LoginResult, error) {
	claims, err := s.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrTokenInvalid
	}

	account, err := s.staffRepo.FindByID(ctx, claims.StaffID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find staff for refresh")
	}
	if !account.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Account:      account,
	}, nil
}

// GetStaff retrieves one account by ID.
func (s *staffService) GetStaff(ctx context.Context, id string) (*entity.StaffAccount, error) {
	account, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff")
	}

	return account, nil
}

// ListStaff retrieves all accounts for the management screen.
func (s *staffService) ListStaff(ctx context.Context) ([]*entity.StaffAccount, error) {
	accounts, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return accounts, nil
}

// CreateStaff registers a new account with role-preset permissions.
func (s *staffService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.StaffAccount, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := &entity.StaffAccount{
		Name:         strings.TrimSpace(input.Name),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         input.Role,
		IsActive:     true,
		Permissions:  entity.RolePreset(input.Role),
	}

	id, err := s.staffRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, errors.Wrap(err, "failed to create staff account")
	}
	account.ID = id

	s.log(ctx).Info("staff account created",
		slog.String("staff_id", id),
		slog.String("role", account.Role.String()),
	)

	return account, nil
}

// UpdateStaff edits the profile fields of an account.
func (s *staffService) UpdateStaff(ctx context.Context, account *entity.StaffAccount) error {
	if _, err := s.GetStaff(ctx, account.ID); err != nil {
		return err
	}

	if err := s.staffRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update staff account")
	}

	return nil
}

// SetActive toggles whether an account may log in or act.
func (s *staffService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}

	if err := s.staffRepo.SetActive(ctx, id, active); err != nil {
		return errors.Wrap(err, "failed to toggle staff account")
	}

	s.log(ctx).Info("staff account toggled",
		slog.String("staff_id", id),
		slog.Bool("active", active),
	)

	return nil
}

// SetPermission flips a single capability by its dot-path.
func (s *staffService) SetPermission(ctx context.Context, id, capability string, value bool) error {
	account, err := s.GetStaff(ctx, id)
	if err != nil {
		return err
	}

	perms := account.Permissions
	if !perms.SetLeaf(capability, value) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown capability " + capability)
	}

	if err := s.staffRepo.UpdatePermissions(ctx, id, perms); err != nil {
		return errors.Wrap(err, "failed to update permissions")
	}

	return nil
}

// ApplyRolePreset overwrites the whole permission document with the
// role's baseline. Never a merge.
func (s *staffService) ApplyRolePreset(ctx context.Context, id string, role entity.StaffRole) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}

	if err := s.staffRepo.UpdatePermissions(ctx, id, entity.RolePreset(role)); err != nil {
		return errors.Wrap(err, "failed to apply role preset")
	}

	return nil
}

// DeleteStaff removes an account permanently.
func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete staff account")
	}

	s.log(ctx).Info("staff account deleted", slog.String("staff_id", id))

	return nil
}
