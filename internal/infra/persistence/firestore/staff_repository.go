package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/constants"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
)

// staffRepository implements repository.StaffRepository on Firestore.
type staffRepository struct {
	client *firestore.Client
}

// NewStaffRepository creates the Firestore-backed staff repository.
func NewStaffRepository(client *firestore.Client) repository.StaffRepository {
	return &staffRepository{client: client}
}

func (r *staffRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionStaff)
}

// Create persists a new staff account and returns its generated document ID.
func (r *staffRepository) Create(ctx context.Context, account *entity.StaffAccount) (string, error) {
	if _, err := r.FindByUsername(ctx, account.Username); err == nil {
		return "", repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrStaffNotFound) {
		return "", err
	}

	ref, _, err := r.collection().Add(ctx, account)
	if err != nil {
		return "", errors.Wrap(err, "failed to add staff document")
	}

	return ref.ID, nil
}

// FindByID retrieves a staff account by its document ID.
func (r *staffRepository) FindByID(ctx context.Context, id string) (*entity.StaffAccount, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to get staff document")
	}

	return decodeStaff(snap)
}

// FindByUsername retrieves a staff account by its login name.
func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*entity.StaffAccount, error) {
	iter := r.collection().Where("username", "==", username).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrStaffNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query staff by username")
	}

	return decodeStaff(snap)
}

// List retrieves all staff accounts.
func (r *staffRepository) List(ctx context.Context) ([]*entity.StaffAccount, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	var accounts []*entity.StaffAccount
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate staff")
		}

		account, err := decodeStaff(snap)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Update overwrites the mutable profile fields of an account.
func (r *staffRepository) Update(ctx context.Context, account *entity.StaffAccount) error {
	_, err := r.collection().Doc(account.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: account.Name},
		{Path: "phone", Value: account.Phone},
		{Path: "role", Value: account.Role.String()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to update staff document")
	}

	return nil
}

// UpdatePermissions replaces the whole permission document for an account.
func (r *staffRepository) UpdatePermissions(ctx context.Context, id string, permissions entity.Permissions) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "permissions", Value: permissions},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to update staff permissions")
	}

	return nil
}

// SetActive toggles whether the account may log in or act.
func (r *staffRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isActive", Value: active},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to toggle staff account")
	}

	return nil
}

// RecordLogin stamps the last successful login time.
func (r *staffRepository) RecordLogin(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "lastLogin", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrStaffNotFound
		}

		return errors.Wrap(err, "failed to record staff login")
	}

	return nil
}

// Delete removes a staff account permanently.
func (r *staffRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}

	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete staff document")
	}

	return nil
}

func decodeStaff(snap *firestore.DocumentSnapshot) (*entity.StaffAccount, error) {
	var account entity.StaffAccount
	if err := snap.DataTo(&account); err != nil {
		return nil, errors.Wrap(err, "failed to decode staff document")
	}
	account.ID = snap.Ref.ID

	return &account, nil
}
