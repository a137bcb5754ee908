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

// customerRepository implements repository.CustomerRepository on Firestore.
type customerRepository struct {
	client *firestore.Client
}

// NewCustomerRepository creates the Firestore-backed customer repository.
func NewCustomerRepository(client *firestore.Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionCustomers)
}

// Create persists a new customer and returns its generated document ID.
// The phone lookup runs first; the collection has no unique constraint.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) (string, error) {
	if _, err := r.FindByPhone(ctx, customer.TenantID, customer.Phone); err == nil {
		return "", repository.ErrDuplicatePhone
	} else if !errors.Is(err, repository.ErrCustomerNotFound) {
		return "", err
	}

	ref, _, err := r.collection().Add(ctx, customer)
	if err != nil {
		return "", errors.Wrap(err, "failed to add customer document")
	}

	return ref.ID, nil
}

// FindByID retrieves a single customer by their document ID.
func (r *customerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to get customer document")
	}

	return decodeCustomer(snap)
}

// FindByPhone retrieves a customer by phone number within a cafe.
func (r *customerRepository) FindByPhone(ctx context.Context, tenantID, phone string) (*entity.Customer, error) {
	iter := r.collection().
		Where("cafe_id", "==", tenantID).
		Where("phone", "==", phone).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrCustomerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query customer by phone")
	}

	return decodeCustomer(snap)
}

// List retrieves all customers for a cafe.
func (r *customerRepository) List(ctx context.Context, tenantID string) ([]*entity.Customer, error) {
	iter := r.collection().Where("cafe_id", "==", tenantID).Documents(ctx)
	defer iter.Stop()

	var customers []*entity.Customer
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate customers")
		}

		customer, err := decodeCustomer(snap)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// IncrementPoints atomically adjusts the loyalty balance by delta.
func (r *customerRepository) IncrementPoints(ctx context.Context, id string, delta int) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "loyaltyPoints", Value: firestore.Increment(delta)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to increment loyalty points")
	}

	return nil
}

// RecordOrder atomically bumps the order counter and the last visit time.
func (r *customerRepository) RecordOrder(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "totalOrders", Value: firestore.Increment(1)},
		{Path: "lastVisit", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to record customer order")
	}

	return nil
}

func decodeCustomer(snap *firestore.DocumentSnapshot) (*entity.Customer, error) {
	var customer entity.Customer
	if err := snap.DataTo(&customer); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer document")
	}
	customer.ID = snap.Ref.ID

	return &customer, nil
}
