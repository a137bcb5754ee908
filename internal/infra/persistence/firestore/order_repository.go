package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/constants"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository on Firestore.
type orderRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewOrderRepository creates the Firestore-backed order repository.
func NewOrderRepository(client *firestore.Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionOrders)
}

// Create persists a new order and returns its generated document ID.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (string, error) {
	ref, _, err := r.collection().Add(ctx, order)
	if err != nil {
		return "", errors.Wrap(err, "failed to add order document")
	}

	return ref.ID, nil
}

// FindByID retrieves a single order by its document ID.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order document")
	}

	return decodeOrder(snap)
}

// ListByTenant retrieves all orders for a cafe, newest first.
func (r *orderRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Order, error) {
	query := r.collection().
		Where("cafe_id", "==", tenantID).
		OrderBy("createdAt", firestore.Desc)

	return r.queryOrders(ctx, query)
}

// ListByCustomer retrieves all orders placed by a customer, newest first.
func (r *orderRepository) ListByCustomer(ctx context.Context, tenantID, customerID string) ([]*entity.Order, error) {
	query := r.collection().
		Where("cafe_id", "==", tenantID).
		Where("customerId", "==", customerID).
		OrderBy("createdAt", firestore.Desc)

	return r.queryOrders(ctx, query)
}

// UpdateStatus sets the order status and refreshes the update timestamp.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, orderStatus entity.OrderStatus) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus.String()},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// Watch streams full snapshots of a cafe's orders whenever any document
// changes. The returned channel is closed when ctx is cancelled or the
// underlying listener fails.
func (r *orderRepository) Watch(ctx context.Context, tenantID string) (<-chan []*entity.Order, error) {
	query := r.collection().
		Where("cafe_id", "==", tenantID).
		OrderBy("createdAt", firestore.Desc)

	snapshots := query.Snapshots(ctx)
	out := make(chan []*entity.Order)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("order snapshot listener failed", slog.Any("error", err))
				}

				return
			}

			orders, err := collectOrders(snap.Documents)
			if err != nil {
				r.logger.Error("failed to decode order snapshot", slog.Any("error", err))

				continue
			}

			select {
			case out <- orders:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	return collectOrders(query.Documents(ctx))
}

func collectOrders(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	defer iter.Stop()

	var orders []*entity.Order
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate orders")
		}

		order, err := decodeOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var order entity.Order
	if err := snap.DataTo(&order); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}
	order.ID = snap.Ref.ID
	// The wall-clock order time is the server-side creation timestamp.
	order.OrderedAt = order.CreatedAt

	return &order, nil
}
