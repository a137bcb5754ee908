package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/constants"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/entity"
	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/repository"
)

// loyaltyRepository implements repository.LoyaltyRepository on Firestore.
// The whole program configuration lives in one well-known document.
type loyaltyRepository struct {
	client *firestore.Client
}

// NewLoyaltyRepository creates the Firestore-backed loyalty repository.
func NewLoyaltyRepository(client *firestore.Client) repository.LoyaltyRepository {
	return &loyaltyRepository{client: client}
}

func (r *loyaltyRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(constants.CollectionLoyalty).Doc(constants.LoyaltySettingsDocID)
}

// GetSettings retrieves the loyalty configuration, falling back to
// defaults when none has been saved yet.
func (r *loyaltyRepository) GetSettings(ctx context.Context) (*entity.LoyaltySettings, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			settings := entity.DefaultLoyaltySettings()

			return &settings, nil
		}

		return nil, errors.Wrap(err, "failed to get loyalty settings")
	}

	var settings entity.LoyaltySettings
	if err := snap.DataTo(&settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode loyalty settings")
	}
	settings.Normalize()

	return &settings, nil
}

// SaveSettings overwrites the loyalty configuration.
func (r *loyaltyRepository) SaveSettings(ctx context.Context, settings *entity.LoyaltySettings) error {
	if _, err := r.doc().Set(ctx, settings); err != nil {
		return errors.Wrap(err, "failed to save loyalty settings")
	}

	return nil
}
