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

// bannerRepository implements repository.BannerRepository on Firestore.
type bannerRepository struct {
	client *firestore.Client
}

// NewBannerRepository creates the Firestore-backed banner repository.
func NewBannerRepository(client *firestore.Client) repository.BannerRepository {
	return &bannerRepository{client: client}
}

func (r *bannerRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionBanners)
}

// Create persists a new banner and returns its generated document ID.
func (r *bannerRepository) Create(ctx context.Context, banner *entity.Banner) (string, error) {
	ref, _, err := r.collection().Add(ctx, banner)
	if err != nil {
		return "", errors.Wrap(err, "failed to add banner document")
	}

	return ref.ID, nil
}

// FindByID retrieves a banner by its document ID.
func (r *bannerRepository) FindByID(ctx context.Context, id string) (*entity.Banner, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to get banner document")
	}

	return decodeBanner(snap)
}

// List retrieves all banners, newest first.
func (r *bannerRepository) List(ctx context.Context) ([]*entity.Banner, error) {
	query := r.collection().OrderBy("createdAt", firestore.Desc)

	return collectBanners(query.Documents(ctx))
}

// ListActive retrieves only banners currently flagged active.
func (r *bannerRepository) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	query := r.collection().Where("active", "==", true)

	return collectBanners(query.Documents(ctx))
}

// Update overwrites the mutable fields of a banner.
func (r *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	_, err := r.collection().Doc(banner.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: banner.Title},
		{Path: "subtitle", Value: banner.Subtitle},
		{Path: "type", Value: string(banner.Type)},
		{Path: "gradient", Value: banner.Gradient},
		{Path: "image", Value: banner.Image},
		{Path: "icon", Value: banner.Icon},
		{Path: "startDate", Value: banner.StartDate},
		{Path: "endDate", Value: banner.EndDate},
		{Path: "active", Value: banner.Active},
		{Path: "link", Value: banner.Link},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to update banner document")
	}

	return nil
}

// SetActive toggles a banner's visibility flag.
func (r *bannerRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: active},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to toggle banner")
	}

	return nil
}

// Delete removes a banner permanently.
func (r *bannerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}

	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete banner document")
	}

	return nil
}

func collectBanners(iter *firestore.DocumentIterator) ([]*entity.Banner, error) {
	defer iter.Stop()

	var banners []*entity.Banner
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate banners")
		}

		banner, err := decodeBanner(snap)
		if err != nil {
			return nil, err
		}
		banners = append(banners, banner)
	}

	return banners, nil
}

func decodeBanner(snap *firestore.DocumentSnapshot) (*entity.Banner, error) {
	var banner entity.Banner
	if err := snap.DataTo(&banner); err != nil {
		return nil, errors.Wrap(err, "failed to decode banner document")
	}
	banner.ID = snap.Ref.ID

	return &banner, nil
}
