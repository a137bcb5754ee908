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

// catalogRepository implements repository.CatalogRepository on Firestore.
type catalogRepository struct {
	client *firestore.Client
}

// NewCatalogRepository creates the Firestore-backed catalog repository.
func NewCatalogRepository(client *firestore.Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) categories() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionCategories)
}

func (r *catalogRepository) products() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionProducts)
}

// CreateCategory persists a new category and returns its generated document ID.
func (r *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) (string, error) {
	ref, _, err := r.categories().Add(ctx, category)
	if err != nil {
		return "", errors.Wrap(err, "failed to add category document")
	}

	return ref.ID, nil
}

// ListCategories retrieves all categories ordered by display position.
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	iter := r.categories().OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var categories []*entity.Category
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate categories")
		}

		var category entity.Category
		if err := snap.DataTo(&category); err != nil {
			return nil, errors.Wrap(err, "failed to decode category document")
		}
		category.ID = snap.Ref.ID
		categories = append(categories, &category)
	}

	return categories, nil
}

// UpdateCategory overwrites the mutable fields of a category.
func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	_, err := r.categories().Doc(category.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: category.Name},
		{Path: "color", Value: category.Color},
		{Path: "visible", Value: category.Visible},
		{Path: "order", Value: category.DisplayOrder},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to update category document")
	}

	return nil
}

// DeleteCategory removes a category permanently.
func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	if _, err := r.categories().Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to get category document")
	}

	_, err := r.categories().Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete category document")
	}

	return nil
}

// CreateProduct persists a new product and returns its generated document ID.
func (r *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) (string, error) {
	ref, _, err := r.products().Add(ctx, product)
	if err != nil {
		return "", errors.Wrap(err, "failed to add product document")
	}

	return ref.ID, nil
}

// FindProductByID retrieves a product by its document ID.
func (r *catalogRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.products().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product document")
	}

	return decodeProduct(snap)
}

// ListProducts retrieves all products.
func (r *catalogRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return collectProducts(r.products().Documents(ctx))
}

// ListProductsByCategory retrieves products belonging to one category.
func (r *catalogRepository) ListProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	query := r.products().Where("category", "==", categoryID)

	return collectProducts(query.Documents(ctx))
}

// UpdateProduct overwrites the mutable fields of a product.
func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	_, err := r.products().Doc(product.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: product.Name},
		{Path: "description", Value: product.Description},
		{Path: "price", Value: product.Price},
		{Path: "category", Value: product.CategoryID},
		{Path: "image", Value: product.Image},
		{Path: "available", Value: product.Available},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product document")
	}

	return nil
}

// SetProductAvailability toggles whether a product can be ordered.
func (r *catalogRepository) SetProductAvailability(ctx context.Context, id string, available bool) error {
	_, err := r.products().Doc(id).Update(ctx, []firestore.Update{
		{Path: "available", Value: available},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to toggle product availability")
	}

	return nil
}

// DeleteProduct removes a product permanently.
func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.FindProductByID(ctx, id); err != nil {
		return err
	}

	_, err := r.products().Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete product document")
	}

	return nil
}

func collectProducts(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	var products []*entity.Product
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		product, err := decodeProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func decodeProduct(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}
	product.ID = snap.Ref.ID

	return &product, nil
}
