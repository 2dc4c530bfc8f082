package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// GetAll returns every product with its category and supplier joined.
	GetAll(ctx context.Context) ([]models.Product, error)
	// GetByID returns one product with its category and supplier joined.
	GetByID(ctx context.Context, id int) (models.Product, error)
	// Find returns one product without related rows.
	Find(ctx context.Context, id int) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	// Update overwrites every editable field when product.Version still matches
	// the stored row, and returns the product carrying its new version.
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
	// SearchByName returns products whose name contains term. An empty term
	// matches every product.
	SearchByName(ctx context.Context, term string) ([]models.Product, error)
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrConcurrencyConflict is returned by Update when the row was changed or
	// removed after it was read.
	ErrConcurrencyConflict = errors.New("product was modified or deleted concurrently")
)
