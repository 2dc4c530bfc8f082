package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
	refs     *InMemoryReferenceRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
// Related categories and suppliers are resolved from refs, which may be nil.
func NewInMemoryProductRepository(refs *InMemoryReferenceRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
		refs:     refs,
	}
}

func (r *InMemoryProductRepository) join(p models.Product) models.Product {
	if r.refs == nil {
		return p
	}
	if c, ok := r.refs.category(p.CategoryID); ok {
		p.Category = &c
	}
	if s, ok := r.refs.supplier(p.SupplierID); ok {
		p.Supplier = &s
	}
	return p
}

func (r *InMemoryProductRepository) indexOf(id int) int {
	for i, p := range r.products {
		if p.ProductID == id {
			return i
		}
	}
	return -1
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products))
	for i, p := range r.products {
		products[i] = r.join(p)
	}
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.join(r.products[i]), nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Find(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ProductID = r.nextID
	product.Version = 1
	product.Category, product.Supplier = nil, nil
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ProductID)
	if i < 0 || r.products[i].Version != product.Version {
		return models.Product{}, ErrConcurrencyConflict
	}

	product.Version++
	product.Category, product.Supplier = nil, nil
	r.products[i] = product
	return product, nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// SearchByName matches case-sensitively, like LIKE on Postgres.
func (r *InMemoryProductRepository) SearchByName(_ context.Context, term string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.products {
		if strings.Contains(p.ProductName, term) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.nextID = 1
}
