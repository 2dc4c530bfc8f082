package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type InMemoryReferenceRepository struct {
	mu         sync.RWMutex
	categories []models.Category
	suppliers  []models.Supplier
}

func NewInMemoryReferenceRepository() *InMemoryReferenceRepository {
	return &InMemoryReferenceRepository{
		categories: []models.Category{},
		suppliers:  []models.Supplier{},
	}
}

func (r *InMemoryReferenceRepository) AddCategory(c models.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, c)
}

func (r *InMemoryReferenceRepository) AddSupplier(s models.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, s)
}

func (r *InMemoryReferenceRepository) Categories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Category{}, r.categories...), nil
}

func (r *InMemoryReferenceRepository) Suppliers(_ context.Context) ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Supplier{}, r.suppliers...), nil
}

func (r *InMemoryReferenceRepository) category(id int) (models.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.CategoryID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (r *InMemoryReferenceRepository) supplier(id int) (models.Supplier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.suppliers {
		if s.SupplierID == id {
			return s, true
		}
	}
	return models.Supplier{}, false
}
