package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
)

type GormReferenceRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormReferenceRepository(db *gorm.DB, timeout time.Duration) *GormReferenceRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &GormReferenceRepository{db: db, timeout: timeout}
}

func (r *GormReferenceRepository) Categories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("category_id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *GormReferenceRepository) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}
