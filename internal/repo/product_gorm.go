package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultQueryTimeout = 3 * time.Second

type GormProductRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormProductRepository(db *gorm.DB, timeout time.Duration) *GormProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &GormProductRepository{db: db, timeout: timeout}
}

// session scopes a gorm handle to one call; the pooled connection goes back
// when cancel runs.
func (r *GormProductRepository) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(ctx), cancel
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Joins("Category").Joins("Supplier")
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	var products []models.Product
	if err := withRelations(tx).Order("products.product_id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	var p models.Product
	err := withRelations(tx).Where("products.product_id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *GormProductRepository) Find(ctx context.Context, id int) (models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	var p models.Product
	err := tx.Where("product_id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

func (r *GormProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	p.ProductID = 0
	p.Version = 1
	p.Category, p.Supplier = nil, nil
	if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (r *GormProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	res := tx.Model(&models.Product{}).
		Where("product_id = ? AND version = ?", p.ProductID, p.Version).
		Updates(map[string]any{
			"product_name":      p.ProductName,
			"supplier_id":       p.SupplierID,
			"category_id":       p.CategoryID,
			"quantity_per_unit": p.QuantityPerUnit,
			"unit_price":        p.UnitPrice,
			"units_in_stock":    p.UnitsInStock,
			"units_on_order":    p.UnitsOnOrder,
			"reorder_level":     p.ReorderLevel,
			"discontinued":      p.Discontinued,
			"version":           gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", p.ProductID, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrConcurrencyConflict
	}

	p.Version++
	p.Category, p.Supplier = nil, nil
	return p, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int) error {
	tx, cancel := r.session(ctx)
	defer cancel()

	res := tx.Where("product_id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) SearchByName(ctx context.Context, term string) ([]models.Product, error) {
	tx, cancel := r.session(ctx)
	defer cancel()

	q := tx.Order("product_id")
	if term != "" {
		q = q.Where("product_name LIKE ?", "%"+escapeLike(term)+"%")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in term match literally. Postgres uses the
// backslash as the default LIKE escape character.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
