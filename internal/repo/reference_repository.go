package repo

import (
	"context"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ReferenceRepository reads the lookup tables products point to.
type ReferenceRepository interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Suppliers(ctx context.Context) ([]models.Supplier, error)
}
