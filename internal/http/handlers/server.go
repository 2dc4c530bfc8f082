package handlers

import (
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

var (
	productRepo   repo.ProductRepository
	referenceRepo repo.ReferenceRepository

	logger = zap.NewNop()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetReferenceRepo(r repo.ReferenceRepository) {
	referenceRepo = r
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
