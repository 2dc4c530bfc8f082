package db

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Migrate creates or alters the categories, suppliers and products tables.
func Migrate(ctx context.Context, gdb *gorm.DB) error {
	if err := gdb.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Supplier{}, &models.Product{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts a small Northwind sample when the products table is empty.
func Seed(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		beverages := models.Category{CategoryName: "Beverages"}
		condiments := models.Category{CategoryName: "Condiments"}
		if err := tx.Create(&[]*models.Category{&beverages, &condiments}).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}

		exotic := models.Supplier{CompanyName: "Exotic Liquids"}
		cajun := models.Supplier{CompanyName: "New Orleans Cajun Delights"}
		if err := tx.Create(&[]*models.Supplier{&exotic, &cajun}).Error; err != nil {
			return fmt.Errorf("seed suppliers: %w", err)
		}

		products := []models.Product{
			{ProductName: "Chai", SupplierID: exotic.SupplierID, CategoryID: beverages.CategoryID, QuantityPerUnit: "10 boxes x 20 bags", UnitPrice: decimal.RequireFromString("18.00"), UnitsInStock: 39, ReorderLevel: 10, Version: 1},
			{ProductName: "Chang", SupplierID: exotic.SupplierID, CategoryID: beverages.CategoryID, QuantityPerUnit: "24 - 12 oz bottles", UnitPrice: decimal.RequireFromString("19.00"), UnitsInStock: 17, UnitsOnOrder: 40, ReorderLevel: 25, Version: 1},
			{ProductName: "Aniseed Syrup", SupplierID: exotic.SupplierID, CategoryID: condiments.CategoryID, QuantityPerUnit: "12 - 550 ml bottles", UnitPrice: decimal.RequireFromString("10.00"), UnitsInStock: 13, UnitsOnOrder: 70, ReorderLevel: 25, Version: 1},
			{ProductName: "Chef Anton's Cajun Seasoning", SupplierID: cajun.SupplierID, CategoryID: condiments.CategoryID, QuantityPerUnit: "48 - 6 oz jars", UnitPrice: decimal.RequireFromString("22.00"), UnitsInStock: 53, Version: 1},
		}
		if err := tx.Omit("Category", "Supplier").Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		return nil
	})
}
