package handlers

import (
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// ProductRequest is the typed payload bound from a create or edit submission.
type ProductRequest struct {
	ProductID       int             `json:"productId"`
	ProductName     string          `json:"productName"`
	SupplierID      int             `json:"supplierId"`
	CategoryID      int             `json:"categoryId"`
	QuantityPerUnit string          `json:"quantityPerUnit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	UnitsInStock    int             `json:"unitsInStock"`
	UnitsOnOrder    int             `json:"unitsOnOrder"`
	ReorderLevel    int             `json:"reorderLevel"`
	Discontinued    bool            `json:"discontinued"`
	Version         int             `json:"version"`
}

// ProductForm holds the values exactly as they are shown in, or were submitted
// from, the create and edit forms.
type ProductForm struct {
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	SupplierID      string `json:"supplierId"`
	CategoryID      string `json:"categoryId"`
	QuantityPerUnit string `json:"quantityPerUnit"`
	UnitPrice       string `json:"unitPrice"`
	UnitsInStock    string `json:"unitsInStock"`
	UnitsOnOrder    string `json:"unitsOnOrder"`
	ReorderLevel    string `json:"reorderLevel"`
	Discontinued    bool   `json:"discontinued"`
	Version         string `json:"version"`
}

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ProductListView struct {
	Products []models.Product `json:"products"`
}

type ProductView struct {
	Product models.Product `json:"product"`
	Token   string         `json:"token,omitempty"`
}

type ProductFormView struct {
	Product    ProductForm              `json:"product"`
	Categories []models.Category        `json:"categories"`
	Suppliers  []models.Supplier        `json:"suppliers"`
	Errors     []ProductValidationError `json:"errors,omitempty"`
	Message    string                   `json:"message,omitempty"`
	Token      string                   `json:"token"`
}

type SearchView struct {
	Query    string           `json:"query"`
	Products []models.Product `json:"products"`
}

type ErrorView struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
