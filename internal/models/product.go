package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry. It belongs to one Category and one Supplier.
type Product struct {
	ProductID       int             `gorm:"column:product_id;primaryKey;autoIncrement" json:"productId"`
	ProductName     string          `gorm:"column:product_name;size:40;not null;index" json:"productName"`
	SupplierID      int             `gorm:"column:supplier_id;not null;index" json:"supplierId"`
	CategoryID      int             `gorm:"column:category_id;not null;index" json:"categoryId"`
	QuantityPerUnit string          `gorm:"column:quantity_per_unit;size:20" json:"quantityPerUnit"`
	UnitPrice       decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null;default:0" json:"unitPrice"`
	UnitsInStock    int16           `gorm:"column:units_in_stock;not null;default:0" json:"unitsInStock"`
	UnitsOnOrder    int16           `gorm:"column:units_on_order;not null;default:0" json:"unitsOnOrder"`
	ReorderLevel    int16           `gorm:"column:reorder_level;not null;default:0" json:"reorderLevel"`
	Discontinued    bool            `gorm:"column:discontinued;not null;default:false" json:"discontinued"`
	Version         int             `gorm:"column:version;not null;default:1" json:"version"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"supplier,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
