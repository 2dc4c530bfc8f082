package models

// Supplier provides products. The catalog only reads suppliers.
type Supplier struct {
	SupplierID  int    `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplierId"`
	CompanyName string `gorm:"column:company_name;size:40;not null" json:"companyName"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
