package models

// Category groups products. The catalog only reads categories.
type Category struct {
	CategoryID   int    `gorm:"column:category_id;primaryKey;autoIncrement" json:"categoryId"`
	CategoryName string `gorm:"column:category_name;size:15;not null" json:"categoryName"`
}

func (Category) TableName() string {
	return "categories"
}
