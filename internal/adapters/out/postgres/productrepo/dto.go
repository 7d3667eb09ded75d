// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence, including the atomic inventory counter.
package productrepo

import (
	"effdel/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID               string `gorm:"type:varchar(64);primaryKey"`
	SubCategoryID    string `gorm:"type:varchar(64);index"`
	Name             string
	CurrentInventory int
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:               p.ID(),
		SubCategoryID:    p.SubCategoryID(),
		Name:             p.Name(),
		CurrentInventory: p.CurrentInventory(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.SubCategoryID, dto.Name, dto.CurrentInventory)
}
