package product

import (
	"errors"
	"fmt"

	"effdel/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product represents a catalog product with its current stock level.
//
// Invariants:
//   - Must have an identifier
//   - Current inventory is a non-negative integer
//
// The inventory-range bucket is derived through InventoryRange() and is not
// part of the stored state.
type Product struct {
	// id is the product identifier
	id string

	// subCategoryID references the product's sub-category
	subCategoryID string

	// name is the display name, possibly empty for stock-only records
	name string

	// currentInventory is the stock on hand, never negative
	currentInventory int

	// isConstructed ensures the product was created via a factory function
	isConstructed bool
}

// NewProduct creates a product with an initial inventory count.
func NewProduct(id, subCategoryID, name string, currentInventory int) (*Product, error) {
	return RestoreProduct(id, subCategoryID, name, currentInventory)
}

// RestoreProduct reconstructs a product from persistence, re-validating the
// stored state.
func RestoreProduct(id, subCategoryID, name string, currentInventory int) (*Product, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("product ID")
	}
	if currentInventory < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"current inventory",
			fmt.Errorf("%d is negative", currentInventory),
		)
	}

	return &Product{
		id:               id,
		subCategoryID:    subCategoryID,
		name:             name,
		currentInventory: currentInventory,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Product instance was properly constructed through a
// factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() string {
	return p.id
}

// SubCategoryID returns the sub-category reference.
func (p *Product) SubCategoryID() string {
	return p.subCategoryID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// CurrentInventory returns the stock on hand.
func (p *Product) CurrentInventory() int {
	return p.currentInventory
}

// InventoryRange returns the derived bucket label for the current inventory.
func (p *Product) InventoryRange() InventoryRange {
	return CategorizeInventory(p.currentInventory)
}
