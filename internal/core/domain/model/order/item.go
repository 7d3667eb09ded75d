package order

import (
	"fmt"

	"effdel/internal/pkg/errs"
)

// Item is a single order line: a product reference with a quantity and the
// unit price captured at ordering time.
type Item struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Validate checks the line item's fields.
func (i Item) Validate() error {
	if i.ProductID == "" {
		return errs.NewValueIsRequiredError("item product ID")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity),
		)
	}
	if i.UnitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item unit price",
			fmt.Errorf("%v is negative", i.UnitPrice),
		)
	}
	return nil
}
