package order

import (
	"fmt"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// Item is one purchased line of an order: a product name, an optional
// variant ("black", "XL"), a positive quantity, and a non-negative unit
// price. Items are snapshots taken at checkout; they do not reference live
// catalog records.
type Item struct {
	name     string
	variant  string
	quantity int
	price    kernel.Money
}

// NewItem creates an order line with validation.
func NewItem(name, variant string, quantity int, price kernel.Money) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%s is negative", price),
		)
	}

	return Item{
		name:     name,
		variant:  variant,
		quantity: quantity,
		price:    price,
	}, nil
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Variant returns the optional variant, empty when none was chosen.
func (i Item) Variant() string {
	return i.variant
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}
