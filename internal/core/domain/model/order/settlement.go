package order

import (
	"fmt"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// Settlement is the computed monetary breakdown of an order. It always
// satisfies
//
//	subTotal = Σ(item.price × item.quantity)
//	total    = subTotal + shippingFee − discount, total ≥ 0
//
// Settlements are computed once at creation and never recomputed; the
// stored amounts are the authoritative record of what the buyer owed.
type Settlement struct {
	subTotal    kernel.Money
	shippingFee kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

// NewSettlement computes the settlement for the given items, shipping fee,
// and discount. Fails when the fee or discount is negative or when the
// discount drives the total below zero.
func NewSettlement(items []Item, shippingFee, discount kernel.Money) (Settlement, error) {
	if shippingFee.IsNegative() {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"shipping fee",
			fmt.Errorf("%s is negative", shippingFee),
		)
	}

	if discount.IsNegative() {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", discount),
		)
	}

	subTotal := kernel.ZeroMoney()
	for _, item := range items {
		subTotal = subTotal.Add(item.Subtotal())
	}

	total := subTotal.Add(shippingFee).Sub(discount)
	if total.IsNegative() {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s is negative after discount", total),
		)
	}

	return Settlement{
		subTotal:    subTotal,
		shippingFee: shippingFee,
		discount:    discount,
		total:       total,
	}, nil
}

// RestoreSettlement rebuilds a settlement from persisted amounts,
// re-checking the settlement equation so a corrupted row cannot produce an
// order that violates it.
func RestoreSettlement(subTotal, shippingFee, discount, total kernel.Money) (Settlement, error) {
	expected := subTotal.Add(shippingFee).Sub(discount)
	if !total.IsEqual(expected) || total.IsNegative() {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not equal %s + %s - %s", total, subTotal, shippingFee, discount),
		)
	}

	return Settlement{
		subTotal:    subTotal,
		shippingFee: shippingFee,
		discount:    discount,
		total:       total,
	}, nil
}

// SubTotal returns the sum of all item subtotals.
func (s Settlement) SubTotal() kernel.Money {
	return s.subTotal
}

// ShippingFee returns the shipping fee.
func (s Settlement) ShippingFee() kernel.Money {
	return s.shippingFee
}

// Discount returns the discount applied at checkout.
func (s Settlement) Discount() kernel.Money {
	return s.discount
}

// Total returns the final amount owed.
func (s Settlement) Total() kernel.Money {
	return s.total
}
