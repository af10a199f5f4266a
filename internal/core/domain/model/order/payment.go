package order

import (
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// PaymentInfo records how the order is paid as reported by the external
// payment collaborator: a method name, an opaque masked reference for
// display ("**** 4242"), and whether payment has been captured. This engine
// never talks to a gateway; it only stores what the collaborator supplied.
type PaymentInfo struct {
	method string
	masked string
	isPaid bool
}

// NewPaymentInfo creates payment details. The method is required; the
// masked reference is optional display text.
func NewPaymentInfo(method, masked string, isPaid bool) (PaymentInfo, error) {
	if method == "" {
		return PaymentInfo{}, errs.NewValueIsRequiredError("payment method")
	}

	return PaymentInfo{
		method: method,
		masked: masked,
		isPaid: isPaid,
	}, nil
}

// Validate checks that the details were built through NewPaymentInfo.
func (p PaymentInfo) Validate() error {
	if p.method == "" {
		return errs.NewValueIsRequiredError("payment must be created via NewPaymentInfo")
	}
	return nil
}

// Method returns the payment method name, e.g. "VISA".
func (p PaymentInfo) Method() string {
	return p.method
}

// Masked returns the opaque masked payment reference, empty when absent.
func (p PaymentInfo) Masked() string {
	return p.masked
}

// IsPaid reports whether the external collaborator captured payment.
func (p PaymentInfo) IsPaid() bool {
	return p.isPaid
}
