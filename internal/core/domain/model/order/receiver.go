package order

import (
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// Receiver is the delivery contact snapshot taken at checkout. It is not
// linked to a live address record; later edits to the owner's address book
// never alter an existing order.
type Receiver struct {
	name    string
	phone   string
	address string
}

// NewReceiver creates a delivery contact. All three fields are required.
func NewReceiver(name, phone, address string) (Receiver, error) {
	if name == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiver name")
	}

	if phone == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiver phone")
	}

	if address == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiver address")
	}

	return Receiver{
		name:    name,
		phone:   phone,
		address: address,
	}, nil
}

// Validate checks that the contact was built through NewReceiver.
func (r Receiver) Validate() error {
	if r.name == "" || r.phone == "" || r.address == "" {
		return errs.NewValueIsRequiredError("receiver must be created via NewReceiver")
	}
	return nil
}

// Name returns the receiver's name.
func (r Receiver) Name() string {
	return r.name
}

// Phone returns the receiver's phone number.
func (r Receiver) Phone() string {
	return r.phone
}

// Address returns the delivery address.
func (r Receiver) Address() string {
	return r.address
}
