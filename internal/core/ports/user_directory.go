package ports

import (
	"context"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
)

// UserDirectory answers whether a user account exists. Order creation checks
// the owner against it before allocating a code.
type UserDirectory interface {
	Exists(ctx context.Context, userID kernel.UUID) (bool, error)
}
