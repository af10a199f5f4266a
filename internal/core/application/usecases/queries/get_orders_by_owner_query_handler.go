package queries

import (
	"context"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersByOwnerQueryHandler lists an owner's orders straight from the
// database. It reads summary columns only; items stay in their jsonb column
// and contribute just a count.
type GetOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByOwnerQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the listing query. Results come back newest first; an
// owner with no matching orders gets an empty slice, not an error.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
) ([]GetOrdersByOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			code,
			status,
			total,
			jsonb_array_length(items),
			created_at
		FROM orders
		WHERE owner_id = ?
	`
	args := []any{query.OwnerID().String()}

	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]GetOrdersByOwnerQueryResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			code      string
			status    string
			total     decimal.Decimal
			itemCount int
			createdAt time.Time
		)

		if err = rows.Scan(&id, &code, &status, &total, &itemCount, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		summaries = append(summaries, GetOrdersByOwnerQueryResponse{
			ID:        orderID,
			Code:      code,
			Status:    orderStatus,
			Total:     kernel.NewMoney(total),
			ItemCount: itemCount,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
