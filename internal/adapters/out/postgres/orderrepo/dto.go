// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the status history live in jsonb columns: they are only
// ever read and written together with their order, never queried row by row.
// The code column carries the unique constraint that makes order codes
// globally unique; the version column backs optimistic concurrency.
type OrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code    string    `gorm:"type:varchar(32);uniqueIndex"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Status  string    `gorm:"type:varchar(16);index"`

	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string

	Items ItemsColumn `gorm:"type:jsonb"`

	SubTotal    decimal.Decimal `gorm:"type:numeric"`
	ShippingFee decimal.Decimal `gorm:"type:numeric"`
	Discount    decimal.Decimal `gorm:"type:numeric"`
	Total       decimal.Decimal `gorm:"type:numeric"`

	PaymentMethod string
	PaymentMasked string
	IsPaid        bool
	PaidAt        *time.Time

	History HistoryColumn `gorm:"type:jsonb"`

	CancellationReason *string `gorm:"type:varchar(16)"`
	CancellationNotes  *string
	CancelledAt        *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of one line item.
type ItemDTO struct {
	Name     string          `json:"name"`
	Variant  string          `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ItemsColumn marshals line items to and from a jsonb column.
type ItemsColumn []ItemDTO

func (c ItemsColumn) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ItemsColumn) Scan(src any) error {
	return scanJSON(src, c)
}

// HistoryEntryDTO is the jsonb shape of one status history entry.
type HistoryEntryDTO struct {
	Status      string    `json:"status"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// HistoryColumn marshals the status history to and from a jsonb column.
type HistoryColumn []HistoryEntryDTO

func (c HistoryColumn) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *HistoryColumn) Scan(src any) error {
	return scanJSON(src, c)
}

func scanJSON(src, dst any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsColumn, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Variant:  item.Variant(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		})
	}

	history := make(HistoryColumn, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryEntryDTO{
			Status:      entry.Status().String(),
			Label:       entry.Label(),
			Description: entry.Description(),
			Timestamp:   entry.Timestamp(),
		})
	}

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Code:            aggregate.Code(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Status:          aggregate.Status().String(),
		ReceiverName:    aggregate.Receiver().Name(),
		ReceiverPhone:   aggregate.Receiver().Phone(),
		ReceiverAddress: aggregate.Receiver().Address(),
		Items:           items,
		SubTotal:        aggregate.Settlement().SubTotal().Decimal(),
		ShippingFee:     aggregate.Settlement().ShippingFee().Decimal(),
		Discount:        aggregate.Settlement().Discount().Decimal(),
		Total:           aggregate.Settlement().Total().Decimal(),
		PaymentMethod:   aggregate.Payment().Method(),
		PaymentMasked:   aggregate.Payment().Masked(),
		IsPaid:          aggregate.Payment().IsPaid(),
		PaidAt:          aggregate.PaidAt(),
		History:         history,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Version:         aggregate.Version(),
	}

	if cancellation := aggregate.Cancellation(); cancellation != nil {
		reason := cancellation.Reason().String()
		cancelledAt := cancellation.CancelledAt()
		dto.CancellationReason = &reason
		dto.CancellationNotes = cancellation.Notes()
		dto.CancelledAt = &cancelledAt
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-checks
// every invariant, so a corrupted row surfaces as an error here.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	receiver, err := order.NewReceiver(dto.ReceiverName, dto.ReceiverPhone, dto.ReceiverAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Variant, itemDTO.Quantity, kernel.NewMoney(itemDTO.Price))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	settlement, err := order.RestoreSettlement(
		kernel.NewMoney(dto.SubTotal),
		kernel.NewMoney(dto.ShippingFee),
		kernel.NewMoney(dto.Discount),
		kernel.NewMoney(dto.Total),
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentInfo(dto.PaymentMethod, dto.PaymentMasked, dto.IsPaid)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entryStatus, entryErr := order.StatusFromString(entryDTO.Status)
		if entryErr != nil {
			return nil, entryErr
		}

		entry, entryErr := order.NewHistoryEntry(entryStatus, entryDTO.Label, entryDTO.Description, entryDTO.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	var cancellation *order.Cancellation
	if dto.CancellationReason != nil {
		reason, reasonErr := order.CancellationReasonFromString(*dto.CancellationReason)
		if reasonErr != nil {
			return nil, reasonErr
		}

		if dto.CancelledAt == nil {
			return nil, fmt.Errorf("order %s has a cancellation reason but no cancellation time", dto.ID)
		}

		restored, cancelErr := order.NewCancellation(reason, dto.CancellationNotes, *dto.CancelledAt)
		if cancelErr != nil {
			return nil, cancelErr
		}
		cancellation = &restored
	}

	return order.RestoreOrder(
		id,
		ownerID,
		dto.Code,
		receiver,
		items,
		settlement,
		payment,
		dto.PaidAt,
		status,
		history,
		cancellation,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
