// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"effdel/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines and refunds are stored as JSON documents inside the order row,
// keeping the aggregate in a single record the way a document store would.
type OrderDTO struct {
	ID         string `gorm:"type:varchar(32);primaryKey"`
	UserID     string `gorm:"type:varchar(64);index"`
	Items      ItemsJSON
	Status     int `gorm:"index"`
	RiderID    *string
	RiderName  string
	Refunds    RefundsJSON
	ModifiedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the items document.
type ItemDTO struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// RefundDTO is one refund record inside the refunds document.
type RefundDTO struct {
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemsJSON stores order lines as a JSONB column.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer by serializing the lines to JSON.
func (j ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements sql.Scanner by deserializing the JSON column.
func (j *ItemsJSON) Scan(value any) error {
	return scanJSON(value, j)
}

// GormDataType tells GORM to create a jsonb column for the field.
func (ItemsJSON) GormDataType() string {
	return "jsonb"
}

// RefundsJSON stores refund records as a JSONB column.
type RefundsJSON []RefundDTO

// Value implements driver.Valuer by serializing the records to JSON.
func (j RefundsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements sql.Scanner by deserializing the JSON column.
func (j *RefundsJSON) Scan(value any) error {
	return scanJSON(value, j)
}

// GormDataType tells GORM to create a jsonb column for the field.
func (RefundsJSON) GormDataType() string {
	return "jsonb"
}

func scanJSON(value, dest any) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported column type for JSON document")
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	refunds := make(RefundsJSON, 0, len(aggregate.Refunds()))
	for _, refund := range aggregate.Refunds() {
		refunds = append(refunds, RefundDTO{
			Amount:    refund.Amount(),
			Reason:    refund.Reason(),
			Timestamp: refund.Timestamp(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().String(),
		UserID:     aggregate.UserID(),
		Items:      items,
		Status:     int(aggregate.Status()),
		RiderID:    aggregate.RiderID(),
		RiderName:  aggregate.RiderName(),
		Refunds:    refunds,
		ModifiedAt: aggregate.ModifiedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including refunds using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	refunds := make([]order.Refund, 0, len(dto.Refunds))
	for _, refundDTO := range dto.Refunds {
		refund, refundErr := order.RestoreRefund(refundDTO.Amount, refundDTO.Reason, refundDTO.Timestamp)
		if refundErr != nil {
			return nil, refundErr
		}
		refunds = append(refunds, refund)
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		items,
		order.Status(dto.Status),
		dto.RiderID,
		dto.RiderName,
		refunds,
		dto.ModifiedAt,
	)
}
