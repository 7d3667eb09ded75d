// Package stockrepo provides data transfer objects and mapping functions for
// product requests and the append-only stock-addition audit log.
package stockrepo

import (
	"time"

	"effdel/internal/core/domain/model/stock"
)

// RequestDTO represents the database structure for persisting product
// requests. The request identifier is its own column rather than the primary
// key because callers look requests up by that business field.
type RequestDTO struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	RequestID      string `gorm:"type:varchar(64);uniqueIndex"`
	ProductID      string `gorm:"type:varchar(64);index"`
	RequestedUnits int
	Status         int `gorm:"index"`
	FulfilledUnits int
}

// TableName specifies the database table name for product requests.
func (RequestDTO) TableName() string {
	return "product_requests"
}

// AdditionDTO represents one row of the stock-addition audit log.
// Rows are append-only: there is no update or delete path for them.
type AdditionDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID string `gorm:"type:varchar(64);index"`
	RequestID string `gorm:"type:varchar(64);index"`
	Units     int
	Timestamp time.Time
}

// TableName specifies the database table name for the audit log.
func (AdditionDTO) TableName() string {
	return "stock_additions"
}

// requestFromDomain converts a request domain entity to its database
// representation. The surrogate key is left zero; GORM fills it on insert
// and the update path matches on the business identifier instead.
func requestFromDomain(r *stock.Request) RequestDTO {
	return RequestDTO{
		RequestID:      r.RequestID(),
		ProductID:      r.ProductID(),
		RequestedUnits: r.RequestedUnits(),
		Status:         int(r.Status()),
		FulfilledUnits: r.FulfilledUnits(),
	}
}

// requestToDomain converts a database DTO to a request domain entity.
func requestToDomain(dto RequestDTO) (*stock.Request, error) {
	return stock.RestoreRequest(
		dto.RequestID,
		dto.ProductID,
		dto.RequestedUnits,
		stock.RequestStatus(dto.Status),
		dto.FulfilledUnits,
	)
}

// additionFromDomain converts an audit record to its database representation.
func additionFromDomain(a stock.Addition) AdditionDTO {
	return AdditionDTO{
		ProductID: a.ProductID(),
		RequestID: a.RequestID(),
		Units:     a.Units(),
		Timestamp: a.Timestamp(),
	}
}

// additionToDomain converts a database DTO to an audit record.
func additionToDomain(dto AdditionDTO) (stock.Addition, error) {
	return stock.RestoreAddition(dto.ProductID, dto.RequestID, dto.Units, dto.Timestamp)
}
