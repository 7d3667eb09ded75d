package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/core/ports"
	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order row from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db, riderDirectory)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", resp.ID, resp.Status)
type GetOrderQueryHandler struct {
	db             *gorm.DB
	riderDirectory ports.RiderDirectory
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection and a rider directory for lazy
// display-name resolution.
func NewGetOrderQueryHandler(db *gorm.DB, riderDirectory ports.RiderDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, riderDirectory: riderDirectory}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist. A rider
// name missing from the row is resolved against the directory; a failed
// resolution is tolerated and leaves the name empty.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			items,
			status,
			rider_id,
			rider_name,
			refunds,
			modified_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	h.resolveRiderName(ctx, &resp)
	return resp, nil
}

// resolveRiderName fills in a missing rider display name from the directory.
// Lookup failures are tolerated: the order is still returned with an empty
// name.
func (h GetOrderQueryHandler) resolveRiderName(ctx context.Context, resp *OrderResponse) {
	if resp.RiderID == nil || resp.RiderName != "" {
		return
	}

	name, err := h.riderDirectory.GetName(ctx, *resp.RiderID)
	if err != nil {
		return
	}
	resp.RiderName = name
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow reads one orders row into a response, decoding the JSON
// document columns.
func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp       OrderResponse
		itemsJSON  []byte
		refundsRaw []byte
		status     int
		riderID    sql.NullString
		riderName  sql.NullString
		modifiedAt time.Time
	)

	if err := row.Scan(
		&resp.ID,
		&resp.UserID,
		&itemsJSON,
		&status,
		&riderID,
		&riderName,
		&refundsRaw,
		&modifiedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &resp.Items); err != nil {
			return OrderResponse{}, err
		}
	}
	if len(refundsRaw) > 0 {
		if err := json.Unmarshal(refundsRaw, &resp.Refunds); err != nil {
			return OrderResponse{}, err
		}
	}

	resp.Status = order.Status(status).String()
	if riderID.Valid {
		resp.RiderID = &riderID.String
	}
	resp.RiderName = riderName.String
	resp.ModifiedAt = modifiedAt

	return resp, nil
}
