package order

import (
	"encoding/hex"
	"fmt"
	"time"

	"effdel/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an order ID was not created through
// NewID or IDFromString. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("order ID must be created via NewID or IDFromString")

// ID is a value object that identifies an order. It is composed of a
// millisecond-precision creation timestamp followed by a short random hex
// suffix, which makes identifiers sortable by creation time while keeping
// collisions under concurrent creation overwhelmingly unlikely.
//
// Uniqueness is probabilistic: no check against the store is performed, so a
// collision, while practically impossible, is not ruled out. This mirrors the
// behaviour of the ordering flow and is a documented trade-off.
//
// The zero value of ID is invalid and must be constructed through NewID or
// IDFromString.
type ID struct {
	value string
}

// NewID generates a new order identifier from the current time.
//
// The layout is YYYYMMDDHHMMSSmmm followed by six random hexadecimal digits,
// e.g. "20240115093015123a1b2c3".
func NewID() ID {
	now := time.Now()
	random := uuid.New()

	return ID{
		value: fmt.Sprintf("%s%03d%s",
			now.Format("20060102150405"),
			now.Nanosecond()/int(time.Millisecond),
			hex.EncodeToString(random[:3]),
		),
	}
}

// IDFromString reconstructs an order ID from its string representation.
// This is typically used when rehydrating orders from persistence or when
// parsing identifiers supplied by callers.
//
// Returns an error if the string is empty.
func IDFromString(s string) (ID, error) {
	if s == "" {
		return ID{}, ErrIDIsNotConstructed
	}
	return ID{value: s}, nil
}

// String returns the identifier's string representation.
func (id ID) String() string {
	return id.value
}

// IsEqual compares two order IDs for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks that the ID was properly constructed.
// Returns ErrIDIsNotConstructed for a zero-value ID.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
