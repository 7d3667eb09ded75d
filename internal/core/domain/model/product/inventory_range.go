package product

// InventoryRange is a coarse categorical label derived from a product's
// current inventory count. It is computed on demand and never persisted as
// the source of truth.
type InventoryRange string

const (
	// RangeLow covers counts in [0, 100).
	RangeLow InventoryRange = "0-100"

	// RangeMedium covers counts in [100, 200).
	RangeMedium InventoryRange = "100-200"

	// RangeHigh covers counts of 200 and above.
	RangeHigh InventoryRange = "200+"

	// RangeUnknown is only reachable for negative input, which a well-formed
	// store never produces.
	RangeUnknown InventoryRange = "Unknown"
)

// inventoryBucket is one half-open bucket [start, end) in the ascending scan.
type inventoryBucket struct {
	label InventoryRange
	start int
	end   int // exclusive; negative means unbounded
}

// getInventoryBuckets returns the buckets in ascending order.
// CategorizeInventory evaluates them in this order, first match wins.
func getInventoryBuckets() []inventoryBucket {
	return []inventoryBucket{
		{label: RangeLow, start: 0, end: 100},
		{label: RangeMedium, start: 100, end: 200},
		{label: RangeHigh, start: 200, end: -1},
	}
}

// CategorizeInventory maps an inventory count to its range label.
//
// Buckets are half-open: "0-100" for 0 <= x < 100, "100-200" for
// 100 <= x < 200, and "200+" for x >= 200. Negative input falls through to
// "Unknown".
func CategorizeInventory(count int) InventoryRange {
	for _, bucket := range getInventoryBuckets() {
		if count >= bucket.start && (bucket.end < 0 || count < bucket.end) {
			return bucket.label
		}
	}
	return RangeUnknown
}

// ParseInventoryRange validates a caller-supplied range label.
// Returns the matching label and true, or RangeUnknown and false when the
// string names no known bucket.
func ParseInventoryRange(s string) (InventoryRange, bool) {
	for _, bucket := range getInventoryBuckets() {
		if string(bucket.label) == s {
			return bucket.label, true
		}
	}
	return RangeUnknown, false
}

// String returns the label text.
func (r InventoryRange) String() string {
	return string(r)
}
