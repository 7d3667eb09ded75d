// Package product provides the product entity and the inventory-range
// categorization used by reporting.
//
// A product carries a non-negative current inventory count. The inventory
// range is a coarse bucket label derived from that count on read; it is never
// stored canonically.
package product
