// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the commerce system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockReconciler: A domain service matching stock arrivals against product requests
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
