// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fleet system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TripValidator: A domain service for validating trips and maintenance work
//     against vehicle availability, capacity, and driver eligibility
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
