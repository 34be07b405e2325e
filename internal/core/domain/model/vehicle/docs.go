// Package vehicle provides domain entities and business logic for fleet vehicle
// management. It implements the Vehicle aggregate root with lifecycle management and
// state transitions.
//
// The package includes:
//   - Vehicle: The aggregate root that manages vehicle identity, properties, and lifecycle
//   - Status: A state machine that enforces valid vehicle status transitions
//   - Kind: A closed enumeration of vehicle body types
//
// Key business rules:
//   - Vehicles must have a valid identifier, name, plate, and positive max load
//   - Status moves between Available, On Trip, and In Shop in reaction to trip and
//     maintenance events; Retired is terminal
//   - A vehicle's status always reflects its most recent trip or maintenance event
//   - Odometer readings never decrease
//   - Vehicles are retired, never deleted
package vehicle
