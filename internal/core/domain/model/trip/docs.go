// Package trip provides domain entities and business logic for revenue-earning
// trips: assignment of a vehicle and driver, cargo and revenue tracking, and the
// trip lifecycle.
//
// Key business rules:
//   - Trips move strictly forward: Draft -> Dispatched -> Completed, with
//     Cancelled reachable from Draft or Dispatched
//   - Completed and Cancelled are terminal; no further transitions are allowed
//   - Only Completed trips count toward fleet revenue
package trip
