// Package expense provides the append-only expense ledger for fleet vehicles.
//
// Key business rules:
//   - Expenses are Fuel or Maintenance; fuel expenses carry the litres purchased
//     and derive their amount from litres times price per litre
//   - Records are append-only: corrections are new records, never updates
package expense
