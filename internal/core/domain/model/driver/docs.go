// Package driver provides domain entities and business logic for fleet driver
// management: duty status, license compliance, and dispatch eligibility.
//
// Key business rules:
//   - A driver is eligible for trip assignment only when On Duty with a license
//     expiring strictly in the future; eligibility is recomputed on every check
//   - Licenses are bucketed into Expired, Expiring Soon (within 30 days), and
//     Compliant for renewal tracking
//   - Duty status is edited directly by dispatch managers; trip dispatch does not
//     change it
package driver
