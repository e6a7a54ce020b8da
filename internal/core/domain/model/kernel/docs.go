// Package kernel holds the value objects shared by the menu and order models:
//   - UUID: order identity
//   - Money: integer cents
//   - TaxRate: configured tax percentage with half-up rounding
//
// All values are immutable and safe for concurrent use.
package kernel
