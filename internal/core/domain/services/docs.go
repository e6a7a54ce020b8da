// Package services holds the domain services of order placement:
//   - OrderValidator checks requested lines against the live menu
//   - OrderPricer turns validated lines into priced order lines and totals
//
// Both are stateless and safe for concurrent use.
package services
