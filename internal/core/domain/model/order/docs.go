// Package order contains the Order aggregate of the coffee shop and its
// status state machine.
//
// An order is created once in PLACED with priced lines and fixed totals
// (subtotal = sum of line totals, total = subtotal + tax). After that only
// its status changes, either through the generic TransitionTo rule or the
// stricter Cancel rule. Orders are never deleted.
package order
