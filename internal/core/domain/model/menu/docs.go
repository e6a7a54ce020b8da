// Package menu models the coffee-shop catalog: items, their sizes and the
// partial updates applied to them.
package menu
