// Package queries contains the read operations over orders and the menu and
// the natural-language menu question.
package queries

// DefaultListLimit bounds list scans when the caller does not ask for less.
const DefaultListLimit = 200
