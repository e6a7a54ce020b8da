// Package commands contains the operations that change orders and the menu.
// Every command is built through a constructor that validates its input; the
// matching handler re-checks that with Validate before doing any work.
//
// There are no transactions: each handler ends in exactly one conditional
// write to the store, so a failed handler leaves nothing behind.
package commands

import (
	"errors"
	"time"
)

var (
	// ErrIdentityConflict is returned when a freshly generated id is already
	// taken after every retry.
	ErrIdentityConflict = errors.New("identity conflict")

	// ErrConcurrentModification is returned when another writer changed an
	// order between read and write.
	ErrConcurrentModification = errors.New("concurrent modification")
)

// Clock returns the current time. Handlers default to time.Now.
type Clock func() time.Time

func defaultClock(c Clock) Clock {
	if c == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return c
}
