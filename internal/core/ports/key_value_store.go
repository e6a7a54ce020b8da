package ports

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyExists is returned by PutIfAbsent when the key is taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrPreconditionFailed is returned when a record exists but does not
	// satisfy the write condition.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrNotFound is returned when the key does not exist.
	ErrNotFound = errors.New("record not found")
)

// Table names a logical collection of documents.
type Table string

// KeyValueStore is a document store with single-key conditional writes.
// Documents are JSON objects. There are no multi-key transactions; every
// coordination between writers goes through a Condition.
type KeyValueStore interface {
	// PutIfAbsent stores doc under key only if the key does not exist.
	PutIfAbsent(ctx context.Context, table Table, key string, doc []byte) error

	// UpdateIfMatches merges the mutation into the stored document when the
	// condition holds and returns the document after the update.
	UpdateIfMatches(ctx context.Context, table Table, key string, cond Condition, mut Mutation) ([]byte, error)

	// Get returns the document stored under key or ErrNotFound.
	Get(ctx context.Context, table Table, key string) ([]byte, error)

	// Scan returns up to limit documents in no particular order.
	Scan(ctx context.Context, table Table, limit int) ([][]byte, error)

	// ScanMatching returns up to limit documents satisfying cond, in no
	// particular order. A limit <= 0 returns every match.
	ScanMatching(ctx context.Context, table Table, cond Condition, limit int) ([][]byte, error)

	// Delete removes the document when the condition holds.
	Delete(ctx context.Context, table Table, key string, cond Condition) error
}

// Condition is a typed precondition on a single record. Every condition
// implies the record exists.
type Condition struct {
	attribute string
	value     any
}

// MustExist only requires the record to exist.
func MustExist() Condition {
	return Condition{}
}

// AttributeEquals requires the top-level attribute to equal value.
func AttributeEquals(name string, value any) Condition {
	return Condition{attribute: name, value: value}
}

// Attribute returns the compared attribute, if any.
func (c Condition) Attribute() (name string, value any, ok bool) {
	return c.attribute, c.value, c.attribute != ""
}

// Mutation is a set of top-level attribute assignments.
type Mutation struct {
	set map[string]any
}

// Set assigns value to a top-level attribute.
func (m Mutation) Set(name string, value any) Mutation {
	next := make(map[string]any, len(m.set)+1)
	for k, v := range m.set {
		next[k] = v
	}
	next[name] = value
	return Mutation{set: next}
}

// Attributes returns a copy of the assignments.
func (m Mutation) Attributes() map[string]any {
	out := make(map[string]any, len(m.set))
	for k, v := range m.set {
		out[k] = v
	}
	return out
}

func (m Mutation) IsEmpty() bool {
	return len(m.set) == 0
}
