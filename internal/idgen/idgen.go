// Package idgen provides id providers for newly created records.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Provider returns a new unique id for a record kind identified by prefix.
type Provider interface {
	NewID(prefix string) string
}

// Sequence yields "<prefix>-<n>" ids with a process-wide counter.
// The dash keeps them apart from seed ids such as "t1".
type Sequence struct {
	n atomic.Uint64
}

// NewSequence returns a sequence starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewID ...
func (s *Sequence) NewID(prefix string) string {
	return prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}

// UUID yields "<prefix>-<uuid v4>" ids.
type UUID struct{}

// NewUUID ...
func NewUUID() UUID {
	return UUID{}
}

// NewID ...
func (UUID) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
