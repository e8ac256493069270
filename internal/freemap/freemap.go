// Package freemap implements the free-space bitmap allocator described in
// spec.md §4.2: one bit per device block, 1 = free, 0 = allocated, packed
// low-to-high within each byte, with deterministic lowest-free-id
// allocation.
package freemap

import (
	bitmap "github.com/boljen/go-bitmap"

	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// Allocator owns the in-memory free-space bitmap for a volume.
type Allocator struct {
	bits bitmap.Bitmap
	size int
}

// New creates an Allocator with every one of size bits marked free.
func New(size int) *Allocator {
	bits := bitmap.New(size)
	a := &Allocator{bits: bits, size: size}
	for i := 0; i < size; i++ {
		bits.Set(i, true)
	}
	return a
}

// FromBytes wraps an existing byte slice (e.g. just read off the device) as
// the backing store for size bits, with no further initialization.
func FromBytes(buf []byte, size int) *Allocator {
	return &Allocator{bits: bitmap.Bitmap(buf), size: size}
}

// GetIndex returns the lowest-numbered free block id and marks it
// allocated. Ties are always broken toward the lowest id so that
// allocation is deterministic (spec.md §4.2).
func (a *Allocator) GetIndex() (layout.BlockID, errors.DriverError) {
	for i := 0; i < a.size; i++ {
		if a.bits.Get(i) {
			a.bits.Set(i, false)
			return layout.BlockID(i), nil
		}
	}
	return 0, errors.ErrNoSpace.WithMessage("free-space bitmap exhausted")
}

// RmIndex marks id free. Idempotent: freeing an already-free id is a no-op.
func (a *Allocator) RmIndex(id layout.BlockID) {
	a.bits.Set(int(id), true)
}

// ForceSetIndex unconditionally marks id allocated, used during format to
// reserve the metadata and bitmap regions (spec.md §4.3).
func (a *Allocator) ForceSetIndex(id layout.BlockID) {
	a.bits.Set(int(id), false)
}

// IsFree reports whether id is currently marked free.
func (a *Allocator) IsFree(id layout.BlockID) bool {
	return a.bits.Get(int(id))
}

// Bitmap returns the underlying bitmap for write-through to the device
// (spec.md §4.2's get_bitmap()).
func (a *Allocator) Bitmap() []byte {
	return a.bits.Data(false)
}
