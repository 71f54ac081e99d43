package alloc

import (
	"fmt"
	"sync"
)

// Allocator places regions one after another inside a single buffer.
type Allocator struct {
	mu sync.Mutex

	end         int
	alignment   int
	allocations []Allocation
}

// Allocation is one placed region.
type Allocation struct {
	Offset int
	Size   int
	Tag    string
}

// New creates an allocator whose regions start on multiples of alignment.
// An alignment below 1 is treated as 1.
func New(alignment int) *Allocator {
	return &Allocator{alignment: max(alignment, 1)}
}

// Alloc places a region of size bytes and returns its offset.
func (a *Allocator) Alloc(size int, tag string) (int, error) {
	if size < 0 {
		return 0, fmt.Errorf("invalid region size %d", size)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if r := a.end % a.alignment; r != 0 {
		a.end += a.alignment - r
	}
	off := a.end
	a.end += size

	a.allocations = append(a.allocations, Allocation{Offset: off, Size: size, Tag: tag})
	return off, nil
}

// End returns the offset just past the last region.
func (a *Allocator) End() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.end
}

// Allocations returns a copy of all allocations in placement order.
func (a *Allocator) Allocations() []Allocation {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Allocation, len(a.allocations))
	copy(out, a.allocations)
	return out
}

// Validate checks that regions are aligned, in bounds and do not overlap.
func (a *Allocator) Validate() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	prevEnd := 0
	for i, r := range a.allocations {
		if r.Offset%a.alignment != 0 {
			return fmt.Errorf("region %d at %d is not %d-byte aligned", i, r.Offset, a.alignment)
		}
		if r.Offset < prevEnd {
			return fmt.Errorf("region %d at %d overlaps previous region ending at %d", i, r.Offset, prevEnd)
		}
		if r.Offset+r.Size > a.end {
			return fmt.Errorf("region %d at %d size %d extends past end %d", i, r.Offset, r.Size, a.end)
		}
		prevEnd = r.Offset + r.Size
	}
	return nil
}
