package buffer

import "errors"

// ErrNoBlock is returned when a Buffer that owns nothing is dereferenced.
// It signals programmer misuse of an empty buffer, as opposed to an
// out-of-range index on a live container.
var ErrNoBlock = errors.New("buffer: no owned block")

// noCopy is embedded in Buffer so that `go vet` (copylocks) reports value
// copies. Copying would alias the owned block across two Buffers and break
// the exclusivity invariant.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns zero or one contiguous block of T.
//
// The zero value owns nothing and is ready to use. Buffers must not be
// copied after first use; transfer ownership with Move, MoveFrom, Swap or
// Release instead.
type Buffer[T any] struct {
	noCopy noCopy

	block []T
}

// New allocates a Buffer owning size default-valued elements.
// For size 0 no block is allocated and the Buffer owns nothing.
func New[T any](size int) *Buffer[T] {
	b := &Buffer[T]{}
	if size > 0 {
		b.block = make([]T, size)
	}
	return b
}

// Adopt takes ownership of an already-allocated block. No allocation is
// performed. The caller must not retain or use block afterwards.
func Adopt[T any](block []T) *Buffer[T] {
	return &Buffer[T]{block: block}
}

// Owns reports whether the Buffer currently owns a block.
func (b *Buffer[T]) Owns() bool {
	return b.block != nil
}

// Len returns the number of element slots in the owned block, 0 if none.
func (b *Buffer[T]) Len() int {
	return len(b.block)
}

// First returns a pointer to the first element of the owned block.
// It returns ErrNoBlock when the Buffer owns nothing.
func (b *Buffer[T]) First() (*T, error) {
	if len(b.block) == 0 {
		return nil, ErrNoBlock
	}
	return &b.block[0], nil
}

// Get returns the element at index i without validation beyond the block
// bounds. The caller guarantees i < b.Len().
func (b *Buffer[T]) Get(i int) T {
	return b.block[i]
}

// Set stores v at index i without validation beyond the block bounds.
// The caller guarantees i < b.Len().
func (b *Buffer[T]) Set(i int, v T) {
	b.block[i] = v
}

// Raw exposes the owned block without transferring ownership. The returned
// slice is borrowed: it becomes invalid once the Buffer is moved, swapped,
// released or reallocated.
func (b *Buffer[T]) Raw() []T {
	return b.block
}

// Release hands the owned block to the caller and leaves the Buffer owning
// nothing. Releasing an empty Buffer returns nil.
func (b *Buffer[T]) Release() []T {
	block := b.block
	b.block = nil
	return block
}

// Move transfers ownership into a freshly constructed Buffer and leaves the
// receiver owning nothing.
func (b *Buffer[T]) Move() *Buffer[T] {
	return &Buffer[T]{block: b.Release()}
}

// MoveFrom drops the receiver's current block and takes ownership of
// other's. other is left owning nothing. Moving a Buffer into itself is a
// no-op.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.block = other.Release()
}

// Swap exchanges the owned blocks of b and other in constant time.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
}
