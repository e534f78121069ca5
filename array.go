package seqgo

import (
	"fmt"
	"iter"

	"github.com/hupe1980/seqgo/buffer"
)

// Array is a growable, randomly-indexable, contiguous sequence of T.
//
// Elements [0, Len) are live; slots [Len, Cap) are allocated but hold
// unspecified values. The backing block is held through an exclusive
// buffer.Buffer, so an Array must not be copied by value; use Clone for a
// deep copy and Move/MoveFrom/Swap for ownership transfer.
//
// The zero value is an empty, ready-to-use Array.
type Array[T any] struct {
	items buffer.Buffer[T]
	size  int
}

// New creates an empty Array with no allocated storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSize creates an Array of n default-valued elements, with capacity n.
func NewSize[T any](n int) *Array[T] {
	a := &Array[T]{size: n}
	a.items.MoveFrom(buffer.New[T](n))
	return a
}

// NewFill creates an Array of n elements, each a copy of v, with capacity n.
func NewFill[T any](n int, v T) *Array[T] {
	a := NewSize[T](n)
	raw := a.items.Raw()
	for i := range raw {
		raw[i] = v
	}
	return a
}

// Of creates an Array holding the given values in order, with capacity equal
// to their count.
func Of[T any](vals ...T) *Array[T] {
	a := NewSize[T](len(vals))
	copy(a.items.Raw(), vals)
	return a
}

// WithCapacity creates an empty Array with storage for n elements already
// allocated. Unlike NewSize no logical elements are created.
func WithCapacity[T any](n int) *Array[T] {
	a := &Array[T]{}
	a.items.MoveFrom(buffer.New[T](n))
	return a
}

// Len returns the logical element count.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of element slots currently allocated.
func (a *Array[T]) Cap() int {
	return a.items.Len()
}

// IsEmpty reports whether the Array holds no live elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// IsFull reports whether the next Append would have to grow the storage.
func (a *Array[T]) IsFull() bool {
	return a.size == a.items.Len()
}

// Get returns the element at index i without validating i against Len.
// The caller guarantees i lies in [0, Len); reading beyond the live window
// yields an unspecified value.
func (a *Array[T]) Get(i int) T {
	return a.items.Get(i)
}

// Set stores v at index i without validating i against Len.
// The caller guarantees i lies in [0, Len).
func (a *Array[T]) Set(i int, v T) {
	a.items.Set(i, v)
}

// At returns a pointer to the element at index i. It is the checked
// counterpart of Get/Set: an index outside [0, Len) yields
// *ErrIndexOutOfRange and the Array is left untouched.
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, &ErrIndexOutOfRange{Index: i, Len: a.size}
	}
	return &a.items.Raw()[i], nil
}

// Append places v after the last live element, growing the storage first if
// the Array is full. Amortized O(1).
func (a *Array[T]) Append(v T) {
	if a.IsFull() {
		a.reallocate(a.grownCapacity(1))
	}
	a.items.Set(a.size, v)
	a.size++
}

// Insert places v at index i and shifts the elements [i, Len) one slot
// toward the end. i may equal Len, in which case Insert behaves like Append.
// It returns the index of the inserted element.
//
// An index outside [0, Len] is a caller bug and panics.
func (a *Array[T]) Insert(i int, v T) int {
	if i < 0 || i > a.size {
		panic(fmt.Sprintf("seqgo: Insert index %d out of range [0:%d]", i, a.size))
	}
	if a.IsFull() {
		a.reallocate(a.grownCapacity(1))
	}
	raw := a.items.Raw()
	copy(raw[i+1:a.size+1], raw[i:a.size])
	raw[i] = v
	a.size++
	return i
}

// RemoveLast drops the last live element. Removing from an empty Array is a
// no-op, not an error. Capacity is unchanged.
func (a *Array[T]) RemoveLast() {
	if a.size > 0 {
		a.size--
	}
}

// Erase removes the element at index i and shifts the elements (i, Len) one
// slot toward the beginning. It returns i, which now names the element that
// followed the erased one (or equals Len when the last element was erased).
//
// An index outside [0, Len) is a caller bug and panics.
func (a *Array[T]) Erase(i int) int {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("seqgo: Erase index %d out of range [0:%d]", i, a.size))
	}
	raw := a.items.Raw()
	copy(raw[i:a.size-1], raw[i+1:a.size])
	a.size--
	return i
}

// Clear drops all live elements. Capacity and storage are retained, so a
// following Append reuses the existing block.
func (a *Array[T]) Clear() {
	a.size = 0
}

// Resize sets the logical size to n. Shrinking truncates; growing within
// capacity default-values the newly exposed slots; growing beyond capacity
// reallocates to max(2*Cap, n) first. Negative n panics.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("seqgo: Resize with negative size %d", n))
	}
	if n > a.items.Len() {
		a.reallocate(a.grownCapacity(n))
	}
	if n > a.size {
		// Slots may hold stale values from an earlier truncation.
		clear(a.items.Raw()[a.size:n])
	}
	a.size = n
}

// Reserve grows the storage to exactly n slots, preserving size and all live
// elements. Reserving no more than the current capacity is a no-op, not an
// error. Capacity never shrinks.
func (a *Array[T]) Reserve(n int) {
	if n > a.items.Len() {
		a.reallocate(n)
	}
}

// Swap exchanges the contents of a and other in constant time, without
// allocating.
func (a *Array[T]) Swap(other *Array[T]) {
	a.items.Swap(&other.items)
	a.size, other.size = other.size, a.size
}

// Clone returns a deep copy of the Array. The copy's capacity equals its
// size, regardless of the receiver's capacity, and the two share no storage.
func (a *Array[T]) Clone() *Array[T] {
	c := NewSize[T](a.size)
	copy(c.items.Raw(), a.Slice())
	return c
}

// Move transfers the receiver's storage, size and capacity into a new Array
// and leaves the receiver empty (size 0, capacity 0).
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{size: a.size}
	m.items.MoveFrom(&a.items)
	a.size = 0
	return m
}

// CopyFrom replaces the receiver's contents with a deep copy of other.
// When other is empty the receiver's storage is discarded entirely
// (capacity drops to 0); otherwise the copy is built first and swapped into
// place, so the receiver keeps its old state if building the copy is
// interrupted. Copying from itself is a no-op.
func (a *Array[T]) CopyFrom(other *Array[T]) {
	if a == other {
		return
	}
	if other.IsEmpty() {
		a.size = 0
		a.items.Release()
		return
	}
	a.Swap(other.Clone())
}

// MoveFrom exchanges the receiver's state with other's. The receiver takes
// other's contents; other is deliberately left holding the receiver's prior
// contents rather than being emptied. Moving from itself is a no-op.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.Swap(other)
}

// Slice returns the live elements [0, Len) as a contiguous view of the
// backing storage. The view is borrowed: it becomes invalid once the Array
// grows, is moved, or is swapped.
func (a *Array[T]) Slice() []T {
	return a.items.Raw()[:a.size]
}

// All returns an iterator over index/element pairs of the live window, in
// order. The Array must not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		raw := a.items.Raw()
		for i := 0; i < a.size; i++ {
			if !yield(i, raw[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, in order. The Array
// must not be mutated during iteration.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		raw := a.items.Raw()
		for i := 0; i < a.size; i++ {
			if !yield(raw[i]) {
				return
			}
		}
	}
}

// grownCapacity returns the doubling-policy capacity for a growth that must
// accommodate at least required slots.
func (a *Array[T]) grownCapacity(required int) int {
	newCap := 2 * a.items.Len()
	if newCap < required {
		newCap = required
	}
	return newCap
}

// reallocate migrates the live elements into a freshly allocated block of
// newCap slots and swaps it in. The old block is released through the
// temporary owner. newCap must be >= size.
func (a *Array[T]) reallocate(newCap int) {
	next := buffer.New[T](newCap)
	copy(next.Raw(), a.items.Raw()[:a.size])
	a.items.Swap(next)
}
