// Package buffer provides an exclusive-ownership wrapper around a contiguous
// block of elements.
//
// A Buffer owns zero or one heap-allocated block of T. It has no notion of a
// logical element count — only whether it owns memory and how much was
// requested. Size/capacity policy lives in the seqgo package on top of it.
//
// # Ownership Model
//
// Ownership is exclusive and non-duplicable: a block is never reachable
// through two Buffers at once. Buffers therefore cannot be copied — only
// moved (Move, MoveFrom, Swap) or released to the caller (Release). A Buffer
// value contains a noCopy marker so accidental value copies are reported by
// `go vet`.
//
// # Checked vs Unchecked Access
//
//	first, err := b.First() // checked: ErrNoBlock when the buffer is empty
//	v := b.Get(i)           // unchecked: caller guarantees i < b.Len()
//
// Get and Set deliberately skip validation against any logical contract; the
// owning container is responsible for bounds discipline on the fast path.
package buffer
