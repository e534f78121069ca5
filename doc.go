// Package seqgo provides a dynamically-resizable, contiguous sequence
// container with value semantics and amortized O(1) append.
//
// An Array tracks a logical size separately from its physical capacity and
// keeps its elements in a single contiguous block owned through the buffer
// package's exclusive-ownership wrapper. Capacity doubles on growth, so a
// run of N appends costs O(N) in total.
//
// # Quick Start
//
//	a := seqgo.Of(1, 2, 3)
//	a.Append(4)
//	a.Insert(1, 9)      // [1 9 2 3 4]
//	a.Erase(2)          // [1 9 3 4]
//
//	v, err := a.At(10)  // checked access: *ErrIndexOutOfRange
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
// The zero value is an empty, ready-to-use Array:
//
//	var a seqgo.Array[string]
//	a.Append("hello")
//
// # Checked vs Unchecked Access
//
// Get and Set are the fast path: the caller guarantees the index lies in
// [0, Len) and no validation against the logical size is performed. At is
// the only access path with a recoverable failure mode; it returns
// *ErrIndexOutOfRange instead of panicking. Call sites choose between
// performance and safety explicitly, by name.
//
// # Ordering
//
// Compare performs a deep, element-wise three-way lexicographic comparison;
// a strict prefix orders before the longer sequence. Equal, Less,
// LessOrEqual, Greater and GreaterOrEqual all derive from Compare, so two
// arrays are equal exactly when Compare reports 0.
//
// # Concurrency
//
// Arrays are not safe for concurrent use. Exactly one goroutine may mutate
// an Array at a time; callers needing shared access must synchronize
// externally. Distinct Arrays are fully independent.
package seqgo
