package seqgo

import "fmt"

// ErrIndexOutOfRange indicates a checked access (At) with an index outside
// the live window [0, Len).
//
// This is the container's only recoverable failure mode. Precondition
// violations on the unchecked paths (Get, Set, Insert, Erase positions)
// are caller bugs and are not reported through errors.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Len)
}
