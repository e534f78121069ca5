package seqgo

import (
	"encoding/json"

	"github.com/hupe1980/seqgo/buffer"
)

// MarshalJSON encodes the live window [0, Len) as a JSON array. An empty
// Array encodes as [], never null. Stale slots beyond Len are not encoded.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	if a.size == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Slice())
}

// UnmarshalJSON replaces the Array's contents with the decoded JSON array.
// The decoded block is adopted directly, so the resulting capacity equals
// the decoded length. On a decode error the Array is left unchanged.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	a.items.MoveFrom(buffer.Adopt(vals))
	a.size = len(vals)
	return nil
}
