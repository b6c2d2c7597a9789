package shirei

import (
	"fmt"
	"unsafe"

	"go.hasen.dev/generic"
)

// Synthetic ids are a rolling FNV-1a hash of the path from the root.

type scopeId uint32

const (
	fnvOffset scopeId = 2166136261
	fnvPrime  scopeId = 16777619
)

func addChildScope[T any](s scopeId, n T) scopeId {
	return addChildScopeFromBytes(s, generic.UnsafeRawBytes(&n))
}

func addChildScopeFromBytes(s scopeId, b []byte) scopeId {
	for _, c := range b {
		s ^= scopeId(c)
		s *= fnvPrime
	}
	return s
}

// scopeIdFrom hashes an explicit id by value. Hashing the interface words
// directly would give a boxed struct a new scope on every frame.
func scopeIdFrom(id any) scopeId {
	switch v := id.(type) {
	case scopeId:
		return v
	case string:
		return addChildScopeFromBytes(fnvOffset, unsafe.Slice(unsafe.StringData(v), len(v)))
	case int:
		return addChildScope(fnvOffset, v)
	default:
		return addChildScopeFromBytes(fnvOffset, fmt.Appendf(nil, "%T:%v", id, id))
	}
}
