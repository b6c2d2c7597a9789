package shirei

import (
	"github.com/cespare/xxhash/v2"
	g "go.hasen.dev/generic"
)

// only for flat types without pointers

func Hash[T any](h *xxhash.Digest, v *T) {
	h.Write(g.UnsafeRawBytes(v))
}

func HashSlice[T any](h *xxhash.Digest, v []T) {
	h.Write(g.UnsafeSliceBytes(v))
}
