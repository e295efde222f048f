// Package keyenc assembles multi-column key tuples into canonical
// byte strings and hashes them. Grouping and join bucketing both rely
// on it: buckets are addressed by the xxhash of the tuple, and the
// tuple bytes themselves settle hash collisions exactly.
package keyenc

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// EncodeTuple concatenates pre-encoded key components into one
// canonical byte string. Components are length-prefixed so that
// distinct tuples never collide by concatenation.
func EncodeTuple(components [][]byte) []byte {
	size := 0
	for _, c := range components {
		size += len(c) + binary.MaxVarintLen64
	}
	tuple := make([]byte, 0, size)
	var prefix [binary.MaxVarintLen64]byte
	for _, c := range components {
		n := binary.PutUvarint(prefix[:], uint64(len(c)))
		tuple = append(tuple, prefix[:n]...)
		tuple = append(tuple, c...)
	}
	return tuple
}

// Hash returns the xxhash digest of an encoded key tuple
func Hash(tuple []byte) uint64 {
	return xxhash.Sum64(tuple)
}
