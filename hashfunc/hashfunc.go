// Package hashfunc defines the hash and equality function types bound to a hash map or
// hash set at creation, together with implementations for the built-in scalar types.
package hashfunc

import (
	"hash/crc32"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/CodingSaroj/ShroonUtils/internal/utils"
)

// HashFn - Function that hashes a key to a bucket selection value.
// It has to be pure and deterministic, and it has to be consistent with the EqualFn it is
// paired with, equal keys have to produce equal hash values.
type HashFn[K any] func(key K) uint64

// EqualFn - Function that compares two keys for equality.
// It has to be pure and a true equivalence relation over the key type.
type EqualFn[K any] func(a, b K) bool

// Number - Hashes any integer type to its own value
func Number[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// Float - Hashes any floating point type to its bit pattern
func Float[K constraints.Float](key K) uint64 {
	return math.Float64bits(float64(key))
}

// String - Hashes a string using xxhash
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Bytes - Hashes a byte slice using xxhash
func Bytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Checksum - Hashes a byte slice using crc32.ChecksumIEEE. Weaker distribution than Bytes
// but stable across library versions, which matters when bucket layouts are compared
// between runs.
func Checksum(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Equal - Compares two keys of any comparable type using ==
func Equal[K comparable](a, b K) bool {
	return a == b
}

// BytesEqual - Compares two byte slices for equality in size and contents
func BytesEqual(a, b []byte) bool {
	return utils.IsEqual(a, b)
}
