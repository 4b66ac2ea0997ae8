// Package bucket implements the bucket table shared by the hash map and hash set. It
// routes a key to a bucket through the bound hash function and searches buckets linearly
// using the bound equality function. Each bucket is a vector of keys in insertion order.
package bucket

import (
	"github.com/CodingSaroj/ShroonUtils/hashfunc"
	"github.com/CodingSaroj/ShroonUtils/vector"
)

// Table - Holds the key side of a hash container: a fixed number of key buckets together
// with the hash and equality functions bound at creation. The number of buckets never
// changes and there is no rehashing, a skewed key distribution degrades the affected
// buckets to linear search.
type Table[K any] struct {
	Buckets []vector.Vector[K]
	mask    uint64
	hash    hashfunc.HashFn[K]
	equal   hashfunc.EqualFn[K]
}

// New - Returns a new Table with numberOfBuckets key buckets, all empty.
// numberOfBuckets has to be a power of two, bucket routing masks the hash value with
// numberOfBuckets - 1.
func New[K any](numberOfBuckets int, hash hashfunc.HashFn[K], equal hashfunc.EqualFn[K]) Table[K] {
	return Table[K]{
		Buckets: make([]vector.Vector[K], numberOfBuckets),
		mask:    uint64(numberOfBuckets - 1),
		hash:    hash,
		equal:   equal,
	}
}

// NumberOfBuckets - Returns the fixed number of buckets
func (T *Table[K]) NumberOfBuckets() int {
	return len(T.Buckets)
}

// BucketNo - Returns the bucket number the given key routes to
func (T *Table[K]) BucketNo(key K) int {
	return int(T.hash(key) & T.mask)
}

// Scan - Searches bucket bucketNo element by element for a key equal to the given key.
// It returns:
//   - index is the element index of the first match within the bucket
//   - found is false when no element matched, in which case index is 0
func (T *Table[K]) Scan(bucketNo int, key K) (index int, found bool) {
	b := &T.Buckets[bucketNo]
	for i := 0; i < b.Len(); i++ {
		if T.equal(*b.At(i), key) {
			return i, true
		}
	}

	return 0, false
}

// Clear - Empties every bucket, releasing their storage
func (T *Table[K]) Clear() {
	for i := range T.Buckets {
		T.Buckets[i].Clear()
	}
}
