package shroonutils

import (
	"fmt"

	"github.com/CodingSaroj/ShroonUtils/hashfunc"
	"github.com/CodingSaroj/ShroonUtils/internal/bucket"
)

// HashSet - A key-only hash table using separate chaining over a fixed number of buckets.
// The key vector of a bucket is the bucket, there is no parallel value storage. Keys are
// unique, entries within a bucket keep insertion order.
type HashSet[K any] struct {
	table bucket.Table[K]
	size  int
}

// NewHashSet - Returns a new empty HashSet with the default configuration.
//   - hash is the function that hashes keys, see the hashfunc package
//   - equal is the function that compares keys for equality, it has to be consistent with hash
//
// It returns:
//   - hashSet is a pointer to the created HashSet
//   - err is an error when hash or equal is nil
func NewHashSet[K any](hash hashfunc.HashFn[K], equal hashfunc.EqualFn[K]) (*HashSet[K], error) {
	return NewHashSetConf[K](Config{}, hash, equal)
}

// NewHashSetConf - Returns a new empty HashSet constructed according to conf.
// See NewHashSet for the remaining parameters.
func NewHashSetConf[K any](conf Config, hash hashfunc.HashFn[K], equal hashfunc.EqualFn[K]) (hashSet *HashSet[K], err error) {
	if hash == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}
	if equal == nil {
		err = fmt.Errorf("equality function can not be nil")
		return
	}

	n := conf.numberOfBuckets()

	hashSet = &HashSet[K]{table: bucket.New[K](n, hash, equal)}

	if conf.Reporter != nil {
		for i := 0; i < n; i++ {
			hashSet.table.Buckets[i].SetReporter(conf.Reporter)
		}
	}

	return
}

// Len - Returns the number of keys in the hash set
func (S *HashSet[K]) Len() int {
	return S.size
}

// Empty - Returns true if the hash set holds no keys
func (S *HashSet[K]) Empty() bool {
	return S.size == 0
}

// Get - Searches for a key equal to the given key.
// It returns:
//   - entry is a pointer to the stored key, valid until the next mutating call, or nil when the key is absent
//   - found is true when a matching key exists
func (S *HashSet[K]) Get(key K) (entry *K, found bool) {
	bucketNo := S.table.BucketNo(key)
	if i, ok := S.table.Scan(bucketNo, key); ok {
		return S.table.Buckets[bucketNo].At(i), true
	}

	return nil, false
}

// Contains - Returns true if a key equal to the given key is in the set
func (S *HashSet[K]) Contains(key K) bool {
	_, found := S.Get(key)
	return found
}

// Insert - Adds the given key, unless an equal key already exists. Inserting a duplicate
// key leaves the set unchanged.
//
// It returns a pointer to the stored key, new or existing, valid until the next mutating
// call.
func (S *HashSet[K]) Insert(key K) *K {
	bucketNo := S.table.BucketNo(key)
	if i, ok := S.table.Scan(bucketNo, key); ok {
		return S.table.Buckets[bucketNo].At(i)
	}

	S.size++

	return S.table.Buckets[bucketNo].Push(key)
}

// Erase - Removes the key equal to the given key, if present. An absent key is a no-op.
//
// It returns true when a key was removed.
func (S *HashSet[K]) Erase(key K) bool {
	bucketNo := S.table.BucketNo(key)
	i, ok := S.table.Scan(bucketNo, key)
	if !ok {
		return false
	}

	_ = S.table.Buckets[bucketNo].Erase(i)
	S.size--

	return true
}

// Clear - Removes all keys and releases the bucket storage
func (S *HashSet[K]) Clear() {
	S.table.Clear()
	S.size = 0
}

// Each - Calls fn for every key, bucket by bucket in bucket order and in insertion order
// within a bucket. Iteration stops early when fn returns false. Mutating the set from
// within fn is undefined.
func (S *HashSet[K]) Each(fn func(key K) bool) {
	for bucketNo := range S.table.Buckets {
		for _, key := range S.table.Buckets[bucketNo].Elems() {
			if !fn(key) {
				return
			}
		}
	}
}

// Stat - Produces usage statistics for the hash set.
//   - includeDistribution set to true includes a slice of length NumberOfBuckets with the number of keys per bucket, false sets Stat.BucketDistribution to nil
func (S *HashSet[K]) Stat(includeDistribution bool) Stat {
	stat := Stat{
		Records:         S.size,
		NumberOfBuckets: S.table.NumberOfBuckets(),
	}

	if includeDistribution {
		stat.BucketDistribution = make([]int, S.table.NumberOfBuckets())
		for i := range S.table.Buckets {
			stat.BucketDistribution[i] = S.table.Buckets[i].Len()
		}
	}

	return stat
}
