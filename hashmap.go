package shroonutils

import (
	"fmt"

	"github.com/CodingSaroj/ShroonUtils/hashfunc"
	"github.com/CodingSaroj/ShroonUtils/internal/bucket"
	"github.com/CodingSaroj/ShroonUtils/vector"
)

// HashMap - A key/value hash table using separate chaining over a fixed number of
// buckets. Each bucket is a vector of keys with a parallel vector of values, the two
// always holding the same number of elements. Keys are unique, entries within a bucket
// keep insertion order.
type HashMap[K any, V any] struct {
	table  bucket.Table[K]
	values []vector.Vector[V]
	size   int
}

// NewHashMap - Returns a new empty HashMap with the default configuration.
//   - hash is the function that hashes keys, see the hashfunc package
//   - equal is the function that compares keys for equality, it has to be consistent with hash
//
// It returns:
//   - hashMap is a pointer to the created HashMap
//   - err is an error when hash or equal is nil
func NewHashMap[K any, V any](hash hashfunc.HashFn[K], equal hashfunc.EqualFn[K]) (*HashMap[K, V], error) {
	return NewHashMapConf[K, V](Config{}, hash, equal)
}

// NewHashMapConf - Returns a new empty HashMap constructed according to conf.
// See NewHashMap for the remaining parameters.
func NewHashMapConf[K any, V any](conf Config, hash hashfunc.HashFn[K], equal hashfunc.EqualFn[K]) (hashMap *HashMap[K, V], err error) {
	if hash == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}
	if equal == nil {
		err = fmt.Errorf("equality function can not be nil")
		return
	}

	n := conf.numberOfBuckets()

	hashMap = &HashMap[K, V]{
		table:  bucket.New[K](n, hash, equal),
		values: make([]vector.Vector[V], n),
	}

	if conf.Reporter != nil {
		for i := 0; i < n; i++ {
			hashMap.table.Buckets[i].SetReporter(conf.Reporter)
			hashMap.values[i].SetReporter(conf.Reporter)
		}
	}

	return
}

// Len - Returns the number of entries in the hash map
func (M *HashMap[K, V]) Len() int {
	return M.size
}

// Empty - Returns true if the hash map holds no entries
func (M *HashMap[K, V]) Empty() bool {
	return M.size == 0
}

// Get - Searches for an entry with the given key.
// It returns:
//   - value is a pointer to the value of the matching entry, valid until the next mutating call, or nil when the key is absent
//   - found is true when a matching entry exists
func (M *HashMap[K, V]) Get(key K) (value *V, found bool) {
	bucketNo := M.table.BucketNo(key)
	if i, ok := M.table.Scan(bucketNo, key); ok {
		return M.values[bucketNo].At(i), true
	}

	return nil, false
}

// Insert - Adds an entry with the given key and value, unless an entry with an equal key
// already exists. An existing entry is left unchanged, including its value, and inserting
// a duplicate key does not grow the map.
//
// It returns a pointer to the value slot of the entry, new or existing, valid until the
// next mutating call.
func (M *HashMap[K, V]) Insert(key K, value V) *V {
	bucketNo := M.table.BucketNo(key)
	if i, ok := M.table.Scan(bucketNo, key); ok {
		return M.values[bucketNo].At(i)
	}

	M.table.Buckets[bucketNo].Push(key)
	M.size++

	return M.values[bucketNo].Push(value)
}

// Erase - Removes the entry with the given key, if present. The key and its value are
// erased at the same element index of the bucket's parallel vectors, keeping them element
// count consistent. An absent key is a no-op.
//
// It returns true when an entry was removed.
func (M *HashMap[K, V]) Erase(key K) bool {
	bucketNo := M.table.BucketNo(key)
	i, ok := M.table.Scan(bucketNo, key)
	if !ok {
		return false
	}

	_ = M.table.Buckets[bucketNo].Erase(i)
	_ = M.values[bucketNo].Erase(i)
	M.size--

	return true
}

// Clear - Removes all entries and releases the bucket storage
func (M *HashMap[K, V]) Clear() {
	M.table.Clear()
	for i := range M.values {
		M.values[i].Clear()
	}
	M.size = 0
}

// Each - Calls fn for every entry, bucket by bucket in bucket order and in insertion
// order within a bucket. The value pointer is valid until the next mutating call.
// Iteration stops early when fn returns false. Mutating the map from within fn is
// undefined.
func (M *HashMap[K, V]) Each(fn func(key K, value *V) bool) {
	for bucketNo := range M.table.Buckets {
		keys := M.table.Buckets[bucketNo].Elems()
		values := M.values[bucketNo].Elems()
		for i := range keys {
			if !fn(keys[i], &values[i]) {
				return
			}
		}
	}
}

// Stat - Produces usage statistics for the hash map.
//   - includeDistribution set to true includes a slice of length NumberOfBuckets with the number of entries per bucket, false sets Stat.BucketDistribution to nil
func (M *HashMap[K, V]) Stat(includeDistribution bool) Stat {
	stat := Stat{
		Records:         M.size,
		NumberOfBuckets: M.table.NumberOfBuckets(),
	}

	if includeDistribution {
		stat.BucketDistribution = make([]int, M.table.NumberOfBuckets())
		for i := range M.table.Buckets {
			stat.BucketDistribution[i] = M.table.Buckets[i].Len()
		}
	}

	return stat
}
