package shroonutils

// Entry - One key/value pair produced by a MapIterator
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// MapIterator - Is used to iterate over the entries of a HashMap one by one, bucket by
// bucket in bucket order and in insertion order within a bucket. It is restartable
// through Reset and read-only, entries are returned by value. Mutating the map while
// iterating is undefined.
type MapIterator[K any, V any] struct {
	hashMap  *HashMap[K, V]
	bucketNo int
	index    int
}

// Iterator - Returns a pointer to a new MapIterator positioned before the first entry
func (M *HashMap[K, V]) Iterator() *MapIterator[K, V] {
	return &MapIterator[K, V]{hashMap: M}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *MapIterator[K, V]) HasNext() bool {
	for I.bucketNo < len(I.hashMap.table.Buckets) {
		if I.index < I.hashMap.table.Buckets[I.bucketNo].Len() {
			return true
		}
		I.bucketNo++
		I.index = 0
	}

	return false
}

// Next - Returns the next entry.
// It returns:
//   - entry is the next key/value pair.
//   - err is of type NoMoreEntries when the iterator is exhausted.
func (I *MapIterator[K, V]) Next() (entry Entry[K, V], err error) {
	if !I.HasNext() {
		err = NoMoreEntries{}
		return
	}

	entry = Entry[K, V]{
		Key:   *I.hashMap.table.Buckets[I.bucketNo].At(I.index),
		Value: *I.hashMap.values[I.bucketNo].At(I.index),
	}
	I.index++

	return
}

// Reset - Repositions the iterator before the first entry
func (I *MapIterator[K, V]) Reset() {
	I.bucketNo = 0
	I.index = 0
}

// SetIterator - Is used to iterate over the keys of a HashSet one by one, bucket by
// bucket in bucket order and in insertion order within a bucket. It is restartable
// through Reset and read-only, keys are returned by value. Mutating the set while
// iterating is undefined.
type SetIterator[K any] struct {
	hashSet  *HashSet[K]
	bucketNo int
	index    int
}

// Iterator - Returns a pointer to a new SetIterator positioned before the first key
func (S *HashSet[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{hashSet: S}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next
func (I *SetIterator[K]) HasNext() bool {
	for I.bucketNo < len(I.hashSet.table.Buckets) {
		if I.index < I.hashSet.table.Buckets[I.bucketNo].Len() {
			return true
		}
		I.bucketNo++
		I.index = 0
	}

	return false
}

// Next - Returns the next key.
// It returns:
//   - key is the next key.
//   - err is of type NoMoreEntries when the iterator is exhausted.
func (I *SetIterator[K]) Next() (key K, err error) {
	if !I.HasNext() {
		err = NoMoreEntries{}
		return
	}

	key = *I.hashSet.table.Buckets[I.bucketNo].At(I.index)
	I.index++

	return
}

// Reset - Repositions the iterator before the first key
func (I *SetIterator[K]) Reset() {
	I.bucketNo = 0
	I.index = 0
}
