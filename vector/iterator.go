package vector

// Iterator - Is used to traverse the live elements of a vector one by one in index order.
// It is restartable through Reset. Mutating the vector while iterating is undefined.
type Iterator[T any] struct {
	vector *Vector[T]
	next   int
}

// Iterator - Returns a pointer to a new Iterator positioned before the first element
func (V *Vector[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{vector: V}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (I *Iterator[T]) HasNext() bool {
	return I.next < I.vector.Len()
}

// Next - Returns the next element.
// It returns:
//   - elem is a copy of the next element.
//   - err is of type NoMoreElements when the iterator is exhausted.
func (I *Iterator[T]) Next() (elem T, err error) {
	if I.next >= I.vector.Len() {
		err = NoMoreElements{}
		return
	}

	elem = I.vector.elems[I.next]
	I.next++

	return
}

// Reset - Repositions the iterator before the first element
func (I *Iterator[T]) Reset() {
	I.next = 0
}
