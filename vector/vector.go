// Package vector implements a growable contiguous sequence of elements, similar to the
// std::vector from C++ STL. It is the storage unit underlying the hash map and hash set
// buckets as well as the vstring.String type.
//
// Pointers returned by At, Insert, InsertN, Push and PushN reach straight into the backing
// storage and are valid only until the next mutating call on the same vector. Any operation
// that grows the vector may reallocate the backing storage, after which earlier pointers
// refer to memory the vector no longer owns.
package vector

import (
	"github.com/CodingSaroj/ShroonUtils/report"
)

// Vector - A growable contiguous sequence of elements of type T.
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	elems    []T
	reporter report.Reporter
}

// New - Returns a pointer to a new empty Vector
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// SetReporter - Injects a reporter that is called synchronously with every recoverable
// failure in addition to the error being returned. A nil reporter disables reporting.
func (V *Vector[T]) SetReporter(reporter report.Reporter) {
	V.reporter = reporter
}

// report - Mirrors a recoverable failure to the injected reporter, if any
func (V *Vector[T]) report(err error) {
	if V.reporter != nil {
		V.reporter.Report(err.Error())
	}
}

// Len - Returns the number of elements in use
func (V *Vector[T]) Len() int {
	return len(V.elems)
}

// Cap - Returns the number of element slots allocated
func (V *Vector[T]) Cap() int {
	return cap(V.elems)
}

// At - Returns a pointer to the element at index i, valid until the next mutating call.
// An index outside the live range is reported and returns nil.
func (V *Vector[T]) At(i int) *T {
	if i < 0 || i >= len(V.elems) {
		V.report(InvalidIndex{})
		return nil
	}
	return &V.elems[i]
}

// Elems - Returns the live element range as a slice sharing the backing storage.
// The slice is valid until the next mutating call.
func (V *Vector[T]) Elems() []T {
	return V.elems
}

// Reserve - Grows or shrinks the allocated storage to hold exactly size elements without
// changing the number of elements in use. Reserving below the number of elements in use
// is refused with an InvalidReserve error to prevent loss of data, reserving down to
// exactly the size in use acts as a shrink to fit.
func (V *Vector[T]) Reserve(size int) error {
	if size < len(V.elems) {
		err := InvalidReserve{}
		V.report(err)
		return err
	}

	if size == cap(V.elems) {
		return nil
	}

	elems := make([]T, len(V.elems), size)
	copy(elems, V.elems)
	V.elems = elems

	return nil
}

// Resize - Sets the number of elements in use to size. Growing adds zero valued elements,
// shrinking discards trailing elements without freeing capacity. When growing beyond the
// current capacity the storage is extended geometrically, keeping long append sequences
// amortized constant time.
func (V *Vector[T]) Resize(size int) error {
	if size < 0 {
		err := InvalidIndex{}
		V.report(err)
		return err
	}

	switch {
	case size <= len(V.elems):
		V.elems = V.elems[:size]
	case size <= cap(V.elems):
		oldLen := len(V.elems)
		V.elems = V.elems[:size]
		clear(V.elems[oldLen:])
	default:
		newCap := 2 * cap(V.elems)
		if newCap < size {
			newCap = size
		}
		elems := make([]T, size, newCap)
		copy(elems, V.elems)
		V.elems = elems
	}

	return nil
}

// InsertN - Inserts the given elements starting at index at, shifting the tail right to
// make room. The index must be less than or equal to the current size, otherwise an
// InvalidIndex error is returned and the vector is left unchanged.
//
// It returns:
//   - elem is a pointer to the first inserted element, valid until the next mutating call, or nil when nothing was inserted
//   - err is of type InvalidIndex if at is outside the valid range
func (V *Vector[T]) InsertN(at int, elems []T) (elem *T, err error) {
	if at < 0 || at > len(V.elems) {
		err = InvalidIndex{}
		V.report(err)
		return
	}

	if len(elems) == 0 {
		return
	}

	// size+len(elems) is never negative here, so Resize can not fail
	size := len(V.elems)
	_ = V.Resize(size + len(elems))

	// copy is overlap safe, source and destination ranges share the backing storage
	if at != size {
		copy(V.elems[at+len(elems):], V.elems[at:size])
	}
	copy(V.elems[at:], elems)

	elem = &V.elems[at]

	return
}

// Insert - Inserts a single element at index at. See InsertN.
func (V *Vector[T]) Insert(at int, value T) (*T, error) {
	return V.InsertN(at, []T{value})
}

// Push - Appends a single element and returns a pointer to it, valid until the next
// mutating call.
func (V *Vector[T]) Push(value T) *T {
	elem, _ := V.Insert(len(V.elems), value)
	return elem
}

// PushN - Appends the given elements and returns a pointer to the first of them, valid
// until the next mutating call.
func (V *Vector[T]) PushN(values []T) *T {
	elem, _ := V.InsertN(len(V.elems), values)
	return elem
}

// EraseN - Removes up to count elements starting at index at, shifting the tail left over
// the erased range. A count reaching past the end is clamped to the live range, which is
// not an error. A start index beyond the end is an InvalidIndex error and leaves the
// vector unchanged.
func (V *Vector[T]) EraseN(at, count int) error {
	if at < 0 || at > len(V.elems) || count < 0 {
		err := InvalidIndex{}
		V.report(err)
		return err
	}

	if at+count > len(V.elems) {
		count = len(V.elems) - at
	}

	size := len(V.elems)
	if at+count != size {
		copy(V.elems[at:], V.elems[at+count:])
	}

	// Zero the vacated tail so the storage holds no stale references
	clear(V.elems[size-count : size])
	V.elems = V.elems[:size-count]

	return nil
}

// Erase - Removes the element at index at. See EraseN.
func (V *Vector[T]) Erase(at int) error {
	return V.EraseN(at, 1)
}

// Pop - Removes the last element. Popping an empty vector is an InvalidIndex error.
func (V *Vector[T]) Pop() error {
	return V.Erase(len(V.elems) - 1)
}

// PopN - Removes the last count elements. The count must not exceed the number of
// elements in use.
func (V *Vector[T]) PopN(count int) error {
	return V.EraseN(len(V.elems)-count, count)
}

// Clear - Discards all elements and releases the backing storage
func (V *Vector[T]) Clear() {
	V.elems = nil
}

// Each - Calls fn for every element in index order, passing the index and a pointer to
// the element. Iteration stops early when fn returns false. Mutating the vector from
// within fn is undefined.
func (V *Vector[T]) Each(fn func(i int, elem *T) bool) {
	for i := range V.elems {
		if !fn(i, &V.elems[i]) {
			return
		}
	}
}
