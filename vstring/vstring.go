// Package vstring implements a growable byte string as a thin specialization of
// vector.Vector over bytes.
package vstring

import (
	"github.com/CodingSaroj/ShroonUtils/report"
	"github.com/CodingSaroj/ShroonUtils/vector"
)

// String - A growable byte string. The zero value is an empty string ready for use.
type String struct {
	v        vector.Vector[byte]
	reporter report.Reporter
}

// New - Returns a pointer to a new empty String
func New() *String {
	return &String{}
}

// From - Returns a pointer to a new String holding a copy of s
func From(s string) *String {
	str := &String{}
	str.v.PushN([]byte(s))
	return str
}

// SetReporter - Injects a reporter that is called synchronously with every recoverable
// failure in addition to the error being returned. A nil reporter disables reporting.
func (S *String) SetReporter(reporter report.Reporter) {
	S.reporter = reporter
	S.v.SetReporter(reporter)
}

// report - Mirrors a recoverable failure to the injected reporter, if any
func (S *String) report(err error) {
	if S.reporter != nil {
		S.reporter.Report(err.Error())
	}
}

// Len - Returns the number of bytes in use
func (S *String) Len() int {
	return S.v.Len()
}

// Cap - Returns the number of byte slots allocated
func (S *String) Cap() int {
	return S.v.Cap()
}

// Reserve - Grows or shrinks the allocated storage to hold exactly size bytes, see
// vector.Vector.Reserve for the shrink rules
func (S *String) Reserve(size int) error {
	return S.v.Reserve(size)
}

// Resize - Sets the number of bytes in use to size, growing with zero bytes
func (S *String) Resize(size int) error {
	return S.v.Resize(size)
}

// Clear - Discards all bytes and releases the backing storage
func (S *String) Clear() {
	S.v.Clear()
}

// AppendByte - Appends a single byte
func (S *String) AppendByte(c byte) {
	S.v.Push(c)
}

// AppendString - Appends the bytes of s
func (S *String) AppendString(s string) {
	S.v.PushN([]byte(s))
}

// AppendBytes - Appends the given bytes
func (S *String) AppendBytes(p []byte) {
	S.v.PushN(p)
}

// InsertByte - Inserts a single byte at index at. The index must be less than or equal
// to the current length, otherwise a vector.InvalidIndex error is returned and the
// string is left unchanged.
func (S *String) InsertByte(at int, c byte) error {
	_, err := S.v.Insert(at, c)
	return err
}

// InsertString - Inserts the bytes of s at index at. See InsertByte for the index rule.
func (S *String) InsertString(at int, s string) error {
	_, err := S.v.InsertN(at, []byte(s))
	return err
}

// InsertBytes - Inserts the given bytes at index at. See InsertByte for the index rule.
func (S *String) InsertBytes(at int, p []byte) error {
	_, err := S.v.InsertN(at, p)
	return err
}

// Erase - Removes the byte at index at, shifting the tail left. A start index beyond
// the end is a vector.InvalidIndex error.
func (S *String) Erase(at int) error {
	return S.v.Erase(at)
}

// EraseN - Removes up to count bytes starting at index at, shifting the tail left. A
// count reaching past the end is clamped to the current length, which is not an error.
func (S *String) EraseN(at, count int) error {
	return S.v.EraseN(at, count)
}

// Pop - Removes the last byte. Popping an empty string is an error.
func (S *String) Pop() error {
	return S.v.Pop()
}

// PopN - Removes the last count bytes. The count must not exceed the current length.
func (S *String) PopN(count int) error {
	return S.v.PopN(count)
}

// Slice - Returns a new String of exactly size bytes copied from this string starting
// at index at. A size of 0 selects everything from at to the end. The size is not
// clamped to the source length, a slice reaching past the end is zero padded beyond
// the copied region.
//
// It returns:
//   - slice is a pointer to the new String, or nil on error
//   - err is of type vector.InvalidIndex when at is outside the string or size is negative
func (S *String) Slice(at, size int) (slice *String, err error) {
	if at < 0 || at >= S.v.Len() || size < 0 {
		err = vector.InvalidIndex{}
		S.report(err)
		return
	}

	if size == 0 {
		size = S.v.Len() - at
	}

	slice = New()
	_ = slice.v.Resize(size)

	n := S.v.Len() - at
	if n > size {
		n = size
	}
	copy(slice.v.Elems(), S.v.Elems()[at:at+n])

	return
}

// String - Returns a copy of the contents as a Go string
func (S *String) String() string {
	return string(S.v.Elems())
}

// Bytes - Returns the contents as a byte slice sharing the backing storage, valid until
// the next mutating call
func (S *String) Bytes() []byte {
	return S.v.Elems()
}

// Each - Calls fn for every byte in index order. Iteration stops early when fn returns
// false.
func (S *String) Each(fn func(i int, c byte) bool) {
	S.v.Each(func(i int, elem *byte) bool {
		return fn(i, *elem)
	})
}
