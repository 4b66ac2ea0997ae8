package vector

// InvalidReserve - Custom error to inform that a reserve below the number of elements in
// use was requested, which would cause loss of data
type InvalidReserve struct {
	msg string
}

// Error - Used to notify that a reserve below current size was refused
func (E InvalidReserve) Error() string {
	if E.msg == "" {
		return "can't reserve less than the number of elements already in use"
	}
	return E.msg
}

// InvalidIndex - Custom error to inform that an index outside the valid range was given
type InvalidIndex struct {
	msg string
}

// Error - Used to notify that an index outside the valid range was given
func (E InvalidIndex) Error() string {
	if E.msg == "" {
		return "index outside the valid range"
	}
	return E.msg
}

// NoMoreElements - Custom error to inform that an iterator is exhausted
type NoMoreElements struct {
	msg string
}

// Error - Used to notify that an iterator is exhausted
func (E NoMoreElements) Error() string {
	if E.msg == "" {
		return "no more elements"
	}
	return E.msg
}
