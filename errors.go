package shroonutils

// NoMoreEntries - Custom error to inform that an iterator is exhausted
type NoMoreEntries struct {
	msg string
}

// Error - Used to notify that an iterator is exhausted
func (E NoMoreEntries) Error() string {
	if E.msg == "" {
		return "no more entries"
	}
	return E.msg
}
