package cmm

import "fmt"

// IOError reports a marker file that could not be opened or read
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MalformedRecordError reports a marker record with a missing or
// non-numeric coordinate. Loading stops at the first one.
type MalformedRecordError struct {
	Path   string
	Line   int
	Key    string
	Record string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed marker record: %s %q: %s", e.Path, e.Line, e.Reason, e.Key, e.Record)
}
