package types

import "fmt"

// StructureError reports a document or record whose shape cannot be filtered,
// such as a top-level value that is not an array or a fields value that is not an object.
type StructureError struct {
	Index   int // record index, or -1 when the document itself is malformed
	Message string
	Cause   error
}

func (e *StructureError) Error() string {
	msg := e.Message
	if e.Index >= 0 {
		msg = fmt.Sprintf("record %d: %s", e.Index, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("unexpected structure: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("unexpected structure: %s", msg)
}

func (e *StructureError) Unwrap() error {
	return e.Cause
}
