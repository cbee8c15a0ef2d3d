package service

// Kind classifies a business-rule failure so handlers can pick a status
// code without string matching.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindDuplicateID
	KindNotFound
	KindCapacityExceeded
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func DuplicateID(msg string) *Error {
	return &Error{Kind: KindDuplicateID, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func CapacityExceeded(msg string) *Error {
	return &Error{Kind: KindCapacityExceeded, Message: msg}
}
