package tinystr

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned by FromRaw and the decode adapters when
// the supplied bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("tinystr: invalid utf-8")

// CapacityError is returned by TryAppend and From when the text does
// not fit. Input is the rejected text, handed back unmodified so the
// caller can retry it elsewhere or truncate it under its own policy.
type CapacityError struct {
	Input string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity for %d extra bytes", len(e.Input))
}

// LengthError is the decode-side form of a capacity overflow: the
// incoming representation held Len bytes but the target type caps out
// at Cap.
type LengthError struct {
	Len int
	Cap int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("tinystr: invalid length %d, expected a string no more than %d bytes long", e.Len, e.Cap)
}
