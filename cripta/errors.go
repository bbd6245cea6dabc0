package cripta

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrBlockSize         = errors.New("block size mismatch")
	ErrKeySize           = errors.New("key size mismatch")
	ErrLengthMismatch    = errors.New("operand length mismatch")
	ErrIndexOutOfRange   = errors.New("permutation index out of range")
	ErrRegisterSize      = errors.New("key register size mismatch")
	ErrInvalidMode       = errors.New("invalid operation mode")
	ErrScheduleExhausted = errors.New("key schedule exhausted")
)

// SizeError reports a buffer whose length differs from the one an operation
// requires. It unwraps to Kind so callers can match it with errors.Is.
type SizeError struct {
	What     string
	Expected int
	Actual   int
	Kind     error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s length is incorrect. expected: %d, actual: %d", e.What, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error {
	return e.Kind
}

func checkSize(what string, data []uint8, expected int, kind error) error {
	if len(data) != expected {
		return &SizeError{What: what, Expected: expected, Actual: len(data), Kind: kind}
	}
	return nil
}

// KeySizeError is returned by NewCipher for keys that are not KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "cripta: invalid DES key size " + strconv.Itoa(int(k))
}
