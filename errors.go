package shtc1

import (
	"errors"
	"fmt"
)

// ErrChecksum is returned (wrapped with word context) when a received CRC
// byte does not match the two data bytes it covers. A measurement failing
// the checksum never produces decoded values.
var ErrChecksum = errors.New("checksum mismatch")

// BusError reports a communication failure of the underlying transport.
// It is propagated unchanged to the caller; the driver never retries.
type BusError struct {
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("shtc1: %s: bus error: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
