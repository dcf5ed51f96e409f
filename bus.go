package shtc1

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// AddressableReader reads len(buffer) bytes from the device at the given
// 7-bit address.
type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

// AddressableWriter writes buffer to the device at the given 7-bit address.
type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the transport capability the driver is built on. Implementations
// live in the i2c and adapter packages; tests inject mocks.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}
