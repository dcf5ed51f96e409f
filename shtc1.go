package shtc1

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"
)

// SHTC1 default I2C address (7-bit)
const DefaultAddress = 0x70

// Commands (Big Endian on the wire), datasheet section 5.
// Measurement opcodes encode clock stretching, power mode and word order.
const (
	cmdMeasureTFirstCS   uint16 = 0x7CA2
	cmdMeasureHFirstCS   uint16 = 0x5C24
	cmdMeasureTFirstNoCS uint16 = 0x7866
	cmdMeasureHFirstNoCS uint16 = 0x58E0

	cmdMeasureLPTFirstCS   uint16 = 0x6458
	cmdMeasureLPHFirstCS   uint16 = 0x44DE
	cmdMeasureLPTFirstNoCS uint16 = 0x609C
	cmdMeasureLPHFirstNoCS uint16 = 0x401A

	cmdSoftReset uint16 = 0x805D
	cmdReadID    uint16 = 0xEFC8
)

// Conversion times per power mode. The sensor needs this long internally
// before the measurement result can be read back.
const (
	normalConversionDelay   = 15 * time.Millisecond
	lowPowerConversionDelay = 1 * time.Millisecond
	resetDelay              = 1 * time.Millisecond
)

// DeviceID is the raw content of the sensor ID register.
type DeviceID uint16

// IsSHTC1 reports whether the ID register content matches the SHTC1 pattern
// (bits 5:0 equal to 0b000111, datasheet section 5.7).
func (id DeviceID) IsSHTC1() bool {
	return id&0x3F == 0x07
}

type Opts struct {
	Address         byte
	ClockStretching bool
	LowPower        bool
	HumidityFirst   bool
	ConversionDelay time.Duration
}

type Opt func(*Opts)

func WithAddress(address byte) Opt {
	return func(o *Opts) {
		o.Address = address
	}
}

func WithClockStretching(enabled bool) Opt {
	return func(o *Opts) {
		o.ClockStretching = enabled
	}
}

func WithLowPower(enabled bool) Opt {
	return func(o *Opts) {
		o.LowPower = enabled
	}
}

func WithHumidityFirst(enabled bool) Opt {
	return func(o *Opts) {
		o.HumidityFirst = enabled
	}
}

func WithConversionDelay(delay time.Duration) Opt {
	return func(o *Opts) {
		o.ConversionDelay = delay
	}
}

// SHTC1 represents a Sensirion SHTC1 Temperature/Humidity sensor.
// The transport handle is owned exclusively by one instance; sharing the
// physical bus between call sites is the caller's responsibility.
// Typical usage:
//
//	s := New(bus)
//	m, err := s.Measure(ctx, shtc1.Celsius)
type SHTC1 struct {
	transport       I2CBus
	addr            byte
	measureCmd      uint16
	humidityFirst   bool
	conversionDelay time.Duration
}

func New(transport I2CBus, opts ...Opt) *SHTC1 {
	config := Opts{
		Address:         DefaultAddress,
		ClockStretching: true,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.ConversionDelay == 0 {
		config.ConversionDelay = normalConversionDelay
		if config.LowPower {
			config.ConversionDelay = lowPowerConversionDelay
		}
	}
	return &SHTC1{
		transport:       transport,
		addr:            config.Address,
		measureCmd:      measureCommand(config),
		humidityFirst:   config.HumidityFirst,
		conversionDelay: config.ConversionDelay,
	}
}

// Datasheet tables 9 and 10 (normal and low power measurement commands).
func measureCommand(config Opts) uint16 {
	switch {
	case config.LowPower && config.ClockStretching && config.HumidityFirst:
		return cmdMeasureLPHFirstCS
	case config.LowPower && config.ClockStretching:
		return cmdMeasureLPTFirstCS
	case config.LowPower && config.HumidityFirst:
		return cmdMeasureLPHFirstNoCS
	case config.LowPower:
		return cmdMeasureLPTFirstNoCS
	case config.ClockStretching && config.HumidityFirst:
		return cmdMeasureHFirstCS
	case config.ClockStretching:
		return cmdMeasureTFirstCS
	case config.HumidityFirst:
		return cmdMeasureHFirstNoCS
	default:
		return cmdMeasureTFirstNoCS
	}
}

// Measure performs a single measurement cycle and returns decoded values.
// Temperature is expressed in the requested unit.
func (s *SHTC1) Measure(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
	raw, err := s.MeasureRaw(ctx)
	if err != nil {
		return Measurement{}, err
	}
	return raw.Convert(unit), nil
}

// MeasureRaw performs a single measurement cycle and returns the raw 16-bit
// codes. Both checksum bytes must validate before any value is returned.
func (s *SHTC1) MeasureRaw(ctx context.Context) (RawMeasurement, error) {
	if err := s.writeCmd(ctx, s.measureCmd); err != nil {
		return RawMeasurement{}, &BusError{Op: "measure command", Err: err}
	}
	if err := s.wait(ctx, s.conversionDelay); err != nil {
		return RawMeasurement{}, err
	}
	// 6 bytes: first word, CRC, second word, CRC
	buf := make([]byte, 6)
	if err := s.transport.ReadFromAddr(ctx, s.addr, buf); err != nil {
		return RawMeasurement{}, &BusError{Op: "measure read", Err: err}
	}
	if !checkCRC(buf[0:2], buf[2]) {
		return RawMeasurement{}, fmt.Errorf("shtc1: first word: %w", ErrChecksum)
	}
	if !checkCRC(buf[3:5], buf[5]) {
		return RawMeasurement{}, fmt.Errorf("shtc1: second word: %w", ErrChecksum)
	}
	first := binary.BigEndian.Uint16(buf[0:2])
	second := binary.BigEndian.Uint16(buf[3:5])
	if s.humidityFirst {
		return RawMeasurement{Temperature: second, Humidity: first}, nil
	}
	return RawMeasurement{Temperature: first, Humidity: second}, nil
}

// ReadID reads the ID register and returns its raw 16-bit value. The value
// is read on demand, never cached.
func (s *SHTC1) ReadID(ctx context.Context) (DeviceID, error) {
	if err := s.writeCmd(ctx, cmdReadID); err != nil {
		return 0, &BusError{Op: "read id command", Err: err}
	}
	buf := make([]byte, 2)
	if err := s.transport.ReadFromAddr(ctx, s.addr, buf); err != nil {
		return 0, &BusError{Op: "read id", Err: err}
	}
	return DeviceID(binary.BigEndian.Uint16(buf)), nil
}

// Reset issues a soft reset. The sensor returns to its power-on state; the
// driver itself holds no state to reset. No response is expected.
func (s *SHTC1) Reset(ctx context.Context) error {
	if err := s.writeCmd(ctx, cmdSoftReset); err != nil {
		return &BusError{Op: "soft reset", Err: err}
	}
	// power-up time after reset is below 1 ms
	return s.wait(ctx, resetDelay)
}

func (s *SHTC1) writeCmd(ctx context.Context, cmd uint16) error {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], cmd)
	return s.transport.WriteToAddr(ctx, s.addr, out[:])
}

func (s *SHTC1) wait(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
