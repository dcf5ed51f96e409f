package shtc1

import (
	"context"
)

// MeasurementBehaviorFunc produces a measurement (or an error) for the mock
// sensor, so embedding code can be exercised without hardware.
type MeasurementBehaviorFunc func(ctx context.Context, unit TemperatureUnit) (Measurement, error)

// MockSensor simulates an SHTC1 using a behavior function. Useful to test
// consumers of the driver against failure modes and value ranges.
//
// Example:
//
//	sensor := NewMockSensor(func(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
//		return Measurement{Temperature: 22.5, Humidity: 45.0, Unit: unit}, nil
//	})
type MockSensor struct {
	behavior MeasurementBehaviorFunc
}

func NewMockSensor(behavior MeasurementBehaviorFunc) *MockSensor {
	return &MockSensor{behavior: behavior}
}

// Measure returns whatever the behavior function produces.
func (m *MockSensor) Measure(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
	return m.behavior(ctx, unit)
}
