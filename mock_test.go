package shtc1

import (
	"context"
	"fmt"
	"testing"
)

func TestMockSensor_StaticValues(t *testing.T) {
	sensor := NewMockSensor(func(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
		return Measurement{Temperature: 22.5, Humidity: 45.0, Unit: unit}, nil
	})

	m, err := sensor.Measure(context.Background(), Celsius)
	if err != nil {
		t.Fatalf("Measure: unexpected error: %v", err)
	}
	if m.Temperature != 22.5 {
		t.Errorf("expected temperature 22.5, got %f", m.Temperature)
	}
	if m.Humidity != 45.0 {
		t.Errorf("expected humidity 45.0, got %f", m.Humidity)
	}
	if m.Unit != Celsius {
		t.Errorf("expected celsius unit, got %v", m.Unit)
	}
}

func TestMockSensor_DynamicBehavior(t *testing.T) {
	currentTemp := float32(20.0)

	sensor := NewMockSensor(func(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
		return Measurement{Temperature: currentTemp, Humidity: 50.0, Unit: unit}, nil
	})

	ctx := context.Background()

	m, err := sensor.Measure(ctx, Celsius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Temperature != 20.0 {
		t.Errorf("expected 20.0, got %f", m.Temperature)
	}

	currentTemp = 25.0

	m, err = sensor.Measure(ctx, Celsius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Temperature != 25.0 {
		t.Errorf("expected 25.0, got %f", m.Temperature)
	}
}

func TestMockSensor_ErrorHandling(t *testing.T) {
	sensor := NewMockSensor(func(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
		return Measurement{}, fmt.Errorf("sensor error")
	})

	_, err := sensor.Measure(context.Background(), Celsius)
	if err == nil || err.Error() != "sensor error" {
		t.Errorf("expected sensor error, got %v", err)
	}
}

func TestMockSensor_ContextUsage(t *testing.T) {
	var receivedCtx context.Context

	sensor := NewMockSensor(func(ctx context.Context, unit TemperatureUnit) (Measurement, error) {
		receivedCtx = ctx
		return Measurement{Temperature: 20.0, Humidity: 50.0, Unit: unit}, nil
	})

	type contextKey string
	key := contextKey("test")
	ctx := context.WithValue(context.Background(), key, "test-value")

	_, err := sensor.Measure(ctx, Celsius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receivedCtx.Value(key) != "test-value" {
		t.Error("context was not passed through to the behavior function")
	}
}
