package shtc1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawMeasurement_Convert_Boundaries(t *testing.T) {
	tests := []struct {
		name         string
		raw          RawMeasurement
		unit         TemperatureUnit
		expectedTemp float32
		expectedHum  float32
	}{
		{name: "all zero celsius", raw: RawMeasurement{}, unit: Celsius, expectedTemp: -45.0, expectedHum: 0.0},
		{name: "all ones celsius", raw: RawMeasurement{Temperature: 0xFFFF, Humidity: 0xFFFF}, unit: Celsius, expectedTemp: 130.0, expectedHum: 100.0},
		{name: "all zero fahrenheit", raw: RawMeasurement{}, unit: Fahrenheit, expectedTemp: -49.0, expectedHum: 0.0},
		{name: "all ones fahrenheit", raw: RawMeasurement{Temperature: 0xFFFF, Humidity: 0xFFFF}, unit: Fahrenheit, expectedTemp: 266.0, expectedHum: 100.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.raw.Convert(tt.unit)
			assert.Equal(t, tt.expectedTemp, m.Temperature)
			assert.Equal(t, tt.expectedHum, m.Humidity)
			assert.Equal(t, tt.unit, m.Unit)
		})
	}
}

func TestRawMeasurement_Convert_WorkedExample(t *testing.T) {
	raw := RawMeasurement{Temperature: 0x648A, Humidity: 0xA09D}

	m := raw.Convert(Celsius)
	assert.InDelta(t, 23.729, m.Temperature, 0.001)
	assert.InDelta(t, 62.741, m.Humidity, 0.001)

	f := raw.Convert(Fahrenheit)
	assert.InDelta(t, 74.712, f.Temperature, 0.001)
	assert.InDelta(t, 62.741, f.Humidity, 0.001)
}

// Integer accessors must track the float conversion at the boundary values
// (truncating division).
func TestRawMeasurement_CentiConversions(t *testing.T) {
	tests := []struct {
		name         string
		raw          RawMeasurement
		expectedTemp int32
		expectedHum  int32
	}{
		{name: "all zero", raw: RawMeasurement{}, expectedTemp: -4500, expectedHum: 0},
		{name: "all ones", raw: RawMeasurement{Temperature: 0xFFFF, Humidity: 0xFFFF}, expectedTemp: 13000, expectedHum: 10000},
		{name: "worked example", raw: RawMeasurement{Temperature: 0x648A, Humidity: 0xA09D}, expectedTemp: 2372, expectedHum: 6274},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedTemp, tt.raw.TemperatureCentiCelsius())
			assert.Equal(t, tt.expectedHum, tt.raw.HumidityCentiPercent())
		})
	}
}

func TestTemperatureUnit_String(t *testing.T) {
	assert.Equal(t, "°C", Celsius.String())
	assert.Equal(t, "°F", Fahrenheit.String())
}
