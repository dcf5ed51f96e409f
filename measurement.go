package shtc1

// TemperatureUnit selects the unit of the decoded temperature value.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case Fahrenheit:
		return "°F"
	default:
		return "°C"
	}
}

// RawMeasurement holds the unconverted 16-bit sensor codes, after both
// checksum bytes have been validated.
type RawMeasurement struct {
	Temperature uint16
	Humidity    uint16
}

// Measurement holds decoded physical values. Humidity is relative humidity
// in percent; temperature is expressed in Unit.
type Measurement struct {
	Temperature float32
	Humidity    float32
	Unit        TemperatureUnit
}

// Convert applies the datasheet transfer functions:
//
//	T(°C)  = -45 + 175 * raw / 65535
//	RH(%)  = 100 * raw / 65535
//
// Fahrenheit is derived from Celsius as T*9/5 + 32.
func (r RawMeasurement) Convert(unit TemperatureUnit) Measurement {
	temp := -45.0 + 175.0*float32(r.Temperature)/65535.0
	if unit == Fahrenheit {
		temp = temp*9.0/5.0 + 32.0
	}
	return Measurement{
		Temperature: temp,
		Humidity:    100.0 * float32(r.Humidity) / 65535.0,
		Unit:        unit,
	}
}

// TemperatureCentiCelsius returns the temperature in hundredths of a degree
// Celsius using integer arithmetic only (truncating division), for targets
// without floating point support.
func (r RawMeasurement) TemperatureCentiCelsius() int32 {
	return -4500 + (17500*int32(r.Temperature))/65535
}

// HumidityCentiPercent returns the relative humidity in hundredths of a
// percent using integer arithmetic only (truncating division).
func (r RawMeasurement) HumidityCentiPercent() int32 {
	return (10000 * int32(r.Humidity)) / 65535
}
