// Package units provides unit conversions for raw smart-battery readings.
package units

// Raw reading scale factors.
const (
	// MillivoltsPerVolt converts the ioreg Voltage key (mV) to volts.
	MillivoltsPerVolt = 1000.0
	// CentiDegreesPerCelsius converts the ioreg Temperature key
	// (hundredths of a degree) to Celsius.
	CentiDegreesPerCelsius = 100.0
	// MinutesPerHour splits a minute count into h/m parts.
	MinutesPerHour = 60
)

// Volts converts a millivolt reading to volts.
func Volts(millivolts float64) float64 {
	return millivolts / MillivoltsPerVolt
}

// Celsius converts a centi-degree reading to degrees Celsius.
func Celsius(raw float64) float64 {
	return raw / CentiDegreesPerCelsius
}

// Fahrenheit converts degrees Celsius to degrees Fahrenheit.
func Fahrenheit(celsius float64) float64 {
	return celsius*9.0/5.0 + 32.0
}
