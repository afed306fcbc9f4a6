package battery

import (
	"regexp"

	"github.com/shiptools/shiptools/pkg/safeconv"
)

// ioregArgs queries the smart battery service.
var ioregArgs = []string{"-lrn", "AppleSmartBattery"}

// ioreg exposes plist-style key/value lines; one pattern per metric.
var (
	ioregCurrentCapacity   = regexp.MustCompile(`"CurrentCapacity" = (\d+)`)
	ioregMaxCapacity       = regexp.MustCompile(`"MaxCapacity" = (\d+)`)
	ioregDesignCapacity    = regexp.MustCompile(`"DesignCapacity" = (\d+)`)
	ioregCycleCount        = regexp.MustCompile(`"CycleCount" = (\d+)`)
	ioregTemperature       = regexp.MustCompile(`"Temperature" = (\d+)`)
	ioregVoltage           = regexp.MustCompile(`"Voltage" = (\d+)`)
	ioregAmperage          = regexp.MustCompile(`"Amperage" = (-?\d+)`)
	ioregIsCharging        = regexp.MustCompile(`"IsCharging" = (\w+)`)
	ioregExternalConnected = regexp.MustCompile(`"ExternalConnected" = (\w+)`)
	ioregFullyCharged      = regexp.MustCompile(`"FullyCharged" = (\w+)`)
	ioregTimeRemaining     = regexp.MustCompile(`"TimeRemaining" = (-?\d+)`)
	ioregSerial            = regexp.MustCompile(`"Serial" = "([A-Za-z0-9]*)"`)
	ioregAdapterName       = regexp.MustCompile(`"Name" = "([A-Za-z0-9 -]*)"`)
	ioregAdapterWatts      = regexp.MustCompile(`"Watts" = (\d+)`)
)

// ParseIoreg extracts a battery reading from ioreg output. Missing keys
// leave the zero value in place.
func ParseIoreg(output string) *Reading {
	reading := &Reading{
		CurrentCapacity:   intField(ioregCurrentCapacity, output, 0),
		MaxCapacity:       intField(ioregMaxCapacity, output, 0),
		DesignCapacity:    intField(ioregDesignCapacity, output, 0),
		CycleCount:        intField(ioregCycleCount, output, 0),
		TemperatureRaw:    floatField(ioregTemperature, output),
		VoltageMV:         floatField(ioregVoltage, output),
		TimeRemainingMin:  int64(intField(ioregTimeRemaining, output, 0)),
		IsCharging:        boolField(ioregIsCharging, output),
		ExternalConnected: boolField(ioregExternalConnected, output),
		FullyCharged:      boolField(ioregFullyCharged, output),
		Serial:            stringField(ioregSerial, output),
		AdapterName:       stringField(ioregAdapterName, output),
		AdapterWatts:      intField(ioregAdapterWatts, output, 0),
	}

	// Amperage surfaces as an unsigned 64-bit value on some controllers
	// when the battery is discharging.
	if m := ioregAmperage.FindStringSubmatch(output); m != nil {
		if v, err := safeconv.ParseSigned64(m[1]); err == nil {
			reading.AmperageMA = v
		}
	}

	return reading
}

func intField(pattern *regexp.Regexp, output string, def int) int {
	m := pattern.FindStringSubmatch(output)
	if m == nil {
		return def
	}

	return safeconv.ParseInt(m[1], def)
}

func floatField(pattern *regexp.Regexp, output string) float64 {
	m := pattern.FindStringSubmatch(output)
	if m == nil {
		return 0
	}

	return safeconv.ParseFloat(m[1], 0)
}

func boolField(pattern *regexp.Regexp, output string) bool {
	m := pattern.FindStringSubmatch(output)

	return m != nil && m[1] == "Yes"
}

func stringField(pattern *regexp.Regexp, output string) string {
	m := pattern.FindStringSubmatch(output)
	if m == nil {
		return ""
	}

	return m[1]
}
