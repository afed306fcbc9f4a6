package battery

import (
	"fmt"

	"github.com/shiptools/shiptools/pkg/mathutil"
	"github.com/shiptools/shiptools/pkg/units"
)

// timeRemainingUnknown are the TimeRemaining sentinel values the smart
// battery controller reports while it is still estimating.
var timeRemainingUnknown = map[int64]bool{65535: true, -1: true, 0: true}

// Status icons.
const (
	IconCharging    = "⚡"
	IconPlugged     = "🔌"
	IconDischarging = "🔋"
)

// Reading holds the raw smart battery state parsed from ioreg.
type Reading struct {
	CurrentCapacity   int
	MaxCapacity       int
	DesignCapacity    int
	CycleCount        int
	TemperatureRaw    float64
	VoltageMV         float64
	AmperageMA        int64
	TimeRemainingMin  int64
	IsCharging        bool
	ExternalConnected bool
	FullyCharged      bool
	Serial            string
	AdapterName       string
	AdapterWatts      int
}

// Percentage returns the charge level as a percentage of the current
// maximum capacity, rounded to one decimal.
func (r *Reading) Percentage() float64 {
	return mathutil.Ratio(r.CurrentCapacity, r.MaxCapacity)
}

// Health returns the maximum capacity as a percentage of the design
// capacity, rounded to one decimal.
func (r *Reading) Health() float64 {
	return mathutil.Ratio(r.MaxCapacity, r.DesignCapacity)
}

// Celsius returns the battery temperature in degrees Celsius.
func (r *Reading) Celsius() float64 {
	return units.Celsius(r.TemperatureRaw)
}

// Fahrenheit returns the battery temperature in degrees Fahrenheit.
func (r *Reading) Fahrenheit() float64 {
	return units.Fahrenheit(r.Celsius())
}

// Volts returns the battery voltage in volts.
func (r *Reading) Volts() float64 {
	return units.Volts(r.VoltageMV)
}

// Status returns the status icon and text for the charge state.
func (r *Reading) Status() (icon, text string) {
	switch {
	case r.IsCharging:
		return IconCharging, "Charging"
	case r.ExternalConnected && r.FullyCharged:
		return IconPlugged, "Fully Charged"
	case r.ExternalConnected:
		return IconPlugged, "Not Charging"
	default:
		return IconDischarging, "Discharging"
	}
}

// TimeRemaining formats the controller's time estimate. Sentinel values
// render as "Almost full" while charging and "Calculating..." otherwise.
func (r *Reading) TimeRemaining() string {
	if timeRemainingUnknown[r.TimeRemainingMin] {
		if r.IsCharging {
			return "Almost full"
		}

		return "Calculating..."
	}

	if r.TimeRemainingMin > 0 {
		hours := r.TimeRemainingMin / units.MinutesPerHour
		minutes := r.TimeRemainingMin % units.MinutesPerHour

		return fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return "Almost full"
}

// CurrentDraw describes the instantaneous current flow.
func (r *Reading) CurrentDraw() string {
	switch {
	case r.AmperageMA == 0:
		return "0mA (idle)"
	case r.AmperageMA > 0:
		return fmt.Sprintf("+%dmA (charging)", r.AmperageMA)
	default:
		return fmt.Sprintf("%dmA (drawing)", -r.AmperageMA)
	}
}
