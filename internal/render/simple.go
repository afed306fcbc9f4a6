package render

import (
	"fmt"

	"github.com/shiptools/shiptools/internal/battery"
	"github.com/shiptools/shiptools/internal/ios"
)

// Simple writes the script-friendly eight-line report: percentage, status,
// health, cycles, temperature, voltage, time remaining, and icon.
func (r *Renderer) Simple(snapshot *battery.Snapshot) {
	reading := snapshot.Reading
	icon, statusText := reading.Status()

	fmt.Fprintf(r.Out, "%.1f%%\n", reading.Percentage())
	fmt.Fprintf(r.Out, "%s\n", statusText)
	fmt.Fprintf(r.Out, "%.1f%%\n", reading.Health())
	fmt.Fprintf(r.Out, "%d\n", reading.CycleCount)
	fmt.Fprintf(r.Out, "%.1f°C\n", reading.Celsius())
	fmt.Fprintf(r.Out, "%.2fV\n", reading.Volts())
	fmt.Fprintf(r.Out, "%s\n", reading.TimeRemaining())
	fmt.Fprintf(r.Out, "%s\n", icon)
}

// SimpleIOS writes the script-friendly report for an iOS device.
func (r *Renderer) SimpleIOS(info *ios.Info) {
	if info.HasPercent {
		fmt.Fprintf(r.Out, "%d%%\n", info.Percent)
	} else {
		fmt.Fprintln(r.Out, "Unknown")
	}

	fmt.Fprintf(r.Out, "%s\n", info.Status())

	if t := info.TimeRemaining(); t != "" {
		fmt.Fprintf(r.Out, "%s\n", t)
	}
}
