// Package render formats battery snapshots for the terminal: a sectioned
// table view, a script-friendly simple view, and JSON/YAML machine output
// validated against an embedded schema.
package render

import (
	"io"

	"github.com/fatih/color"
)

// Charge level color thresholds, in percent.
const (
	chargeLowThreshold  = 20
	chargeMidThreshold  = 40
	chargeHighThreshold = 60
)

// Health color thresholds, in percent.
const (
	healthLowThreshold  = 60
	healthHighThreshold = 80
)

// Renderer writes battery reports to Out.
type Renderer struct {
	Out     io.Writer
	NoColor bool
}

// New builds a renderer. NoColor also disables colors globally for the
// fatih/color package.
func New(out io.Writer, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}

	return &Renderer{Out: out, NoColor: noColor}
}

// chargeColor picks the color for a charge percentage.
func chargeColor(percentage float64) *color.Color {
	switch {
	case percentage <= chargeLowThreshold:
		return color.New(color.FgRed)
	case percentage <= chargeMidThreshold:
		return color.New(color.FgHiRed)
	case percentage <= chargeHighThreshold:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// healthColor picks the color for a health percentage.
func healthColor(health float64) *color.Color {
	switch {
	case health <= healthLowThreshold:
		return color.New(color.FgRed)
	case health <= healthHighThreshold:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
