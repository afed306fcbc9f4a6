package render

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shiptools/shiptools/internal/battery"
)

// Payload is the machine-readable battery report. Field order and names are
// part of the output contract; scripts parse this.
type Payload struct {
	Percentage            float64 `json:"percentage" yaml:"percentage"`
	Health                float64 `json:"health" yaml:"health"`
	Status                string  `json:"status" yaml:"status"`
	Icon                  string  `json:"icon" yaml:"icon"`
	Cycles                int     `json:"cycles" yaml:"cycles"`
	TemperatureCelsius    float64 `json:"temperature_celsius" yaml:"temperature_celsius"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit" yaml:"temperature_fahrenheit"`
	Voltage               float64 `json:"voltage" yaml:"voltage"`
	Amperage              int64   `json:"amperage" yaml:"amperage"`
	TimeRemaining         string  `json:"time_remaining" yaml:"time_remaining"`
	Serial                string  `json:"serial" yaml:"serial"`
	AdapterName           string  `json:"adapter_name" yaml:"adapter_name"`
	AdapterWatts          int     `json:"adapter_watts" yaml:"adapter_watts"`
	ChargerName           string  `json:"charger_name" yaml:"charger_name"`
	ChargerWattage        int     `json:"charger_wattage" yaml:"charger_wattage"`
	IsCharging            bool    `json:"is_charging" yaml:"is_charging"`
	ExternalConnected     bool    `json:"external_connected" yaml:"external_connected"`
	FullyCharged          bool    `json:"fully_charged" yaml:"fully_charged"`
	UpdatedAt             string  `json:"updated_at" yaml:"updated_at"`
}

// BuildPayload assembles the machine-readable report from a snapshot.
func BuildPayload(snapshot *battery.Snapshot) Payload {
	reading := snapshot.Reading
	icon, statusText := reading.Status()

	return Payload{
		Percentage:            reading.Percentage(),
		Health:                reading.Health(),
		Status:                statusText,
		Icon:                  icon,
		Cycles:                reading.CycleCount,
		TemperatureCelsius:    reading.Celsius(),
		TemperatureFahrenheit: reading.Fahrenheit(),
		Voltage:               reading.Volts(),
		Amperage:              reading.AmperageMA,
		TimeRemaining:         reading.TimeRemaining(),
		Serial:                reading.Serial,
		AdapterName:           reading.AdapterName,
		AdapterWatts:          reading.AdapterWatts,
		ChargerName:           snapshot.Charger.Name,
		ChargerWattage:        snapshot.Charger.Wattage,
		IsCharging:            reading.IsCharging,
		ExternalConnected:     reading.ExternalConnected,
		FullyCharged:          reading.FullyCharged,
		UpdatedAt:             snapshot.UpdatedAt.Format(time.RFC3339),
	}
}

// JSON writes the report as indented JSON after validating it against the
// embedded schema.
func (r *Renderer) JSON(snapshot *battery.Snapshot) error {
	payload := BuildPayload(snapshot)

	err := ValidatePayload(payload)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	fmt.Fprintf(r.Out, "%s\n", encoded)

	return nil
}

// YAML writes the report as YAML.
func (r *Renderer) YAML(snapshot *battery.Snapshot) error {
	payload := BuildPayload(snapshot)

	err := ValidatePayload(payload)
	if err != nil {
		return err
	}

	encoded, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	fmt.Fprintf(r.Out, "%s", encoded)

	return nil
}
