package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/battery"
	"github.com/shiptools/shiptools/internal/ios"
	"github.com/shiptools/shiptools/internal/render"
)

func testSnapshot() *battery.Snapshot {
	return &battery.Snapshot{
		Reading: &battery.Reading{
			CurrentCapacity:   4830,
			MaxCapacity:       5678,
			DesignCapacity:    6075,
			CycleCount:        312,
			TemperatureRaw:    3042,
			VoltageMV:         12456,
			AmperageMA:        -590,
			TimeRemainingMin:  185,
			ExternalConnected: true,
			Serial:            "F5D123ABC456",
			AdapterName:       "96W USB-C Power Adapter",
			AdapterWatts:      96,
		},
		Charger: battery.Charger{
			Name:      "96W USB-C Power Adapter",
			Wattage:   96,
			Connected: true,
		},
		UpdatedAt: time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC),
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf strings.Builder

	renderer := render.New(&buf, true)
	require.NoError(t, renderer.JSON(testSnapshot()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))

	assert.InDelta(t, 85.1, decoded["percentage"], 0.001)
	assert.InDelta(t, 93.5, decoded["health"], 0.001)
	assert.Equal(t, "Not Charging", decoded["status"])
	assert.Equal(t, "🔌", decoded["icon"])
	assert.InDelta(t, float64(312), decoded["cycles"], 0.001)
	assert.InDelta(t, 30.42, decoded["temperature_celsius"], 0.001)
	assert.InDelta(t, float64(-590), decoded["amperage"], 0.001)
	assert.Equal(t, "3h 5m", decoded["time_remaining"])
	assert.Equal(t, "96W USB-C Power Adapter", decoded["charger_name"])
	assert.Equal(t, false, decoded["is_charging"])
	assert.Equal(t, "2026-08-30T14:30:05Z", decoded["updated_at"])
}

func TestRenderer_JSONMatchesSchema(t *testing.T) {
	payload := render.BuildPayload(testSnapshot())
	require.NoError(t, render.ValidatePayload(payload))
}

func TestValidatePayload_RejectsBadStatus(t *testing.T) {
	payload := render.BuildPayload(testSnapshot())
	payload.Status = "Exploding"

	err := render.ValidatePayload(payload)
	require.ErrorIs(t, err, render.ErrSchemaViolation)
}

func TestSchema_IsValidJSON(t *testing.T) {
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(render.Schema()), &decoded))
	assert.Equal(t, "object", decoded["type"])
}

func TestRenderer_YAML(t *testing.T) {
	var buf strings.Builder

	renderer := render.New(&buf, true)
	require.NoError(t, renderer.YAML(testSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "percentage: 85.1")
	assert.Contains(t, out, "status: Not Charging")
	assert.Contains(t, out, "cycles: 312")
}

func TestRenderer_Simple(t *testing.T) {
	var buf strings.Builder

	renderer := render.New(&buf, true)
	renderer.Simple(testSnapshot())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "85.1%", lines[0])
	assert.Equal(t, "Not Charging", lines[1])
	assert.Equal(t, "93.5%", lines[2])
	assert.Equal(t, "312", lines[3])
	assert.Equal(t, "30.4°C", lines[4])
	assert.Equal(t, "12.46V", lines[5])
	assert.Equal(t, "3h 5m", lines[6])
	assert.Equal(t, "🔌", lines[7])
}

func TestRenderer_Table(t *testing.T) {
	var buf strings.Builder

	renderer := render.New(&buf, true)
	renderer.Table(testSnapshot())

	out := buf.String()
	assert.Contains(t, out, "BATTERY STATUS")
	assert.Contains(t, out, "Battery Level")
	assert.Contains(t, out, "Battery Health")
	assert.Contains(t, out, "Power Details")
	assert.Contains(t, out, "Time Remaining")
	assert.Contains(t, out, "Power Adapter")
	assert.Contains(t, out, "96W USB-C Power Adapter")
	assert.Contains(t, out, "F5D123ABC456")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")
}

func TestRenderer_TableClampsOverfullCharge(t *testing.T) {
	var buf strings.Builder

	snapshot := testSnapshot()
	snapshot.Reading.CurrentCapacity = snapshot.Reading.MaxCapacity * 2

	renderer := render.New(&buf, true)
	renderer.Table(snapshot)

	assert.Contains(t, buf.String(), strings.Repeat("█", 44))
	assert.NotContains(t, buf.String(), strings.Repeat("█", 45))
}

func TestRenderer_TableSkipsTimeWhenUnknown(t *testing.T) {
	var buf strings.Builder

	snapshot := testSnapshot()
	snapshot.Reading.TimeRemainingMin = 65535

	renderer := render.New(&buf, true)
	renderer.Table(snapshot)

	assert.NotContains(t, buf.String(), "Time Remaining")
}

func TestRenderer_TableIOS(t *testing.T) {
	var buf strings.Builder

	info := ios.ParseInfo("BatteryCurrentCapacity: 73\nBatteryIsCharging: true\nBatteryTimeToFull: 64\n")
	info.DeviceName = "Test iPhone"
	info.UDID = "00008110-AAAA"

	renderer := render.New(&buf, true)
	renderer.TableIOS(info)

	out := buf.String()
	assert.Contains(t, out, "iOS BATTERY")
	assert.Contains(t, out, "Test iPhone")
	assert.Contains(t, out, "73%")
	assert.Contains(t, out, "charging")
	assert.Contains(t, out, "1:04 until full")
}

func TestRenderer_Raw(t *testing.T) {
	var buf strings.Builder

	renderer := render.New(&buf, true)
	renderer.Raw("Now drawing from 'AC Power'")

	assert.Contains(t, buf.String(), "Now drawing from 'AC Power'")

	buf.Reset()
	renderer.Raw("")
	assert.Contains(t, buf.String(), "Raw output not available.")
}
