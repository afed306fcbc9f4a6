package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shiptools/shiptools/internal/battery"
	"github.com/shiptools/shiptools/internal/ios"
	"github.com/shiptools/shiptools/pkg/mathutil"
	"github.com/shiptools/shiptools/pkg/textutil"
)

// barWidth is the progress bar width in the table view.
const barWidth = 44

// Table writes the full sectioned battery report.
func (r *Renderer) Table(snapshot *battery.Snapshot) {
	reading := snapshot.Reading
	percentage := reading.Percentage()
	health := reading.Health()
	icon, statusText := reading.Status()
	timeText := reading.TimeRemaining()

	title := color.New(color.FgMagenta).Sprint("🔋 BATTERY STATUS 🔋")
	fmt.Fprintf(r.Out, "\n%s\n\n", textutil.PadCenter(title, barWidth))

	levelTbl := r.newSection("Battery Level")
	levelTbl.AppendRow(table.Row{"Status", fmt.Sprintf("%s %s %.0f%%",
		icon, chargeColor(percentage).Sprint(statusText), percentage)})
	levelTbl.AppendRow(table.Row{"Charge", chargeColor(percentage).Sprint(progressBar(percentage))})
	fmt.Fprintf(r.Out, "%s\n\n", levelTbl.Render())

	healthTbl := r.newSection("Battery Health")
	healthTbl.AppendRow(table.Row{"Health", fmt.Sprintf("%s (%d / %d mAh)",
		healthColor(health).Sprintf("%.0f%%", health),
		reading.MaxCapacity, reading.DesignCapacity)})
	healthTbl.AppendRow(table.Row{"Cycles", reading.CycleCount})
	fmt.Fprintf(r.Out, "%s\n\n", healthTbl.Render())

	powerTbl := r.newSection("Power Details")
	powerTbl.AppendRow(table.Row{"Voltage", fmt.Sprintf("%.2fV", reading.Volts())})
	powerTbl.AppendRow(table.Row{"Current", reading.CurrentDraw()})
	powerTbl.AppendRow(table.Row{"Temp", fmt.Sprintf("%.1f°C / %.1f°F",
		reading.Celsius(), reading.Fahrenheit())})
	fmt.Fprintf(r.Out, "%s\n\n", powerTbl.Render())

	if timeText != "Calculating..." && timeText != "Almost full" {
		timeTbl := r.newSection("Time Remaining")
		timeTbl.AppendRow(table.Row{"Estimate", color.New(color.FgGreen).Sprint(timeText)})
		fmt.Fprintf(r.Out, "%s\n\n", timeTbl.Render())
	}

	if reading.ExternalConnected && snapshot.ChargerName() != "" {
		adapterTbl := r.newSection("Power Adapter")
		adapterTbl.AppendRow(table.Row{"Type", textutil.Truncate(snapshot.ChargerName(), barWidth)})

		if watts := snapshot.ChargerWattage(); watts > 0 {
			adapterTbl.AppendRow(table.Row{"Power", fmt.Sprintf("%dW", watts)})
		}

		fmt.Fprintf(r.Out, "%s\n\n", adapterTbl.Render())
	}

	systemTbl := r.newSection("System Info")
	systemTbl.AppendRow(table.Row{"Serial", reading.Serial})
	systemTbl.AppendRow(table.Row{"Updated", snapshot.UpdatedAt.Format("15:04:05")})
	fmt.Fprintf(r.Out, "%s\n\n", systemTbl.Render())
}

// TableIOS writes the battery report for an iOS device.
func (r *Renderer) TableIOS(info *ios.Info) {
	title := color.New(color.FgMagenta).Sprint("🔋 iOS BATTERY 🔋")
	fmt.Fprintf(r.Out, "\n%s\n\n", textutil.PadCenter(title, barWidth))

	tbl := r.newSection("Device")

	if info.DeviceName != "" {
		tbl.AppendRow(table.Row{"Name", info.DeviceName})
	}

	if info.UDID != "" {
		tbl.AppendRow(table.Row{"UDID", info.UDID})
	}

	if info.HasPercent {
		pct := float64(info.Percent)
		tbl.AppendRow(table.Row{"Charge", chargeColor(pct).Sprintf("%d%%", info.Percent)})
		tbl.AppendRow(table.Row{"Level", chargeColor(pct).Sprint(progressBar(pct))})
	}

	tbl.AppendRow(table.Row{"State", info.Status()})

	if t := info.TimeRemaining(); t != "" {
		tbl.AppendRow(table.Row{"Time", t})
	}

	if info.CycleCount > 0 {
		tbl.AppendRow(table.Row{"Cycles", info.CycleCount})
	}

	fmt.Fprintf(r.Out, "%s\n\n", tbl.Render())
}

// Raw writes unparsed collector output for debugging.
func (r *Renderer) Raw(raw string) {
	if raw == "" {
		raw = "Raw output not available."
	}

	fmt.Fprintf(r.Out, "Raw output\n%s\n%s\n", strings.Repeat("─", barWidth), raw)
}

func (r *Renderer) newSection(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateHeader = false
	tbl.SetTitle(title)

	return tbl
}

func progressBar(percentage float64) string {
	filled := int(mathutil.ClampPercent(percentage) * barWidth / 100)

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
