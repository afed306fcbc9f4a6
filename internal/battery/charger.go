package battery

import (
	"regexp"
	"strings"

	"github.com/shiptools/shiptools/pkg/safeconv"
)

// systemProfilerArgs queries the power data type.
var systemProfilerArgs = []string{"SPPowerDataType"}

var (
	chargerSection  = "AC Charger Information:"
	chargerWattage  = regexp.MustCompile(`Wattage \(W\): (\d+)`)
	chargerNameExpr = regexp.MustCompile(`AC Charger Information:[\s\S]*?Name: (.+)`)
	chargerConnExpr = regexp.MustCompile(`Connected: (\w+)`)
)

// Charger holds AC adapter details reported by system_profiler.
type Charger struct {
	Name      string
	Wattage   int
	Connected bool
}

// ParseCharger extracts AC charger details from system_profiler output.
// Returns the zero value when no charger section is present.
func ParseCharger(output string) Charger {
	var charger Charger

	if !strings.Contains(output, chargerSection) {
		return charger
	}

	if m := chargerWattage.FindStringSubmatch(output); m != nil {
		charger.Wattage = safeconv.ParseInt(m[1], 0)
	}

	if m := chargerNameExpr.FindStringSubmatch(output); m != nil {
		charger.Name = strings.TrimSpace(m[1])
	}

	if m := chargerConnExpr.FindStringSubmatch(output); m != nil {
		charger.Connected = m[1] == "Yes"
	}

	return charger
}
