package ios

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shiptools/shiptools/pkg/units"
)

// Info is the battery view of one iOS device.
type Info struct {
	DeviceName string
	UDID       string

	Percent           int
	HasPercent        bool
	IsCharging        *bool
	FullyCharged      *bool
	ExternalConnected *bool
	CycleCount        int
	TimeToFullMin     int
	TimeToEmptyMin    int

	// Raw holds every parsed key for the raw output mode.
	Raw map[string]string
	// RawText is the unparsed ideviceinfo output.
	RawText string
}

// Key fallback orders. Device models and iOS versions disagree on naming.
var (
	percentKeys  = []string{"BatteryCurrentCapacity", "BatteryPercent", "BatteryLevel", "CurrentCapacityPercent"}
	chargingKeys = []string{"BatteryIsCharging", "IsCharging", "Charging"}
	fullKeys     = []string{"BatteryIsFullyCharged", "FullyCharged"}
	externalKeys = []string{"ExternalConnected", "ExternalPowerConnected"}
	cycleKeys    = []string{"CycleCount", "BatteryCycleCount"}
	toFullKeys   = []string{"BatteryTimeToFull", "TimeToFull"}
	toEmptyKeys  = []string{"BatteryTimeToEmpty", "TimeToEmpty"}
)

// ParseInfo parses ideviceinfo "key: value" output.
func ParseInfo(output string) *Info {
	raw := map[string]string{}

	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		raw[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	info := &Info{Raw: raw, TimeToFullMin: -1, TimeToEmptyMin: -1}

	if v, ok := firstInt(raw, percentKeys); ok {
		info.Percent = v
		info.HasPercent = true
	}

	info.IsCharging = firstBool(raw, chargingKeys)
	info.FullyCharged = firstBool(raw, fullKeys)
	info.ExternalConnected = firstBool(raw, externalKeys)

	if v, ok := firstInt(raw, cycleKeys); ok {
		info.CycleCount = v
	}

	if v, ok := firstInt(raw, toFullKeys); ok {
		info.TimeToFullMin = v
	}

	if v, ok := firstInt(raw, toEmptyKeys); ok {
		info.TimeToEmptyMin = v
	}

	return info
}

// Status derives the charge state text from whichever flags the device
// reported.
func (i *Info) Status() string {
	switch {
	case boolValue(i.FullyCharged):
		return "fully charged"
	case boolValue(i.IsCharging):
		return "charging"
	case i.IsCharging != nil:
		return "discharging"
	case boolValue(i.ExternalConnected):
		return "connected"
	}

	return "Unknown"
}

// TimeRemaining formats the device's time estimate, e.g. "1:04 until full"
// or "3:20 remaining". Empty when no estimate is available.
func (i *Info) TimeRemaining() string {
	if i.TimeToFullMin >= 0 && boolValue(i.IsCharging) {
		return minutesToClock(i.TimeToFullMin) + " until full"
	}

	if i.TimeToEmptyMin >= 0 {
		return minutesToClock(i.TimeToEmptyMin) + " remaining"
	}

	return ""
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/units.MinutesPerHour, minutes%units.MinutesPerHour)
}

func firstInt(raw map[string]string, keys []string) (int, bool) {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		if v, err := strconv.Atoi(value); err == nil {
			return v, true
		}
	}

	return 0, false
}

func firstBool(raw map[string]string, keys []string) *bool {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		switch strings.ToLower(value) {
		case "true", "yes", "1":
			v := true

			return &v
		case "false", "no", "0":
			v := false

			return &v
		}
	}

	return nil
}

func boolValue(v *bool) bool {
	return v != nil && *v
}
