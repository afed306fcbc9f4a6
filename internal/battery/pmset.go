package battery

import (
	"regexp"
	"strings"
)

// pmsetArgs queries the live power status.
var pmsetArgs = []string{"-g", "batt"}

var (
	pmsetSource  = regexp.MustCompile(`Now drawing from '([^']+)'`)
	pmsetPercent = regexp.MustCompile(`(\d+)%`)
	pmsetStatus  = regexp.MustCompile(`\d+%\s*;\s*([^;]+);`)
	pmsetTime    = regexp.MustCompile(`;\s*([^;]*remaining[^;]*)`)
)

// PowerStatus is the live status reported by pmset.
type PowerStatus struct {
	// Source is the active power source, e.g. "AC Power".
	Source string
	// Percent is the charge percentage as reported, empty when absent.
	Percent string
	// Status is the charge state text, e.g. "charging".
	Status string
	// TimeRemaining is the estimate text, e.g. "1:04 remaining".
	TimeRemaining string
	// Raw is the unparsed pmset output.
	Raw string
}

// ParsePmset extracts the live power status from pmset output. The first
// line names the power source and the second carries the battery details.
func ParsePmset(output string) PowerStatus {
	status := PowerStatus{Raw: output}

	lines := strings.Split(output, "\n")
	if len(lines) == 0 {
		return status
	}

	if m := pmsetSource.FindStringSubmatch(lines[0]); m != nil {
		status.Source = m[1]
	}

	if len(lines) < 2 {
		return status
	}

	line := lines[1]

	if m := pmsetPercent.FindStringSubmatch(line); m != nil {
		status.Percent = m[1]
	}

	if m := pmsetStatus.FindStringSubmatch(line); m != nil {
		status.Status = strings.TrimSpace(m[1])
	}

	if m := pmsetTime.FindStringSubmatch(line); m != nil {
		status.TimeRemaining = strings.TrimSpace(m[1])
	}

	return status
}
