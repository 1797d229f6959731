package booking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is applied by the payload builder when a variant
// carries no parseable duration.
const DefaultDurationMinutes = 120

// Plain numbers below this are hours ("4" on a cleaning variant), at or above
// it minutes ("120" on the same catalog). Catalog data predates structured
// durations, so the cutoff has to stay.
const plainNumberHourCutoff = 10

var (
	durationRangeRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(hours?|mins?|minutes?|h|m)\b`)
	durationSingleRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(hours?|mins?|minutes?|h|m)\b`)
)

// ParseDuration normalizes a raw catalog duration into minutes. Values arrive
// either JSON-decoded (float64 or string) or as a TEXT column, hence the any.
// A numeric value is taken as hours. Strings accept ranges ("4-10 hours"),
// single values ("120 minutes", "2h") and bare numbers. ok is false when the
// value cannot be interpreted; it never panics.
func ParseDuration(raw any) (minutes int, ok bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int:
		if v <= 0 {
			return 0, false
		}
		return v * 60, true
	case float64:
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(math.Round(v * 60)), true
	case string:
		return parseDurationString(v)
	default:
		return 0, false
	}
}

func parseDurationString(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	if m := durationRangeRe.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return minutesFromValue((lo+hi)/2, m[3]), true
	}

	if m := durationSingleRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return minutesFromValue(v, m[2]), true
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
		if v < plainNumberHourCutoff {
			return int(math.Round(v * 60)), true
		}
		return int(math.Round(v)), true
	}

	return 0, false
}

// minutesFromValue converts a value with an explicit unit. Units starting
// with "h" are hours, everything else minutes.
func minutesFromValue(v float64, unit string) int {
	if strings.HasPrefix(unit, "h") {
		return int(math.Round(v * 60))
	}
	return int(math.Round(v))
}
