package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var sizeUnits = []struct {
	suffix string
	bytes  int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize reads sizes like "10MB", "512kb" or "8B" as bytes (binary
// multiples). Empty, malformed and negative input yields fallback.
func ParseSize(s string, fallback int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	mult := int64(1)
	for _, u := range sizeUnits {
		if n, ok := strings.CutSuffix(s, u.suffix); ok {
			s, mult = strings.TrimSpace(n), u.bytes
			break
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n * mult
}

var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseISODuration parses an ISO-8601 duration such as "PT1M3.5S" or
// "P1DT2H" into seconds. Year and month designators are rejected.
func ParseISODuration(s string) (float64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", s)
	}
	units := []float64{86400, 3600, 60, 1}
	var total float64
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", s, err)
		}
		total += v * unit
	}
	return total, nil
}

// TicksToSeconds converts 100-nanosecond ticks to seconds.
func TicksToSeconds(ticks int64) float64 {
	return float64(ticks) / 1e7
}

// MillisToSeconds converts milliseconds to seconds.
func MillisToSeconds(ms float64) float64 {
	return ms / 1000
}
