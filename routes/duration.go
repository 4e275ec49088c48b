package routes

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts a free-form duration such as "2 hours 30 min" into
// whole minutes for comparison.
//
// Parsing is best-effort and never fails. Tokens are read as number/unit
// pairs: a unit containing "hour" adds round(value*60), a unit containing
// "min" adds round(value), any other unit adds nothing. A token that is not a
// number, or a trailing number with no unit, is skipped and scanning resumes
// at the next token. Text with nothing recognisable parses to 0, which callers
// treat as a valid (minimal) duration rather than an error. Totals beyond the
// int range saturate at math.MaxInt or math.MinInt.
func ParseDuration(text string) int {
	parts := strings.Fields(text)
	total := 0.0

	for i := 0; i < len(parts); {
		value, err := strconv.ParseFloat(parts[i], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || i+1 >= len(parts) {
			i++
			continue
		}

		unit := strings.ToLower(parts[i+1])
		switch {
		case strings.Contains(unit, "hour"):
			total += math.Round(value * 60)
		case strings.Contains(unit, "min"):
			total += math.Round(value)
		}
		i += 2
	}

	switch {
	case math.IsNaN(total), total >= math.MaxInt:
		return math.MaxInt
	case total <= math.MinInt:
		return math.MinInt
	}
	return int(total)
}
