// Package format provides display formatting for counts and publish dates,
// shared by the API responses and the PDF report.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Compact renders a count in short form: 950, 1.2K, 3.4M, 1.1B.
func Compact(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return trimTrailingZero(float64(n)/1_000_000_000) + "B"
	case n >= 1_000_000:
		return trimTrailingZero(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimTrailingZero(float64(n)/1_000) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// CountOrNA formats a wire-format statistics count for report display:
// "N/A" for missing/zero values, compact form for 10000 and above,
// comma-grouped otherwise.
func CountOrNA(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return "N/A"
	}
	if n >= 10_000 {
		return Compact(n)
	}
	return group(n)
}

// RelativeDate renders a publish time relative to now: "3 days ago",
// "2 weeks ago", "5 months ago", or an absolute date past one year.
func RelativeDate(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	if days < 1 {
		days = 1
	}
	switch {
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func trimTrailingZero(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
