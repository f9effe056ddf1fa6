package console

import (
	"strconv"
	"strings"
	"time"
)

// formatAmount renders whole rupees with thousands separators, e.g. ₹12,995.
func formatAmount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "₹" + b.String()
}

// formatAverage shows "—" when there is no average to report.
func formatAverage(avg *int) string {
	if avg == nil {
		return "—"
	}
	return formatAmount(*avg)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

// truncate shortens s to width runes, appending "…" if truncated.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
