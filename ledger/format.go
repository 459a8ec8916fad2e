package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DISPLAY FORMATTING - Amounts and dates as the client renders them
// =============================================================================

// formatMoney renders d with thousands grouping and at least two fraction
// digits ("1240.5" -> "1,240.50"). Extra precision is kept, not rounded.
func formatMoney(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().String()

	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) < 2 {
		frac += "0"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// formatDate renders the reward-history date style: "Feb 18, 2026".
func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatTime renders the transaction time style: "02:15 PM".
func formatTime(t time.Time) string {
	return t.Format("03:04 PM")
}

// formatDateTime renders the transaction date style:
// "Feb 18, 2026 • 02:15 PM".
func formatDateTime(t time.Time) string {
	return formatDate(t) + " • " + formatTime(t)
}
