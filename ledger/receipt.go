/*
receipt.go - Fixed-width plain-text receipt rendering

PURPOSE:
  Renders a completed action as a 44-column monospaced receipt, the kind
  the client offers as a downloadable .txt file. Purely cosmetic: the
  receipt is assembled on demand from caller-supplied values and never
  persisted.

LAYOUT:
  ============================================  <- 44 '=' chars
                  CHINABANK                     <- centered
            Consumer Banking Channel
  ============================================

                 Bills Payment

  --------------------------------------------
  Reference No:    CBC-12345678
  Date:            Feb 20, 2026
  Time:            02:15 PM
  --------------------------------------------

  Network                                Globe  <- label left, value right

  --------------------------------------------
  Total                              PHP 50.00
  ============================================

        Thank you for using Chinabank!
       Member: PDIC. Regulated by BSP.

  Centering and padding use floor division of the leftover width. Rows
  keep a minimum one-space gap and are never truncated or wrapped, so an
  overlong label/value pair simply runs past the column width.
*/
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// receiptWidth is the column width of the rendered receipt.
const receiptWidth = 44

// ReceiptRow is one label/value line on a receipt.
type ReceiptRow struct {
	Label string
	Value string
}

// ReceiptData is the ephemeral input for one rendered receipt.
type ReceiptData struct {
	Title string
	RefNo string
	Date  string
	Time  string
	Rows  []ReceiptRow
	Total ReceiptRow
}

// Filename returns the download name for this receipt.
func (d ReceiptData) Filename() string {
	return d.RefNo + "-receipt.txt"
}

// NewReferenceNumber mints a display reference number from the wall
// clock: "CBC-" plus the last eight digits of the epoch milliseconds.
func NewReferenceNumber(t time.Time) string {
	ms := fmt.Sprintf("%d", t.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "CBC-" + ms
}

// FormatReceipt renders data as the fixed-width plain-text document.
func FormatReceipt(data ReceiptData) string {
	divider := strings.Repeat("=", receiptWidth)
	thinDivider := strings.Repeat("-", receiptWidth)

	lines := []string{
		divider,
		center("CHINABANK"),
		center("Consumer Banking Channel"),
		divider,
		"",
		center(data.Title),
		"",
		thinDivider,
		"Reference No:    " + data.RefNo,
		"Date:            " + data.Date,
		"Time:            " + data.Time,
		thinDivider,
		"",
	}

	for _, row := range data.Rows {
		lines = append(lines, padRow(row.Label, row.Value))
	}

	lines = append(lines,
		"",
		thinDivider,
		padRow(data.Total.Label, data.Total.Value),
		divider,
		"",
		center("Thank you for using Chinabank!"),
		center("Member: PDIC. Regulated by BSP."),
		"",
	)

	return strings.Join(lines, "\n")
}

// center left-pads text so it sits centered in the receipt width.
// Leftover width is floor-divided; overlong text is left as-is.
func center(text string) string {
	pad := (receiptWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

// padRow lays out label left and value right, padded to the receipt
// width with a minimum one-space gap. Nothing is truncated.
func padRow(label, value string) string {
	gap := receiptWidth - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}
