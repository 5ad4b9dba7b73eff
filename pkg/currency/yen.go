package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All monetary values in the system are whole Japanese Yen stored as int64.
// There are no fractional digits to round or truncate.

var jp = message.NewPrinter(language.Japanese)

// FormatYen renders an amount as yen with digit grouping, e.g. 12800 -> "¥12,800".
func FormatYen(amount int64) string {
	if amount < 0 {
		return "-¥" + jp.Sprintf("%d", -amount)
	}
	return "¥" + jp.Sprintf("%d", amount)
}
