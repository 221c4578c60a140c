package dashboard

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tone mirrors the dashboard's positive/negative styling classes.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

// printer renders locale-grouped numbers ("1,000,000").
var printer = message.NewPrinter(language.English)

// toneOf classifies a change value. Zero counts as positive, matching the
// dashboard's >= 0 check.
func toneOf(v float64) Tone {
	if v < 0 {
		return ToneNegative
	}
	return TonePositive
}

// formatPrice renders a tick price: "$50000". Tick prices are shown raw,
// without digit grouping.
func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// formatChange renders a change value as-is: "-1.5".
func formatChange(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatVolume renders a grouped integer: "1,000,000".
func formatVolume(v float64) string {
	return printer.Sprintf("%d", int64(v))
}

// formatAmount renders a grouped currency amount: "$10,000".
func formatAmount(v float64) string {
	return "$" + printer.Sprintf("%v", number.Decimal(v))
}

// formatSignedAmount renders a signed grouped amount with the sign outside
// the currency symbol: "-$250", "+$250".
func formatSignedAmount(v float64) string {
	if v < 0 {
		return "-$" + printer.Sprintf("%v", number.Decimal(-v))
	}
	return "+$" + printer.Sprintf("%v", number.Decimal(v))
}

// formatPercent renders a percent value: "-2.5%".
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
