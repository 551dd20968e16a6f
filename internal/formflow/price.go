package formflow

import (
	"fmt"
	"math"
	"strings"
)

// FormatPrice renders a monetary amount as the short display string stored
// alongside the numeric value: currency prefix, then the amount scaled to a
// B/M/K suffix at the 1e9/1e6/1e3 thresholds, rounded to one decimal place.
// Below 1e3 the raw integer is shown.
//
//	FormatPrice("AED", 1_500_000) == "AED 1.5M"
//	FormatPrice("AED", 950)       == "AED 950"
func FormatPrice(currency string, amount float64) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = "AED"
	}

	neg := ""
	if amount < 0 {
		neg = "-"
		amount = -amount
	}

	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%s %s%sB", currency, neg, oneDecimal(amount/1e9))
	case amount >= 1e6:
		return fmt.Sprintf("%s %s%sM", currency, neg, oneDecimal(amount/1e6))
	case amount >= 1e3:
		return fmt.Sprintf("%s %s%sK", currency, neg, oneDecimal(amount/1e3))
	default:
		return fmt.Sprintf("%s %s%d", currency, neg, int64(math.Round(amount)))
	}
}

func oneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", math.Round(v*10)/10)
}

// DerivedPrice wires a numeric amount field to its derived display field.
// Currency is read from CurrencyPath when set, else DefaultCurrency applies.
type DerivedPrice struct {
	NumericPath     string
	DisplayPath     string
	CurrencyPath    string
	DefaultCurrency string
}

// apply recomputes the display field from the current numeric value. A
// missing or non-numeric amount clears the display.
func (p DerivedPrice) apply(doc Document) {
	value, ok := doc.Get(p.NumericPath)
	amount, numeric := asNumber(value)
	if !ok || !numeric {
		doc.Set(p.DisplayPath, "")
		return
	}

	currency := p.DefaultCurrency
	if p.CurrencyPath != "" {
		if c, ok := doc.Get(p.CurrencyPath); ok {
			if s, isStr := c.(string); isStr && strings.TrimSpace(s) != "" {
				currency = s
			}
		}
	}
	doc.Set(p.DisplayPath, FormatPrice(currency, amount))
}
