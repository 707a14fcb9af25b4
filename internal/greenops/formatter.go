package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats numbers with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with exactly precision decimals and thousand
// separators: FormatFloat(1234.567, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	return printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision)))
}

// FormatCurrency formats an amount as "<ISO code> <amount>" with two decimals.
func FormatCurrency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return unit.String() + " " + FormatFloat(amount, 2), nil
}

// FormatKg formats a mass in kilograms, switching to tonnes from 1,000 kg.
func FormatKg(kg float64, precision int) string {
	if math.Abs(kg) >= TonsToKg {
		return FormatFloat(kg/TonsToKg, precision) + " t"
	}
	return FormatFloat(kg, precision) + " kg"
}

// FormatLarge formats large numbers as "~X.X million" or "~X.X billion" and
// everything below a million as a comma-separated integer.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatPercent formats a percentage with one decimal: 12.345 -> "12.3%".
func FormatPercent(pct float64) string {
	return FormatFloat(pct, 1) + "%"
}
