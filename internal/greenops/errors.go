package greenops

type constError string

func (e constError) Error() string { return string(e) }

// Equivalency and formatting failures. Callers match them with errors.Is.
var (
	// ErrInvalidUnit is returned for a carbon unit other than g, kg, t or lb
	// (optionally suffixed CO2e).
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned when an avoided or emitted mass is below zero.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned when the mass or its kilogram
	// conversion is NaN or infinite.
	ErrCalculationOverflow = constError("calculation overflow")

	// ErrInvalidCurrency is returned by FormatCurrency for a code outside ISO 4217.
	ErrInvalidCurrency = constError("invalid currency code")
)
