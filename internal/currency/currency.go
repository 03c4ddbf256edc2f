package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Converter turns base-currency amounts into the display currency. The core
// stores and filters in base currency; conversion is strictly a presentation
// concern applied at the boundary.
type Converter struct {
	code    string
	rate    float64
	printer *message.Printer
}

const (
	DefaultCode = "NPR"
	DefaultRate = 133
)

// New builds a converter for the given display currency code and rate.
// Non-positive rates fall back to the default.
func New(code string, rate float64) *Converter {
	if code == "" {
		code = DefaultCode
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Converter{
		code:    code,
		rate:    rate,
		printer: message.NewPrinter(language.English),
	}
}

func (c *Converter) Code() string { return c.code }

func (c *Converter) Rate() float64 { return c.rate }

// Convert rounds base * rate to the nearest whole display-currency unit.
func (c *Converter) Convert(base float64) int64 {
	return int64(math.Round(base * c.rate))
}

// Format renders a base-currency amount as a display string with digit
// grouping, e.g. "NPR 12,345".
func (c *Converter) Format(base float64) string {
	return c.printer.Sprintf("%s %d", c.code, c.Convert(base))
}
