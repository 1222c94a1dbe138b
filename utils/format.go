package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatPrice renders an integer amount with es-CO digit grouping
// (15000 → "15.000"). Display only; the stored value stays an integer.
func FormatPrice(n int) string {
	return pricePrinter.Sprint(number.Decimal(n))
}
