package waste

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// kg and litre variants divide by 1000; tonne and m³ variants pass through.
// Litres assume density 1 kg/L, cubic metres 1 t/m³.
var unitAliases = map[string]struct{ divide bool }{
	"kg":             {divide: true},
	"kgs":            {divide: true},
	"kilo":           {divide: true},
	"kilos":          {divide: true},
	"quilo":          {divide: true},
	"quilos":         {divide: true},
	"quilograma":     {divide: true},
	"quilogramas":    {divide: true},
	"l":              {divide: true},
	"lt":             {divide: true},
	"litro":          {divide: true},
	"litros":         {divide: true},
	"t":              {},
	"ton":            {},
	"tonelada":       {},
	"toneladas":      {},
	"m3":             {},
	"m³":             {},
	"metro cubico":   {},
	"metro cúbico":   {},
	"metros cúbicos": {},
}

// ToTonnes converts a quantity in the log's raw unit to tonnes. The second
// return reports whether the unit was recognized; unknown units fall back
// to identity and the caller decides how to handle them.
func ToTonnes(quantity float64, unit string) (decimal.Decimal, bool) {
	q := decimal.NewFromFloat(quantity)

	alias, ok := unitAliases[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return q, false
	}
	if alias.divide {
		return q.Div(thousand), true
	}
	return q, true
}
