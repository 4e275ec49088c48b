package routes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CurrencySymbol prefixes every displayed price.
const CurrencySymbol = "₹"

type priceBand struct {
	low, high float64
}

var (
	airBand     = priceBand{0.7, 1.4}
	railBand    = priceBand{0.5, 1.6}
	roadBand    = priceBand{0.6, 1.5}
	defaultBand = priceBand{0.8, 1.5}
)

var modeBands = map[string]priceBand{
	"plane":  airBand,
	"air":    airBand,
	"flight": airBand,
	"train":  railBand,
	"rail":   railBand,
	"bus":    roadBand,
	"road":   roadBand,
	"coach":  roadBand,
}

// EstimateRange returns the display band for a base price, e.g. "₹2450-4900".
// Both bounds are floored.
func EstimateRange(price float64, mode string) string {
	band, ok := modeBands[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		band = defaultBand
	}
	low := int64(math.Floor(price * band.low))
	high := int64(math.Floor(price * band.high))
	return fmt.Sprintf("%s%d-%d", CurrencySymbol, low, high)
}

// FormatPrice renders a price with its currency symbol and no trailing zeros.
func FormatPrice(price float64) string {
	return CurrencySymbol + strconv.FormatFloat(price, 'f', -1, 64)
}
