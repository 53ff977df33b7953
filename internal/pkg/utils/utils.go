package utils

import (
	"fmt"
	"strconv"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertHourToDuration convert fractional hours to duration format string
// Example: 2.5 -> "2h 30m"
func ConvertHourToDuration(durationInHours float64) string {
	return ConvertMinutesToDuration(int64(durationInHours*60 + 0.5))
}

// ConvertDurationToMinutes convert duration format string to minutes
// Example: "2h 30m" -> 150
func ConvertDurationToMinutes(duration string) int64 {
	var h, m int64
	fmt.Sscanf(duration, "%dh %dm", &h, &m)

	return h*60 + m
}

var currencyMarker = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"SGD": "S$",
}

// FormatCurrency renders an amount as a grouped display string prefixed with
// the marker for its currency code, e.g. 1250000 IDR -> "Rp1.250.000".
// Unknown codes fall back to "<code> <amount>".
func FormatCurrency(amount int64, currency string) string {
	marker, ok := currencyMarker[currency]
	if !ok {
		return fmt.Sprintf("%s %s", currency, groupThousands(amount))
	}

	return marker + groupThousands(amount)
}

func groupThousands(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	var result []byte

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{'.'}, result...)
		}
	}

	if negative {
		return "-" + string(result)
	}

	return string(result)
}
