package utils

import (
	"fmt"
	"strings"
)

const (
	groupSeparator = "\u00a0"
	currencySuffix = " ₽"
)

// FormatPrice groups digits by thousands with a no-break space, as ru-RU does.
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	str := fmt.Sprintf("%d", amount)
	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(digit)
	}
	return b.String()
}

func PriceLabel(amount int) string {
	return FormatPrice(amount) + currencySuffix
}
