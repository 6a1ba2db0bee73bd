package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPKR renders an amount the way the booking screens display money,
// e.g. 2800 -> "PKR 2,800". Amounts are rounded to whole rupees.
func FormatPKR(amount float64) string {
	rounded := int64(math.Round(amount))
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	s := strconv.FormatInt(rounded, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return fmt.Sprintf("PKR %s%s", sign, s)
}
