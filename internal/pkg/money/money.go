// internal/pkg/money/money.go
package money

import "fmt"

// Prices are stored as int64 halalas (SAR minor units, 100 halalas = 1 SAR)
// to avoid floating point drift in cart arithmetic.

// Format renders a halala amount as a decimal string, e.g. 1250 -> "12.50".
func Format(halalas int64) string {
	sign := ""
	if halalas < 0 {
		sign = "-"
		halalas = -halalas
	}
	return fmt.Sprintf("%s%d.%02d", sign, halalas/100, halalas%100)
}

// FormatSAR renders a halala amount with the currency suffix, e.g. "12.50 SAR".
func FormatSAR(halalas int64) string {
	return Format(halalas) + " SAR"
}
