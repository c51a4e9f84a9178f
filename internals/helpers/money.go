package helper

import (
	"fmt"
	"strings"
)

// Semua nominal disimpan sebagai integer cents (int64).
// Helper di sini hanya untuk tampilan (receipt, log) - hitung-hitungan
// tetap di cents supaya bebas floating point.

// FormatCents: 2700000 → "27,000.00"
func FormatCents(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s.%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
