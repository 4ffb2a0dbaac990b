package weighing

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the fixed display locale of the form and of every receipt.
var Locale = language.BrazilianPortuguese

var printer = message.NewPrinter(Locale)

// ParseWeight parses a weight typed by the operator. Digits with at most one
// decimal separator are accepted; the separator may be ',' or '.'.
// Surrounding whitespace is ignored. Signs, digit grouping and exponents are
// rejected.
func ParseWeight(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidWeight
	}

	var b strings.Builder
	b.Grow(len(text))
	digits := 0
	separators := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == ',' || r == '.':
			separators++
			b.WriteByte('.')
		default:
			return 0, ErrInvalidWeight
		}
	}
	if digits == 0 || separators > 1 {
		return 0, ErrInvalidWeight
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, ErrInvalidWeight
	}
	return v, nil
}

// Sum is the single total used by the page, the PDF and the print view.
func Sum(weights []float64) float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return total
}

// FormatKG renders a weight with two decimals and a decimal comma: 3.75 -> "3,75".
// Half cents round away from zero, so 0.125 prints as "0,13".
func FormatKG(v float64) string {
	return printer.Sprint(number.Decimal(roundCents(v), number.Scale(2), number.NoSeparator()))
}

// roundCents rounds the exact binary value of v to hundredths. A value that
// is exactly half a cent rounds away from zero; 1.005 is stored below the
// tie and rounds down.
func roundCents(v float64) float64 {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return v
	}
	r.Mul(r, big.NewRat(100, 1))

	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	m.Abs(m).Lsh(m, 1)
	if m.Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(int64(r.Num().Sign())))
	}
	out, _ := new(big.Rat).SetFrac(q, big.NewInt(100)).Float64()
	return out
}

// FormatInput renders a weight the way the operator would type it, used to
// seed an edit session: 12.5 -> "12,5". Every digit is kept so the text
// parses back to exactly v.
func FormatInput(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
