package validation

import (
	"errors"
	"strings"
)

// ErrBaseLength is returned by CheckDigits when the base is not 9 digits.
var ErrBaseLength = errors.New("cpf base must have exactly 9 digits")

// ─────────────────────────────────────────────────────────────────────────────
// IsValidCPF reports whether s holds a valid CPF (the 11-digit national
// tax identifier). Formatting is ignored: "111.444.777-35" and
// "11144477735" are the same number.
//
// The last two digits are check digits computed from the first nine:
//
//	d1 = (Σ digit[i] * (10 - i)) * 10 mod 11   for i in 0..8
//	d2 = (Σ digit[i] * (11 - i)) * 10 mod 11   for i in 0..9
//
// A remainder of 10 maps to 0. Numbers made of one repeated digit
// (000.000.000-00, 111.111.111-11, ...) pass the arithmetic but are
// rejected.
// ─────────────────────────────────────────────────────────────────────────────
func IsValidCPF(s string) bool {
	digits := Digits(s)
	if len(digits) != 11 || repeated(digits) {
		return false
	}

	d1, d2, err := CheckDigits(digits[:9])
	if err != nil {
		return false
	}

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// CheckDigits computes both check digits for a 9-digit CPF base.
func CheckDigits(base string) (int, int, error) {
	if len(base) != 9 || Digits(base) != base {
		return 0, 0, ErrBaseLength
	}

	d1 := checkDigit(base, 10)
	d2 := checkDigit(base+string(rune('0'+d1)), 11)

	return d1, d2, nil
}

// checkDigit runs one weighted pass: weights start at `weight` and go
// down to 2, one per digit.
func checkDigit(digits string, weight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}

	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}

func repeated(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}
