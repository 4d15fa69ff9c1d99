package validation

import (
	"regexp"
	"strings"
)

// Input masks. Each mask first reduces the value to its digits, so
// feeding an already-masked value back in yields the same output. Extra
// digits are kept so the rules still see the real length.
var (
	nonDigit = regexp.MustCompile(`\D`)

	cpfGroup = regexp.MustCompile(`(\d{3})(\d)`)
	cpfTail  = regexp.MustCompile(`(\d{3})(\d{1,2})$`)

	phoneArea = regexp.MustCompile(`^(\d{2})(\d)`)
	phoneTail = regexp.MustCompile(`(\d{5})(\d{4})$`)

	cepTail = regexp.MustCompile(`(\d{5})(\d{3})$`)
)

// Digits returns s with every non-digit character removed.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// MaskCPF formats digits as 000.000.000-00.
func MaskCPF(value string) string {
	v := Digits(value)
	v = replaceFirst(cpfGroup, v, "$1.$2")
	v = replaceFirst(cpfGroup, v, "$1.$2")
	return replaceFirst(cpfTail, v, "$1-$2")
}

// MaskPhone formats a phone as (00) 00000-0000. Ten-digit landlines only
// get the area code parentheses.
func MaskPhone(value string) string {
	v := Digits(value)
	v = replaceFirst(phoneArea, v, "($1) $2")
	return replaceFirst(phoneTail, v, "$1-$2")
}

// MaskCEP formats a postal code as 00000-000.
func MaskCEP(value string) string {
	v := Digits(value)
	return replaceFirst(cepTail, v, "$1-$2")
}

// replaceFirst substitutes only the leftmost match of re.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}

	var b strings.Builder
	b.WriteString(s[:loc[0]])
	b.Write(re.ExpandString(nil, template, s, loc))
	b.WriteString(s[loc[1]:])
	return b.String()
}

