package validation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"formatted valid", "111.444.777-35", true},
		{"digits only valid", "11144477735", true},
		{"another valid", "529.982.247-25", true},
		{"repeated digits", "111.111.111-11", false},
		{"all zeros", "000.000.000-00", false},
		{"checksum mismatch", "123.456.789-00", false},
		{"second digit wrong", "111.444.777-36", false},
		{"too short", "111.444.777-3", false},
		{"too long", "111.444.777-350", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.input))
		})
	}
}

func TestCheckDigits(t *testing.T) {
	d1, d2, err := CheckDigits("111444777")
	require.NoError(t, err)
	assert.Equal(t, 3, d1)
	assert.Equal(t, 5, d2)

	_, _, err = CheckDigits("11144477")
	assert.ErrorIs(t, err, ErrBaseLength)

	_, _, err = CheckDigits("11144477a")
	assert.ErrorIs(t, err, ErrBaseLength)
}

// recompute derives both check digits directly from the definition so
// IsValidCPF can be compared against an independent implementation.
func recompute(digits string) (int, int) {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	d1 := (sum * 10) % 11
	if d1 == 10 {
		d1 = 0
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	d2 := (sum * 10) % 11
	if d2 == 10 {
		d2 = 0
	}
	return d1, d2
}

func TestIsValidCPFMatchesRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		digits := fmt.Sprintf("%011d", rng.Int63n(100_000_000_000))
		if repeated(digits) {
			continue
		}

		d1, d2 := recompute(digits)
		want := int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
		require.Equal(t, want, IsValidCPF(digits), "digits %s", digits)
	}
}

func TestIsValidCPFAcceptsGeneratedNumbers(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		base := fmt.Sprintf("%09d", rng.Int63n(1_000_000_000))
		if repeated(base) {
			continue
		}
		d1, d2, err := CheckDigits(base)
		require.NoError(t, err)

		cpf := fmt.Sprintf("%s%d%d", base, d1, d2)
		require.True(t, IsValidCPF(cpf), "cpf %s", cpf)
		require.True(t, IsValidCPF(MaskCPF(cpf)), "masked cpf %s", MaskCPF(cpf))
	}
}
