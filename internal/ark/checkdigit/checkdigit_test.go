package checkdigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const correctResourceID = "cmfk1DMHRBiR4-_6HXpEFA"

func TestCalculateCheckDigit(t *testing.T) {
	digit, err := CalculateCheckDigit(correctResourceID)
	require.NoError(t, err)
	assert.Equal(t, byte('n'), digit)
}

func TestIsValid_RejectsCodeWithoutCheckDigit(t *testing.T) {
	assert.False(t, IsValid(correctResourceID))
}

func TestIsValid_AcceptsCorrectCheckDigit(t *testing.T) {
	digit, err := CalculateCheckDigit(correctResourceID)
	require.NoError(t, err)
	assert.True(t, IsValid(correctResourceID+string(digit)))
}

func TestIsValid_RejectsIncorrectCheckDigit(t *testing.T) {
	assert.False(t, IsValid(correctResourceID+"m"))
}

func TestIsValid_RejectsDeletedCharacter(t *testing.T) {
	withMissingChar := "cmfk1DMHRBiR4-6HXpEFA"
	assert.False(t, IsValid(withMissingChar+"n"))
}

func TestIsValid_RejectsSubstitutedCharacter(t *testing.T) {
	withSubstitution := "cmfk1DMHRBir4-_6HXpEFA"
	assert.False(t, IsValid(withSubstitution+"n"))
}

func TestIsValid_RejectsTransposedCharacters(t *testing.T) {
	withTransposition := "cmfk1DMHRBiR4_-6HXpEFA"
	assert.False(t, IsValid(withTransposition+"n"))
}

func TestIsValid_EmptyCode(t *testing.T) {
	assert.False(t, IsValid(""))
}

func TestCalculateCheckDigit_EmptyCode(t *testing.T) {
	_, err := CalculateCheckDigit("")
	assert.Error(t, err)
}

// TestRoundTrip verifies that codes drawn from the alphabet validate
// against their own check digit.
func TestRoundTrip(t *testing.T) {
	codes := []string{
		"a",
		"0",
		"-",
		"_",
		"cmfk1DMHRBiR4-_6HXpEFA",
		"751e0b8a",
		Alphabet,
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			digit, err := CalculateCheckDigit(code)
			require.NoError(t, err)
			assert.True(t, IsValid(code+string(digit)))
		})
	}
}

// An all-'A' code has a weighted sum of zero; the algorithm rejects it
// rather than accepting any check digit for it.
func TestCalculateCheckDigit_RejectsZeroSumCode(t *testing.T) {
	for _, code := range []string{"A", "AAAA"} {
		_, err := CalculateCheckDigit(code)
		assert.Error(t, err, code)
	}
	assert.False(t, IsValid("AAAAA"))
}

// TestSubstitutionDetection verifies that the listed single-character
// substitutions are caught. Not every substitution is: where the position
// weight times the value difference is a multiple of 64, the sum is unchanged.
func TestSubstitutionDetection(t *testing.T) {
	code := correctResourceID
	digit, err := CalculateCheckDigit(code)
	require.NoError(t, err)
	valid := code + string(digit)

	substitutions := []struct {
		pos         int
		replacement byte
	}{
		{0, 'C'},
		{4, '2'},
		{11, 'r'},
		{13, '_'},
		{22, 'm'},
	}
	for _, s := range substitutions {
		mutated := valid[:s.pos] + string(s.replacement) + valid[s.pos+1:]
		assert.False(t, IsValid(mutated), "position %d replaced with %q should invalidate", s.pos, s.replacement)
	}
}

// TestTranspositionDetection verifies that swapping two adjacent
// distinct characters invalidates the code.
func TestTranspositionDetection(t *testing.T) {
	code := correctResourceID
	digit, err := CalculateCheckDigit(code)
	require.NoError(t, err)
	valid := code + string(digit)

	for pos := 0; pos < len(valid)-1; pos++ {
		if valid[pos] == valid[pos+1] {
			continue
		}
		mutated := []byte(valid)
		mutated[pos], mutated[pos+1] = mutated[pos+1], mutated[pos]
		assert.False(t, IsValid(string(mutated)), "swapping positions %d,%d should invalidate", pos, pos+1)
	}
}

// TestDeletionDetection verifies that deleting any single character
// from a validated code invalidates it.
func TestDeletionDetection(t *testing.T) {
	code := correctResourceID
	digit, err := CalculateCheckDigit(code)
	require.NoError(t, err)
	valid := code + string(digit)

	for pos := 0; pos < len(valid); pos++ {
		mutated := valid[:pos] + valid[pos+1:]
		assert.False(t, IsValid(mutated), "deleting position %d should invalidate", pos)
	}
}
