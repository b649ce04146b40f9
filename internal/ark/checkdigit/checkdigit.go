// Package checkdigit computes and validates a single trailing check digit
// over base64url-encoded codes, following the modulus algorithm in
// org.apache.commons.validator.routines.checkdigit.ModulusCheckDigit.
//
// The alphabet is 0-indexed (A=0). A deprecated 1-indexed revision exists
// elsewhere in the project's history; its vectors are not interchangeable
// with this one and this package does not implement it.
package checkdigit

import (
	"strings"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkerr"
)

// Alphabet is the base64url alphabet (RFC 4648 Table 2, without padding).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const alphabetLength = int64(len(Alphabet))

// indexOf returns c's position in Alphabet, or an InvalidCharacterError.
func indexOf(c byte) (int64, *arkerr.InvalidCharacterError) {
	pos := strings.IndexByte(Alphabet, c)
	if pos < 0 {
		return 0, arkerr.NewInvalidCharacterError(c)
	}
	return int64(pos), nil
}

func weightedValue(charValue, rightPos int64) int64 {
	return charValue * rightPos
}

// modulus computes the weighted-position sum of code mod len(Alphabet).
// If includesCheckDigit is false, code is treated as one character shorter
// than its eventual check-digit-bearing form when computing position weights.
func modulus(code string, includesCheckDigit bool) (int64, error) {
	length := int64(len(code))
	if !includesCheckDigit {
		length++
	}

	var total int64
	for i := 0; i < len(code); i++ {
		rightPos := length - int64(i)
		charValue, err := indexOf(code[i])
		if err != nil {
			return 0, err
		}
		total += weightedValue(charValue, rightPos)
	}

	if total == 0 {
		return 0, arkerr.NewInvalidCodeError(code)
	}

	return total % alphabetLength, nil
}

// toCheckDigit converts an alphabet position to its character.
func toCheckDigit(charValue int64) (byte, error) {
	if charValue < 0 || charValue >= alphabetLength {
		return 0, arkerr.NewInvalidCodeError(string(rune(charValue)))
	}
	return Alphabet[charValue], nil
}

// CalculateCheckDigit returns the check digit for code.
// code must be non-empty and drawn from Alphabet.
func CalculateCheckDigit(code string) (byte, error) {
	if len(code) == 0 {
		return 0, arkerr.NewInvalidCodeError(code)
	}

	m, err := modulus(code, false)
	if err != nil {
		return 0, err
	}

	charValue := (alphabetLength - m) % alphabetLength
	return toCheckDigit(charValue)
}

// IsValid reports whether codeWithDigit (a code with its trailing check
// digit already appended) passes the modulus test. Any malformed input
// yields false rather than an error.
func IsValid(codeWithDigit string) bool {
	if len(codeWithDigit) == 0 {
		return false
	}

	m, err := modulus(codeWithDigit, true)
	if err != nil {
		return false
	}

	return m == 0
}
