package biguint

import (
	"errors"
	"fmt"
)

// Parse failure kinds. ParseDecimal wraps these so callers that care can
// tell an empty input from a malformed one with errors.Is; most callers
// should treat any error as "not a decimal number".
var (
	ErrNoDigits    = errors.New("no digits")
	ErrInvalidChar = errors.New("invalid character")
)

// ParseDecimal converts a decimal digit string to a U. The input may carry
// leading whitespace, an optional leading '+' and trailing whitespace
// (including a line terminator); leading zero digits are fine. Anything
// else fails. There is no sign support: this parser only ever produces
// non-negative values.
func ParseDecimal(s string) (out U, err error) {
	var u U
	u.setZero()

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '+' {
		i++
	}
	if i == len(s) {
		return U{}, parseErr(s, ErrNoDigits)
	}
	if !isDigit(s[i]) {
		return U{}, parseErr(s, ErrInvalidChar)
	}

	for ; i < len(s); i++ {
		if isSpace(s[i]) {
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			break
		}
		if !isDigit(s[i]) {
			return U{}, parseErr(s, ErrInvalidChar)
		}
		u.mulAddDigit(uint32(s[i] - '0'))
	}
	if i != len(s) {
		return U{}, parseErr(s, ErrInvalidChar)
	}

	u.normalize()
	return u, nil
}

// MustParseDecimal is like ParseDecimal but panics on invalid input.
// Useful for fixtures and tests.
func MustParseDecimal(s string) U {
	u, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return u
}

// mulAddDigit sets u = u*10 + digit in a single pass over the limbs. The
// uint64 intermediate keeps the 32x10 multiply-add from wrapping.
func (u *U) mulAddDigit(digit uint32) {
	carry := uint64(digit)
	if len(u.d) == 0 {
		u.setZero()
	}
	for i, limb := range u.d {
		cur := uint64(limb)*10 + carry
		u.d[i] = uint32(cur)
		carry = cur >> limbBits
	}
	if carry != 0 {
		u.reserve(len(u.d) + 1)
		u.d = append(u.d, uint32(carry))
	}
}

func parseErr(s string, kind error) error {
	return fmt.Errorf("biguint: decimal string %q invalid: %w", s, kind)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
