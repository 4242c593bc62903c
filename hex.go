package biguint

import "strconv"

const lowerhex = "0123456789abcdef"

// HexString renders u as lowercase hexadecimal with a 0x prefix. The most
// significant limb is printed without leading zeros; every limb below it
// is zero-padded to 8 digits. Zero renders as exactly "0x0".
func (u U) HexString() string {
	return string(u.AppendHex(make([]byte, 0, 2+u.LimbLen()*8)))
}

// AppendHex appends the HexString rendering of u to dst and returns the
// extended buffer.
func (u U) AppendHex(dst []byte) []byte {
	dst = append(dst, '0', 'x')
	if u.IsZero() {
		return append(dst, '0')
	}

	d := u.limbs()
	n := len(d)
	dst = strconv.AppendUint(dst, uint64(d[n-1]), 16)
	for k := n - 1; k > 0; k-- {
		limb := d[k-1]
		for shift := limbBits - 4; shift >= 0; shift -= 4 {
			dst = append(dst, lowerhex[(limb>>uint(shift))&0xf])
		}
	}
	return dst
}
