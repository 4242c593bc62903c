package biguint

import (
	"fmt"
	"math/big"
	"strconv"
)

// U is an arbitrary-precision unsigned integer stored as 32-bit limbs,
// least significant first.
//
// The canonical representation of zero is a single zero limb. After any
// public operation the top limb is non-zero unless the value is zero; the
// uninitialised zero value of the type also reads as zero.
//
// U is a value type in the sense that the public API never mutates a
// receiver or an argument, and no operation's result shares limb storage
// with its operands.
type U struct {
	d []uint32
}

// Zero returns the canonical representation of zero.
func Zero() U {
	var u U
	u.setZero()
	return u
}

// One returns the value 1.
func One() U {
	return U{d: []uint32{1}}
}

// FromUint64 creates a U from a uint64.
func FromUint64(v uint64) U {
	var u U
	u.reserve(2)
	u.d = append(u.d, uint32(v), uint32(v>>limbBits))
	u.normalize()
	return u
}

// FromBigInt creates a U from a big.Int. Negative input sets ok to 'false'
// and returns zero; there is no truncated two's complement reading here.
func FromBigInt(b *big.Int) (out U, ok bool) {
	if b.Sign() < 0 {
		return Zero(), false
	}

	words := b.Bits()

	var u U
	switch intSize {
	case 64:
		u.reserve(len(words) * 2)
		for _, w := range words {
			u.d = append(u.d, uint32(w), uint32(uint64(w)>>limbBits))
		}
	case 32:
		u.reserve(len(words))
		for _, w := range words {
			u.d = append(u.d, uint32(w))
		}
	default:
		panic("biguint: unsupported word size")
	}
	u.normalize()
	return u, true
}

// limbs returns a read-only view of the significant limbs, substituting
// canonical zero for the uninitialised zero value.
func (u U) limbs() []uint32 {
	if len(u.d) == 0 {
		return zeroLimb[:]
	}
	return u.d
}

// reserve ensures capacity for at least need limbs without changing the
// value. Growth doubles from a floor of minLimbCap and never shrinks.
// Storage may be relocated; a capacity that would overflow the addressable
// range is unrecoverable and panics.
func (u *U) reserve(need int) {
	if cap(u.d) >= need {
		return
	}
	nc := cap(u.d)
	if nc == 0 {
		nc = minLimbCap
	}
	for nc < need {
		if nc > maxInt>>1 {
			panic("biguint: capacity overflow")
		}
		nc <<= 1
	}
	nd := make([]uint32, len(u.d), nc)
	copy(nd, u.d)
	u.d = nd
}

// normalize trims zero limbs from the significant end until the top limb
// is non-zero or a single limb remains, re-establishing canonical zero if
// no limbs are left.
func (u *U) normalize() {
	n := len(u.d)
	for n > 1 && u.d[n-1] == 0 {
		n--
	}
	u.d = u.d[:n]
	if n == 0 {
		u.setZero()
	}
}

// setZero resets the value to canonical zero, keeping existing capacity.
func (u *U) setZero() {
	u.reserve(1)
	u.d = u.d[:1]
	u.d[0] = 0
}

// Clone returns a copy of u with independent limb storage.
func (u U) Clone() U {
	var v U
	v.reserve(len(u.limbs()))
	v.d = append(v.d, u.limbs()...)
	return v
}

func (u U) IsZero() bool {
	d := u.limbs()
	return len(d) == 1 && d[0] == 0
}

// LimbLen returns the number of significant limbs; it is 1 for zero.
func (u U) LimbLen() int { return len(u.limbs()) }

// Limb returns limb i, where limb 0 holds the least significant 32 bits.
func (u U) Limb(i int) uint32 { return u.limbs()[i] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U) IsUint64() bool { return len(u.limbs()) <= 2 }

// AsUint64 truncates u to its low 64 bits. See IsUint64() if you want to
// check before you convert.
func (u U) AsUint64() uint64 {
	d := u.limbs()
	v := uint64(d[0])
	if len(d) > 1 {
		v |= uint64(d[1]) << limbBits
	}
	return v
}

func (u U) Cmp(n U) int {
	ud, nd := u.limbs(), n.limbs()
	if len(ud) > len(nd) {
		return 1
	} else if len(ud) < len(nd) {
		return -1
	}
	for i := len(ud) - 1; i >= 0; i-- {
		if ud[i] > nd[i] {
			return 1
		} else if ud[i] < nd[i] {
			return -1
		}
	}
	return 0
}

func (u U) Equal(n U) bool { return u.Cmp(n) == 0 }

// Larger returns the larger of a and b.
func Larger(a, b U) U {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Smaller returns the smaller of a and b.
func Smaller(a, b U) U {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func (u U) IntoBigInt(b *big.Int) {
	d := u.limbs()

	switch intSize {
	case 64:
		words := make([]big.Word, (len(d)+1)/2)
		for i, limb := range d {
			words[i/2] |= big.Word(limb) << (uint(i%2) * limbBits)
		}
		b.SetBits(words)

	case 32:
		words := make([]big.Word, len(d))
		for i, limb := range d {
			words[i] = big.Word(limb)
		}
		b.SetBits(words)

	default:
		panic("biguint: unsupported word size")
	}
}

func (u U) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U) String() string {
	if u.IsZero() {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return u.AsBigInt().String()
}

func (u U) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}
