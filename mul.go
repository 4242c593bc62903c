package biguint

// Mul returns u * n. Neither operand is mutated and the result never
// shares limb storage with either, even when one of them is zero.
//
// This is schoolbook long multiplication in base 2^32. Every intermediate
// sum runs through a uint64 accumulator: the worst case of existing limb +
// 32x32 product + incoming carry still fits, so nothing can silently wrap.
func (u U) Mul(n U) U {
	if u.IsZero() || n.IsZero() {
		return Zero()
	}

	a, b := u.limbs(), n.limbs()
	an, bn := len(a), len(b)
	rn := an + bn

	var z U
	z.reserve(rn)
	z.d = z.d[:rn]
	for i := range z.d {
		z.d[i] = 0
	}

	for i := 0; i < an; i++ {
		var carry uint64
		ai := uint64(a[i])
		for j := 0; j < bn; j++ {
			sum := uint64(z.d[i+j]) + ai*uint64(b[j]) + carry
			z.d[i+j] = uint32(sum)
			carry = sum >> limbBits
		}

		// Drain the remaining carry all the way up. A chain can run past
		// the preallocated an+bn limbs transiently, even though the
		// normalized result never needs more than that.
		for k := i + bn; carry != 0; k++ {
			if k == rn {
				z.reserve(rn + 1)
				z.d = append(z.d, 0)
				rn++
			}
			t := uint64(z.d[k]) + carry
			z.d[k] = uint32(t)
			carry = t >> limbBits
		}
	}

	z.normalize()
	return z
}
