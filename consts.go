package biguint

const (
	limbBits = 32

	// Capacity grows by doubling from this floor and never shrinks.
	minLimbCap = 4

	intSize = 32 << (^uint(0) >> 63)
	maxInt  = 1<<(intSize-1) - 1
)

// zeroLimb backs the limb view of an uninitialised U so that the zero
// value of the type reads as canonical zero everywhere.
var zeroLimb = [1]uint32{0}
