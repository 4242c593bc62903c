/*
Package biguint provides an arbitrary-precision unsigned integer type (U)
built from 32-bit limbs, supporting decimal parsing, multiplication and
hexadecimal rendering.

U is a value type; operations return new values and never mutate their
receivers or arguments.

Simple example:

	a := biguint.MustParseDecimal("123456789123456789")
	b := biguint.MustParseDecimal("987654321987654321")
	fmt.Println(a.Mul(b).HexString())
	// Output: 0x177bbe2cd7ac30c76b21ab18c53785

U can be created from a variety of sources:

	Zero() U
	FromUint64(v uint64) U
	FromBigInt(b *big.Int) (out U, ok bool)
	ParseDecimal(s string) (out U, err error)
	MustParseDecimal(s string) U

This is deliberately not a general bignum library: there is no division,
subtraction or signed support, only the parse, multiply and format
pipeline. Anything beyond that is better served by math/big.
*/
package biguint
