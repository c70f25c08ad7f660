// Package gf256 implements arithmetic in GF(2^8) modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.
//
// It is used to build the cipher's lookup tables once at startup; none of it is on the per-block path.
package gf256

import "math/bits"

// Poly is the reduction polynomial x^8 + x^4 + x^3 + x + 1 with the x^8 term dropped.
const Poly = 0x1b

// affineConst and invAffineConst are the additive constants of the S-box affine transform and its inverse.
const (
	affineConst    = 0x63
	invAffineConst = 0x05
)

// XTime multiplies a by x.
func XTime(a byte) byte {
	return a<<1 ^ (a>>7)*Poly
}

// Mul returns the product of a and b.
func Mul(a, b byte) byte {
	var p byte
	for range 8 {
		p ^= a * (b & 1)
		a = XTime(a)
		b >>= 1
	}
	return p
}

// Inv returns the multiplicative inverse of a. Zero has no inverse and maps to zero, as in the AES S-box.
func Inv(a byte) byte {
	// a^254 = a^2 * a^4 * a^8 * a^16 * a^32 * a^64 * a^128
	x := Mul(a, a)
	res := x
	for range 6 {
		x = Mul(x, x)
		res = Mul(res, x)
	}
	return res
}

// Affine applies the S-box affine transform over GF(2).
func Affine(a byte) byte {
	return a ^
		bits.RotateLeft8(a, 1) ^
		bits.RotateLeft8(a, 2) ^
		bits.RotateLeft8(a, 3) ^
		bits.RotateLeft8(a, 4) ^
		affineConst
}

// InvAffine undoes Affine.
func InvAffine(a byte) byte {
	return bits.RotateLeft8(a, 1) ^
		bits.RotateLeft8(a, 3) ^
		bits.RotateLeft8(a, 6) ^
		invAffineConst
}
