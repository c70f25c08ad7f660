package aes128

import "github.com/codahale/aes128/internal/gf256"

//nolint:gochecknoglobals // immutable after package initialization
var (
	sboxTable, invSboxTable = newSBoxes()

	mul2Table  = newMulTable(2)
	mul3Table  = newMulTable(3)
	mul9Table  = newMulTable(9)
	mul11Table = newMulTable(11)
	mul13Table = newMulTable(13)
	mul14Table = newMulTable(14)

	// rcon[r] is x^r in GF(2^8).
	rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
)

func sbox(b byte) byte {
	return sboxTable[b]
}

func invSbox(b byte) byte {
	return invSboxTable[b]
}

// gfMul multiplies b by one of the MixColumns matrix coefficients.
func gfMul(m, b byte) byte {
	switch m {
	case 1:
		return b
	case 2:
		return mul2Table[b]
	case 3:
		return mul3Table[b]
	case 9:
		return mul9Table[b]
	case 11:
		return mul11Table[b]
	case 13:
		return mul13Table[b]
	case 14:
		return mul14Table[b]
	default:
		panic("aes128: no multiplication table for coefficient")
	}
}

func newSBoxes() (fwd, inv [256]byte) {
	for x := range 256 {
		fwd[x] = gf256.Affine(gf256.Inv(byte(x)))
		inv[x] = gf256.Inv(gf256.InvAffine(byte(x)))
	}
	return fwd, inv
}

func newMulTable(m byte) (t [256]byte) {
	for x := range 256 {
		t[x] = gf256.Mul(m, byte(x))
	}
	return t
}
