package aes128

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// A Schedule is the expanded form of an AES-128 key: the cipher key followed by the ten round keys derived from it.
//
// A Schedule is read-only once expanded and may be shared between goroutines. The zero value is not usable; create
// one with ExpandKey.
type Schedule struct {
	keys  [Rounds + 1]state
	ready bool
}

// ExpandKey runs the key schedule for the given 16-byte key. It returns ErrInvalidKeyLength if the key is any other
// length.
func ExpandKey(key []byte) (*Schedule, error) {
	ks := new(Schedule)
	if err := ks.SetKey(key); err != nil {
		return nil, err
	}
	return ks, nil
}

// SetKey replaces the schedule's keys with the expansion of the given 16-byte key. If the key is the wrong length,
// SetKey returns ErrInvalidKeyLength and leaves the schedule untouched.
//
// SetKey must not be called while other goroutines are using the schedule.
func (ks *Schedule) SetKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}

	ks.keys[0] = state(key)
	for r := range Rounds {
		prev, next := &ks.keys[r], &ks.keys[r+1]

		// RotWord, SubWord, and Rcon on the previous key's last column.
		last := prev.column(3)
		t := [4]byte{sbox(last[1]), sbox(last[2]), sbox(last[3]), sbox(last[0])}
		t[0] ^= rcon[r]

		col := prev.column(0)
		for i := range col {
			col[i] ^= t[i]
		}
		next.setColumn(0, col)

		for c := 1; c < 4; c++ {
			left, above := next.column(c-1), prev.column(c)
			for i := range col {
				col[i] = left[i] ^ above[i]
			}
			next.setColumn(c, col)
		}
	}
	ks.ready = true

	return nil
}

// Ready reports whether the schedule holds an expanded key and can be used for block operations.
func (ks *Schedule) Ready() bool {
	return ks != nil && ks.ready
}

// RoundKey returns the key for the given round, where round 0 is the cipher key and round 10 is the last round key.
//
// RoundKey panics if round is outside [0, Rounds].
func (ks *Schedule) RoundKey(round int) [BlockSize]byte {
	if round < 0 || round > Rounds {
		panic(fmt.Sprintf("aes128: round %d out of range", round))
	}
	return ks.keys[round]
}

// Equal returns 1 if the two schedules hold the same keys and agree on being usable, and 0 otherwise. A nil schedule
// is treated like the zero value. The comparison runs in constant time.
func (ks *Schedule) Equal(other *Schedule) int {
	a, b := ks.orZero(), other.orZero()
	v := subtle.ConstantTimeByteEq(b2u(a.Ready()), b2u(b.Ready()))
	for i := range a.keys {
		v &= subtle.ConstantTimeCompare(a.keys[i][:], b.keys[i][:])
	}
	return v
}

// Clear zeroes the schedule's keys. A cleared schedule is rejected by the block operations until SetKey is called
// again.
func (ks *Schedule) Clear() {
	clear(ks.keys[:])
	ks.ready = false
}

// String renders the round keys as hex, one per line.
func (ks *Schedule) String() string {
	if !ks.Ready() {
		return "<uninitialized>"
	}

	var b strings.Builder
	for i := range ks.keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(hex.EncodeToString(ks.keys[i][:]))
	}
	return b.String()
}

func (ks *Schedule) roundKey(round int, d direction) *state {
	if d == inverse {
		round = Rounds - round
	}
	return &ks.keys[round]
}

func (ks *Schedule) orZero() *Schedule {
	if ks == nil {
		return new(Schedule)
	}
	return ks
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

var _ fmt.Stringer = (*Schedule)(nil)
