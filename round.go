package aes128

//nolint:gochecknoglobals // constant
var mixMatrices = [2][4][4]byte{
	forward: {
		{2, 3, 1, 1},
		{1, 2, 3, 1},
		{1, 1, 2, 3},
		{3, 1, 1, 2},
	},
	inverse: {
		{14, 11, 13, 9},
		{9, 14, 11, 13},
		{13, 9, 14, 11},
		{11, 13, 9, 14},
	},
}

// addRoundKey XORs the key for the given round into s. Inverse rounds count down the schedule, so inverse round 0
// uses the last round key and inverse round 10 uses the cipher key.
func addRoundKey(s *state, ks *Schedule, round int, d direction) {
	k := ks.roundKey(round, d)
	for i := range s {
		s[i] ^= k[i]
	}
}

func subBytes(s *state, d direction) {
	sub := sbox
	if d == inverse {
		sub = invSbox
	}
	for i, b := range s {
		s[i] = sub(b)
	}
}

// shiftRows rotates row r left by r places, or right by r places for the inverse.
func shiftRows(s *state, d direction) {
	for r := 1; r < 4; r++ {
		n := r
		if d == inverse {
			n = 4 - r
		}

		row := s.row(r)
		var shifted [4]byte
		for c := range shifted {
			shifted[c] = row[(c+n)%4]
		}
		s.setRow(r, shifted)
	}
}

func mixColumns(s *state, d direction) {
	m := &mixMatrices[d]
	for c := range 4 {
		col := s.column(c)
		var mixed [4]byte
		for r := range mixed {
			for k, b := range col {
				mixed[r] ^= gfMul(m[r][k], b)
			}
		}
		s.setColumn(c, mixed)
	}
}
