package aes128

// state is the 4x4 byte matrix the rounds operate on. It is stored column-major, with the byte at (row, col) at index
// row+4*col, so a 16-byte block loads into the state in order.
type state [BlockSize]byte

func (s *state) at(row, col int) byte {
	return s[row+4*col]
}

func (s *state) set(row, col int, b byte) {
	s[row+4*col] = b
}

func (s *state) column(col int) [4]byte {
	return [4]byte(s[4*col : 4*col+4])
}

func (s *state) setColumn(col int, c [4]byte) {
	copy(s[4*col:4*col+4], c[:])
}

func (s *state) row(row int) [4]byte {
	return [4]byte{s.at(row, 0), s.at(row, 1), s.at(row, 2), s.at(row, 3)}
}

func (s *state) setRow(row int, r [4]byte) {
	for col, b := range r {
		s.set(row, col, b)
	}
}

// direction selects the forward (encrypting) or inverse (decrypting) variant of a round primitive.
type direction uint8

const (
	forward direction = iota
	inverse
)

func (d direction) String() string {
	if d == inverse {
		return "inverse"
	}
	return "forward"
}
