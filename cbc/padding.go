package cbc

import "github.com/codahale/aes128/internal/mem"

// Pad appends data and its PKCS #7 padding for the given block size to dst and returns the resulting slice. A full
// block of padding is added when data is already block-aligned.
//
// Pad panics if blockSize is not between 1 and 255.
func Pad(dst, data []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic("aes128/cbc: invalid block size")
	}

	n := blockSize - len(data)%blockSize
	ret, out := mem.SliceForAppend(dst, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return ret
}

// Unpad returns data with its PKCS #7 padding removed. The result aliases data.
//
// Unpad returns ErrInvalidPadding if data is empty, not block-aligned, or does not end in valid padding.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
