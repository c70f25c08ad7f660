// Package cbc implements the Cipher Block Chaining mode of operation over AES-128, with PKCS #7 padding.
//
// Each plaintext block is XORed with the previous ciphertext block, or with the IV for the first block, before it is
// encrypted. Encryption is inherently sequential. Decryption only depends on ciphertext which is already at hand, so
// DecryptParallel spreads it across goroutines.
//
// CBC provides confidentiality but not authenticity, and an IV must never be reused with the same key.
package cbc

import (
	"errors"
	"runtime"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/internal/mem"
	"golang.org/x/sync/errgroup"
)

const blockSize = aes128.BlockSize

var (
	// ErrInvalidIV is returned when the IV is not exactly one block long.
	ErrInvalidIV = errors.New("aes128/cbc: invalid IV length")

	// ErrInvalidCiphertext is returned when the ciphertext is not a positive multiple of the block size.
	ErrInvalidCiphertext = errors.New("aes128/cbc: invalid ciphertext length")

	// ErrInvalidPadding is returned when decrypted data does not end in valid PKCS #7 padding. This usually means the
	// wrong key or IV was used, or the ciphertext was modified.
	ErrInvalidPadding = errors.New("aes128/cbc: invalid padding")
)

// Encrypt pads the plaintext and encrypts it with the given schedule and IV. It appends the ciphertext to dst and
// returns the resulting slice. The ciphertext is always longer than the plaintext, by 1 to 16 bytes.
//
// To reuse plaintext's storage for the encrypted output, use plaintext[:0] as dst. Otherwise, the remaining capacity of
// dst must not overlap plaintext.
func Encrypt(ks *aes128.Schedule, iv, dst, plaintext []byte) ([]byte, error) {
	if !ks.Ready() {
		return nil, aes128.ErrUninitializedSchedule
	}
	if len(iv) != blockSize {
		return nil, ErrInvalidIV
	}

	head := len(dst)
	ret := Pad(dst, plaintext, blockSize)
	out := ret[head:]

	prev := (*[blockSize]byte)(iv)
	for i := 0; i < len(out); i += blockSize {
		block := (*[blockSize]byte)(out[i : i+blockSize])
		mem.XORBlock(block, block, prev)
		if _, err := aes128.EncryptBlock(ks, block[:0], block[:]); err != nil {
			return nil, err
		}
		prev = block
	}

	return ret, nil
}

// Decrypt decrypts the ciphertext with the given schedule and IV and removes its padding. It appends the plaintext to
// dst and returns the resulting slice.
//
// To reuse ciphertext's storage for the decrypted output, use ciphertext[:0] as dst. Otherwise, the remaining capacity
// of dst must not overlap ciphertext.
func Decrypt(ks *aes128.Schedule, iv, dst, ciphertext []byte) ([]byte, error) {
	if err := check(ks, iv, ciphertext); err != nil {
		return nil, err
	}

	ret, out := mem.SliceForAppend(dst, len(ciphertext))
	prev := [blockSize]byte(iv)
	for i := 0; i < len(ciphertext); i += blockSize {
		// Keep a copy of the ciphertext block, since out may alias it.
		c := [blockSize]byte(ciphertext[i : i+blockSize])
		block := (*[blockSize]byte)(out[i : i+blockSize])
		if _, err := aes128.DecryptBlock(ks, block[:0], c[:]); err != nil {
			return nil, err
		}
		mem.XORBlock(block, block, &prev)
		prev = c
	}

	return unpadAppended(dst, ret)
}

// DecryptParallel is equivalent to Decrypt, but splits the ciphertext between up to the given number of goroutines. If
// workers is zero or negative, GOMAXPROCS is used. No more goroutines than blocks are started.
//
// Unlike Decrypt, DecryptParallel cannot work in place: the remaining capacity of dst must not overlap ciphertext.
func DecryptParallel(ks *aes128.Schedule, iv, dst, ciphertext []byte, workers int) ([]byte, error) {
	if err := check(ks, iv, ciphertext); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(ciphertext)/blockSize)

	ret, out := mem.SliceForAppend(dst, len(ciphertext))
	blocks := len(ciphertext) / blockSize
	per := (blocks + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < blocks; start += per {
		end := min(start+per, blocks)
		g.Go(func() error {
			for i := start; i < end; i++ {
				off := i * blockSize
				if _, err := aes128.DecryptBlock(ks, out[off:off], ciphertext[off:off+blockSize]); err != nil {
					return err
				}

				prev := iv
				if i > 0 {
					prev = ciphertext[off-blockSize : off]
				}
				mem.XOR(out[off:off+blockSize], out[off:off+blockSize], prev)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return unpadAppended(dst, ret)
}

func check(ks *aes128.Schedule, iv, ciphertext []byte) error {
	if !ks.Ready() {
		return aes128.ErrUninitializedSchedule
	}
	if len(iv) != blockSize {
		return ErrInvalidIV
	}
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return ErrInvalidCiphertext
	}
	return nil
}

// unpadAppended strips the padding from the plaintext appended to dst.
func unpadAppended(dst, ret []byte) ([]byte, error) {
	pt, err := Unpad(ret[len(dst):], blockSize)
	if err != nil {
		return nil, err
	}
	return ret[:len(dst)+len(pt)], nil
}
