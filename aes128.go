// Package aes128 implements the AES-128 block cipher as specified in [FIPS 197].
//
// A 16-byte key is expanded once with ExpandKey into a Schedule holding all eleven round keys. The schedule is then
// used to encrypt or decrypt any number of 16-byte blocks with EncryptBlock and DecryptBlock, or through the
// cipher.Block interface it implements. Each block operation keeps its working state on the stack, so a single
// schedule can be used from many goroutines at once.
//
// The implementation is table-driven and not constant time. It is a faithful rendering of the standard, not a
// replacement for crypto/aes.
//
// [FIPS 197]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.197-upd1.pdf
package aes128

import (
	"crypto/cipher"
	"errors"

	"github.com/codahale/aes128/internal/mem"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// Rounds is the number of AES-128 rounds.
	Rounds = 10
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("aes128: invalid key length")

	// ErrInvalidBlockLength is returned when a plaintext or ciphertext block is not exactly BlockSize bytes long.
	ErrInvalidBlockLength = errors.New("aes128: invalid block length")

	// ErrUninitializedSchedule is returned when a block operation is given a schedule which was never expanded or has
	// been cleared.
	ErrUninitializedSchedule = errors.New("aes128: uninitialized key schedule")
)

// EncryptBlock encrypts a single 16-byte block of plaintext with the given schedule. It appends the ciphertext to dst
// and returns the resulting slice.
//
// On error, nothing is written to dst or plaintext. To reuse plaintext's storage for the output, use plaintext[:0] as
// dst.
func EncryptBlock(ks *Schedule, dst, plaintext []byte) ([]byte, error) {
	if err := check(ks, plaintext); err != nil {
		return nil, err
	}

	s := state(plaintext)
	ks.encrypt(&s)

	ret, out := mem.SliceForAppend(dst, BlockSize)
	copy(out, s[:])
	return ret, nil
}

// DecryptBlock decrypts a single 16-byte block of ciphertext with the given schedule. It appends the plaintext to dst
// and returns the resulting slice.
//
// On error, nothing is written to dst or ciphertext. To reuse ciphertext's storage for the output, use ciphertext[:0]
// as dst.
func DecryptBlock(ks *Schedule, dst, ciphertext []byte) ([]byte, error) {
	if err := check(ks, ciphertext); err != nil {
		return nil, err
	}

	s := state(ciphertext)
	ks.decrypt(&s)

	ret, out := mem.SliceForAppend(dst, BlockSize)
	copy(out, s[:])
	return ret, nil
}

// BlockSize returns the AES block size. It is part of the cipher.Block interface.
func (ks *Schedule) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
//
// Unlike EncryptBlock, Encrypt follows the cipher.Block contract and panics if either buffer is shorter than a block or
// the schedule is not usable.
func (ks *Schedule) Encrypt(dst, src []byte) {
	s := ks.load(dst, src)
	ks.encrypt(&s)
	copy(dst, s[:])
}

// Decrypt decrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
//
// Unlike DecryptBlock, Decrypt follows the cipher.Block contract and panics if either buffer is shorter than a block or
// the schedule is not usable.
func (ks *Schedule) Decrypt(dst, src []byte) {
	s := ks.load(dst, src)
	ks.decrypt(&s)
	copy(dst, s[:])
}

func (ks *Schedule) load(dst, src []byte) state {
	if !ks.Ready() {
		panic("aes128: uninitialized key schedule")
	}
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	return state(src[:BlockSize])
}

func (ks *Schedule) encrypt(s *state) {
	addRoundKey(s, ks, 0, forward)
	for round := 1; round < Rounds; round++ {
		subBytes(s, forward)
		shiftRows(s, forward)
		mixColumns(s, forward)
		addRoundKey(s, ks, round, forward)
	}

	// The final round has no MixColumns.
	subBytes(s, forward)
	shiftRows(s, forward)
	addRoundKey(s, ks, Rounds, forward)
}

func (ks *Schedule) decrypt(s *state) {
	addRoundKey(s, ks, 0, inverse)
	for round := 1; round < Rounds; round++ {
		shiftRows(s, inverse)
		subBytes(s, inverse)
		addRoundKey(s, ks, round, inverse)
		mixColumns(s, inverse)
	}

	shiftRows(s, inverse)
	subBytes(s, inverse)
	addRoundKey(s, ks, Rounds, inverse)
}

func check(ks *Schedule, block []byte) error {
	if !ks.Ready() {
		return ErrUninitializedSchedule
	}
	if len(block) != BlockSize {
		return ErrInvalidBlockLength
	}
	return nil
}

var _ cipher.Block = (*Schedule)(nil)
