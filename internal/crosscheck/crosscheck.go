// Package crosscheck wraps the standard library's AES so the table-driven implementation can be checked against it.
//
// On CPUs with AES instructions the standard library uses them, and the two implementations share no code at all.
package crosscheck

import (
	"crypto/aes"
	"crypto/cipher"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Hardware is set if the current CPU supports AES instructions.
var Hardware = hasAES() //nolint:gochecknoglobals // should only check once

func hasAES() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAES
	case "arm64":
		return cpu.ARM64.HasAES
	case "s390x":
		return cpu.S390X.HasAES
	case "ppc64", "ppc64le":
		return cpu.PPC64.IsPOWER8
	default:
		return false
	}
}

// Encrypt encrypts a single block.
func Encrypt(key, plaintext []byte) []byte {
	out := make([]byte, aes.BlockSize)
	newCipher(key).Encrypt(out, plaintext)
	return out
}

// Decrypt decrypts a single block.
func Decrypt(key, ciphertext []byte) []byte {
	out := make([]byte, aes.BlockSize)
	newCipher(key).Decrypt(out, ciphertext)
	return out
}

// CBCEncrypt encrypts block-aligned plaintext in CBC mode without padding.
func CBCEncrypt(key, iv, plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(newCipher(key), iv).CryptBlocks(out, plaintext)
	return out
}

// CBCDecrypt decrypts block-aligned ciphertext in CBC mode without padding.
func CBCDecrypt(key, iv, ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(newCipher(key), iv).CryptBlocks(out, ciphertext)
	return out
}

func newCipher(key []byte) cipher.Block {
	b, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	return b
}
