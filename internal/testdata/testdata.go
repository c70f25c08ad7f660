// Package testdata provides a deterministic source of test inputs for seeding fuzz corpora.
package testdata

import "crypto/sha3"

// A DRBG is a deterministic random bit generator built on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG seeded with the given domain string. Two DRBGs with the same domain produce the same output.
func New(domain string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(domain))
	return &DRBG{h: h}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}
