package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/cbc"
	"github.com/codahale/aes128/internal/crosscheck"
	"github.com/codahale/aes128/internal/kat"
)

// selfTest runs every known-answer vector through the cipher and CBC mode and compares the cipher with the standard
// library's AES.
func selfTest(log *slog.Logger) error {
	log.Info("starting self test", "hardware_aes", crosscheck.Hardware)

	for _, v := range kat.Blocks {
		if err := checkBlock(v); err != nil {
			return err
		}
		log.Debug("block vector passed", "source", v.Source)
	}

	for _, v := range kat.RoundKeys {
		if err := checkRoundKey(v); err != nil {
			return err
		}
		log.Debug("round key vector passed", "source", v.Source, "round", v.Round)
	}

	for _, v := range kat.CBCs {
		if err := checkCBC(v); err != nil {
			return err
		}
		log.Debug("CBC vector passed", "source", v.Source)
	}

	return nil
}

func checkBlock(v kat.Block) error {
	key, pt, want, err := decode(v.Key, v.Plaintext, v.Ciphertext)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	ks, err := aes128.ExpandKey(key)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	ct, err := aes128.EncryptBlock(ks, nil, pt)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}
	if !bytes.Equal(ct, want) {
		return fmt.Errorf("%s: EncryptBlock = %x, want %x", v.Source, ct, want)
	}
	if ref := crosscheck.Encrypt(key, pt); !bytes.Equal(ct, ref) {
		return fmt.Errorf("%s: EncryptBlock = %x, standard library = %x", v.Source, ct, ref)
	}

	got, err := aes128.DecryptBlock(ks, nil, ct)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}
	if !bytes.Equal(got, pt) {
		return fmt.Errorf("%s: DecryptBlock = %x, want %x", v.Source, got, pt)
	}

	return nil
}

func checkRoundKey(v kat.RoundKey) error {
	key, want, _, err := decode(v.Key, v.Value, "")
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	ks, err := aes128.ExpandKey(key)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	if rk := ks.RoundKey(v.Round); !bytes.Equal(rk[:], want) {
		return fmt.Errorf("%s: round key %d = %x, want %x", v.Source, v.Round, rk, want)
	}
	return nil
}

func checkCBC(v kat.CBC) error {
	key, pt, want, err := decode(v.Key, v.Plaintext, v.Ciphertext)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}
	iv, err := hex.DecodeString(v.IV)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	ks, err := aes128.ExpandKey(key)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}

	// The vector is unpadded; the final block of our output is the encrypted padding.
	ct, err := cbc.Encrypt(ks, iv, nil, pt)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}
	if !bytes.Equal(ct[:len(want)], want) {
		return fmt.Errorf("%s: cbc.Encrypt = %x, want %x", v.Source, ct[:len(want)], want)
	}

	got, err := cbc.DecryptParallel(ks, iv, nil, ct, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Source, err)
	}
	if !bytes.Equal(got, pt) {
		return fmt.Errorf("%s: cbc.DecryptParallel = %x, want %x", v.Source, got, pt)
	}

	return nil
}

func decode(a, b, c string) (x, y, z []byte, err error) {
	if x, err = hex.DecodeString(a); err != nil {
		return nil, nil, nil, err
	}
	if y, err = hex.DecodeString(b); err != nil {
		return nil, nil, nil, err
	}
	if z, err = hex.DecodeString(c); err != nil {
		return nil, nil, nil, err
	}
	return x, y, z, nil
}
