// Command aescbc encrypts or decrypts standard input with AES-128 in CBC mode and writes the result to standard output.
//
// Encrypted output is the IV followed by the padded ciphertext, and decryption expects the same layout.
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/cbc"
	"github.com/codahale/aes128/internal/crosscheck"
)

var errShortInput = errors.New("input is shorter than an IV")

func main() {
	var (
		key      = flag.String("key", "", "the AES-128 key, as 32 hex digits")
		iv       = flag.String("iv", "", "the IV to encrypt with, as 32 hex digits (random if empty)")
		decrypt  = flag.Bool("d", false, "decrypt instead of encrypt")
		workers  = flag.Int("workers", 1, "the number of goroutines to decrypt with")
		selftest = flag.Bool("selftest", false, "run the known-answer self test and exit")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	if *selftest {
		if err := selfTest(log); err != nil {
			log.Error("self test failed", "err", err)
			os.Exit(1)
		}
		log.Info("self test passed")
		return
	}

	opts, err := parseOptions(*key, *iv, *decrypt, *workers)
	if err != nil {
		log.Error("invalid arguments", "err", err)
		flag.Usage()
		os.Exit(2)
	}

	// The table-driven cipher never uses AES instructions; note when the CPU has them so slow runs are explained.
	log.Debug("starting", "decrypt", opts.decrypt, "workers", opts.workers, "hardware_aes", crosscheck.Hardware)

	if err := run(opts, os.Stdin, os.Stdout, rand.Reader); err != nil {
		log.Error("failed", "decrypt", opts.decrypt, "err", err)
		os.Exit(1)
	}
}

type options struct {
	key     []byte
	iv      []byte // nil for a random IV
	decrypt bool
	workers int
}

func parseOptions(keyHex, ivHex string, decrypt bool, workers int) (options, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return options{}, fmt.Errorf("decoding key: %w", err)
	}
	if len(key) != aes128.KeySize {
		return options{}, fmt.Errorf("decoding key: %w", aes128.ErrInvalidKeyLength)
	}

	var iv []byte
	if ivHex != "" {
		if decrypt {
			return options{}, errors.New("-iv cannot be used with -d; the IV is read from the input")
		}

		iv, err = hex.DecodeString(ivHex)
		if err != nil {
			return options{}, fmt.Errorf("decoding IV: %w", err)
		}
		if len(iv) != aes128.BlockSize {
			return options{}, fmt.Errorf("decoding IV: %w", cbc.ErrInvalidIV)
		}
	}

	return options{key: key, iv: iv, decrypt: decrypt, workers: workers}, nil
}

func run(opts options, in io.Reader, out io.Writer, random io.Reader) error {
	ks, err := aes128.ExpandKey(opts.key)
	if err != nil {
		return fmt.Errorf("expanding key: %w", err)
	}
	defer ks.Clear()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var result []byte
	if opts.decrypt {
		result, err = decryptInput(ks, data, opts.workers)
	} else {
		result, err = encryptInput(ks, data, opts.iv, random)
	}
	if err != nil {
		return err
	}

	if _, err := out.Write(result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func encryptInput(ks *aes128.Schedule, plaintext, iv []byte, random io.Reader) ([]byte, error) {
	if iv == nil {
		iv = make([]byte, aes128.BlockSize)
		if _, err := io.ReadFull(random, iv); err != nil {
			return nil, fmt.Errorf("generating IV: %w", err)
		}
	}

	ct, err := cbc.Encrypt(ks, iv, bytes.Clone(iv), plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}
	return ct, nil
}

func decryptInput(ks *aes128.Schedule, data []byte, workers int) ([]byte, error) {
	if len(data) < aes128.BlockSize {
		return nil, errShortInput
	}
	iv, ciphertext := data[:aes128.BlockSize], data[aes128.BlockSize:]

	var (
		pt  []byte
		err error
	)
	if workers > 1 {
		pt, err = cbc.DecryptParallel(ks, iv, nil, ciphertext, workers)
	} else {
		pt, err = cbc.Decrypt(ks, iv, ciphertext[:0], ciphertext)
	}
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	return pt, nil
}
