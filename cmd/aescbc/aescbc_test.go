package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/codahale/aes128"
	"github.com/codahale/aes128/cbc"
	"github.com/codahale/aes128/internal/testdata"
)

const testKey = "2b7e151628aed2a6abf7158809cf4f3c"

func TestRun_FixedIV(t *testing.T) {
	opts, err := parseOptions(testKey, "000102030405060708090a0b0c0d0e0f", false, 1)
	if err != nil {
		t.Fatal(err)
	}

	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	var out bytes.Buffer
	if err := run(opts, bytes.NewReader(plaintext), &out, nil); err != nil {
		t.Fatal(err)
	}

	// IV, SP 800-38A F.2.1 block 1, then the padding block.
	if got, want := hex.EncodeToString(out.Bytes()[:32]), "000102030405060708090a0b0c0d0e0f7649abac8119b246cee98e9b12e9197d"; got != want {
		t.Errorf("output = %s, want = %s", got, want)
	}
	if got, want := out.Len(), 48; got != want {
		t.Errorf("len(output) = %d, want = %d", got, want)
	}
}

func TestRun_RoundTrip(t *testing.T) {
	drbg := testdata.New("aescbc round trip")
	plaintext := []byte("Hi There, this is a sample text to encrypt.")

	enc, err := parseOptions(testKey, "", false, 0)
	if err != nil {
		t.Fatal(err)
	}

	var ciphertext bytes.Buffer
	if err := run(enc, bytes.NewReader(plaintext), &ciphertext, bytes.NewReader(drbg.Data(aes128.BlockSize))); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 4, math.MaxInt} {
		dec, err := parseOptions(testKey, "", true, workers)
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		if err := run(dec, bytes.NewReader(ciphertext.Bytes()), &out, nil); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got, want := out.String(), string(plaintext); got != want {
			t.Errorf("workers=%d: decrypted = %q, want = %q", workers, got, want)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	dec, err := parseOptions(testKey, "", true, 1)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(dec, strings.NewReader("short"), &out, nil); !errors.Is(err, errShortInput) {
		t.Errorf("run(short input) err = %v, want = %v", err, errShortInput)
	}
	if err := run(dec, bytes.NewReader(make([]byte, 40)), &out, nil); !errors.Is(err, cbc.ErrInvalidCiphertext) {
		t.Errorf("run(unaligned input) err = %v, want = %v", err, cbc.ErrInvalidCiphertext)
	}

	enc, err := parseOptions(testKey, "", false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(enc, strings.NewReader("hello"), &out, strings.NewReader("no")); err == nil {
		t.Error("run(short random source) should have failed")
	}
	if out.Len() != 0 {
		t.Errorf("failed runs wrote %d bytes", out.Len())
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		key, iv string
		decrypt bool
		want    error
	}{
		{"short key", "2b7e", "", false, aes128.ErrInvalidKeyLength},
		{"long key", testKey + "00", "", false, aes128.ErrInvalidKeyLength},
		{"short IV", testKey, "0001", false, cbc.ErrInvalidIV},
		{"bad hex", "zz", "", false, hex.InvalidByteError('z')},
	}

	for _, tt := range tests {
		if _, err := parseOptions(tt.key, tt.iv, tt.decrypt, 1); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want = %v", tt.name, err, tt.want)
		}
	}

	if _, err := parseOptions(testKey, "000102030405060708090a0b0c0d0e0f", true, 1); err == nil {
		t.Error("-iv with -d should have failed")
	}
}

func TestSelfTest(t *testing.T) {
	if err := selfTest(slog.New(slog.DiscardHandler)); err != nil {
		t.Fatal(err)
	}
}
