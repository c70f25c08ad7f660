package cbc_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/aes128/cbc"
)

func TestPad(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"", "\x04\x04\x04\x04"},
		{"a", "a\x03\x03\x03"},
		{"abc", "abc\x01"},
		{"abcd", "abcd\x04\x04\x04\x04"},
		{"abcde", "abcde\x03\x03\x03"},
	}

	for _, tt := range tests {
		if got := cbc.Pad([]byte("x"), []byte(tt.data), 4); !bytes.Equal(got, []byte("x"+tt.want)) {
			t.Errorf("Pad(%q) = %q, want = %q", tt.data, got, "x"+tt.want)
		}

		got, err := cbc.Unpad([]byte(tt.want), 4)
		if err != nil {
			t.Errorf("Unpad(%q): %v", tt.want, err)
		} else if string(got) != tt.data {
			t.Errorf("Unpad(%q) = %q, want = %q", tt.want, got, tt.data)
		}
	}
}

func TestPad_InvalidBlockSize(t *testing.T) {
	for _, n := range []int{0, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Pad(blockSize=%d) should have panicked", n)
				}
			}()
			cbc.Pad(nil, nil, n)
		}()
	}
}

func TestUnpad_Invalid(t *testing.T) {
	for _, data := range []string{
		"",
		"abc",
		"abc\x00",
		"abc\x05",
		"ab\x01\x02",
		"a\x02\x03\x03",
	} {
		if got, err := cbc.Unpad([]byte(data), 4); !errors.Is(err, cbc.ErrInvalidPadding) {
			t.Errorf("Unpad(%q) = %q, %v, want = %v", data, got, err, cbc.ErrInvalidPadding)
		}
	}
}
