// Package kat holds published AES-128 known-answer vectors. All values are hex encoded.
package kat

// Block is a single-block AES-128 encryption.
type Block struct {
	Source     string
	Key        string
	Plaintext  string
	Ciphertext string
}

// Blocks are single-block vectors from FIPS 197 and NIST SP 800-38A (ECB-AES128).
//
//nolint:gochecknoglobals // test vectors
var Blocks = []Block{
	{
		Source:     "FIPS 197 Appendix C.1",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		Source:     "FIPS 197 Appendix B",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "3243f6a8885a308d313198a2e0370734",
		Ciphertext: "3925841d02dc09fbdc118597196a0b32",
	},
	{
		Source:     "SP 800-38A F.1.1 block 1",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "6bc1bee22e409f96e93d7e117393172a",
		Ciphertext: "3ad77bb40d7a3660a89ecaf32466ef97",
	},
	{
		Source:     "SP 800-38A F.1.1 block 2",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "ae2d8a571e03ac9c9eb76fac45af8e51",
		Ciphertext: "f5d3d58503b9699de785895a96fdbaaf",
	},
	{
		Source:     "SP 800-38A F.1.1 block 3",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "30c81c46a35ce411e5fbc1191a0a52ef",
		Ciphertext: "43b1cd7f598ece23881b00e3ed030688",
	},
	{
		Source:     "SP 800-38A F.1.1 block 4",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "f69f2445df4f9b17ad2b417be66c3710",
		Ciphertext: "7b0c785e27e8ad3f8223207104725dd4",
	},
	{
		Source:     "all-zero key and block",
		Key:        "00000000000000000000000000000000",
		Plaintext:  "00000000000000000000000000000000",
		Ciphertext: "66e94bd4ef8a2c3b884cfa59ca342b2e",
	},
}

// RoundKey is one entry of an expanded key.
type RoundKey struct {
	Source string
	Key    string
	Round  int
	Value  string
}

// RoundKeys are round keys listed in FIPS 197.
//
//nolint:gochecknoglobals // test vectors
var RoundKeys = []RoundKey{
	{"FIPS 197 Appendix A.1", "2b7e151628aed2a6abf7158809cf4f3c", 0, "2b7e151628aed2a6abf7158809cf4f3c"},
	{"FIPS 197 Appendix A.1", "2b7e151628aed2a6abf7158809cf4f3c", 1, "a0fafe1788542cb123a339392a6c7605"},
	{"FIPS 197 Appendix A.1", "2b7e151628aed2a6abf7158809cf4f3c", 10, "d014f9a8c9ee2589e13f0cc8b6630ca6"},
	{"FIPS 197 Appendix C.1", "000102030405060708090a0b0c0d0e0f", 10, "13111d7fe3944a17f307a78b4d2b30c5"},
}

// CBC is a multi-block CBC-AES128 encryption without padding.
type CBC struct {
	Source     string
	Key        string
	IV         string
	Plaintext  string
	Ciphertext string
}

// CBCs are the CBC-AES128 vectors from NIST SP 800-38A.
//
//nolint:gochecknoglobals // test vectors
var CBCs = []CBC{
	{
		Source: "SP 800-38A F.2.1",
		Key:    "2b7e151628aed2a6abf7158809cf4f3c",
		IV:     "000102030405060708090a0b0c0d0e0f",
		Plaintext: "6bc1bee22e409f96e93d7e117393172a" +
			"ae2d8a571e03ac9c9eb76fac45af8e51" +
			"30c81c46a35ce411e5fbc1191a0a52ef" +
			"f69f2445df4f9b17ad2b417be66c3710",
		Ciphertext: "7649abac8119b246cee98e9b12e9197d" +
			"5086cb9b507219ee95db113a917678b2" +
			"73bed6b8e3c1743b7116e69e22229516" +
			"3ff1caa1681fac09120eca307586e1a7",
	},
}
