// Package cryptox implements salted password hashing for stored credentials.
//
// A hash record has the form hex(salt) + "$" + hex(key), where key is
// PBKDF2-HMAC-SHA256 of the password over a random 16-byte salt.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the number of random salt bytes per record.
	SaltSize = 16
	// KeySize is the derived key length in bytes.
	KeySize = 32
	// Iterations is the PBKDF2 cost parameter.
	Iterations = 120_000

	separator = "$"
)

func deriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha256.New)
}

// HashPassword returns a new hash record for password. Every call uses a
// fresh salt, so two records for the same password differ.
func HashPassword(password string) (string, error) {
	salt := common.GenerateRandByteArray(SaltSize)
	key := deriveKey(password, salt, Iterations)
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches record. A malformed record
// (no separator, bad hex, empty salt or key) never matches.
func VerifyPassword(password, record string) bool {
	saltHex, keyHex, ok := strings.Cut(record, separator)
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil || len(expected) == 0 {
		return false
	}

	current := deriveKey(password, salt, Iterations)
	return subtle.ConstantTimeCompare(current, expected) == 1
}
