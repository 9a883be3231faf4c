package common

import (
	"crypto/rand"
	"strings"
)

// GenerateRandByteArray returns size bytes read from crypto/rand.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray overwrites b with zeros. Nil is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// MaskCardNumber returns the display form of a card number that reveals only
// its last four digits, e.g. "**** **** **** 1234".
func MaskCardNumber(number string) string {
	tail := number
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return strings.Repeat("**** ", 3) + tail
}
