// Package numbers generates account and card numbers that are unique in the
// store. A number is a fixed decimal prefix followed by random digits; the
// caller supplies the uniqueness lookup so it can run on its own transaction.
package numbers

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/bankapp/internal/common"
)

// DefaultAttempts bounds the number of candidates drawn per Generate call.
const DefaultAttempts = 1000

// Format describes the shape of a generated number.
type Format struct {
	Prefix string
	Length int
}

var (
	// AccountNumber is a 20-digit personal account number.
	AccountNumber = Format{Prefix: "40817", Length: 20}
	// CardNumber is a 16-digit card number.
	CardNumber = Format{Prefix: "2200", Length: 16}
)

// Validate fails with common.ErrInvalidConfiguration when the format leaves
// no room for random digits.
func (f Format) Validate() error {
	if f.Length <= len(f.Prefix) {
		return fmt.Errorf("%w: length %d, prefix %q", common.ErrInvalidConfiguration, f.Length, f.Prefix)
	}
	for _, c := range f.Prefix {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: non-digit prefix %q", common.ErrInvalidConfiguration, f.Prefix)
		}
	}
	return nil
}

// ExistsFunc reports whether candidate is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generator draws candidates from a random source. It is safe for
// concurrent use.
type Generator struct {
	mu       sync.Mutex
	rnd      io.Reader
	attempts int
}

// NewGenerator returns a Generator reading from rnd. A nil rnd selects
// crypto/rand, a non-positive attempts selects DefaultAttempts.
func NewGenerator(rnd io.Reader, attempts int) *Generator {
	if rnd == nil {
		rnd = rand.Reader
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Generator{rnd: rnd, attempts: attempts}
}

// Generate returns the first candidate of format f for which exists reports
// false. It returns common.ErrGenerationExhausted when every attempt collides.
func (g *Generator) Generate(ctx context.Context, f Format, exists ExistsFunc) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	for i := 0; i < g.attempts; i++ {
		candidate, err := g.candidate(f)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("uniqueness lookup: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %d attempts for prefix %s", common.ErrGenerationExhausted, g.attempts, f.Prefix)
}

func (g *Generator) candidate(f Format) (string, error) {
	digits, err := g.randomDigits(f.Length - len(f.Prefix))
	if err != nil {
		return "", err
	}
	return f.Prefix + digits, nil
}

// randomDigits draws n uniform decimal digits. Bytes >= 250 are rejected so
// that byte % 10 has no modulo bias.
func (g *Generator) randomDigits(n int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]byte, 0, n)
	var b [1]byte
	for len(out) < n {
		if _, err := io.ReadFull(g.rnd, b[:]); err != nil {
			return "", fmt.Errorf("random source: %w", err)
		}
		if b[0] >= 250 {
			continue
		}
		out = append(out, '0'+b[0]%10)
	}
	return string(out), nil
}
