package numbers

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroThenRandom yields zero bytes for the first n bytes, then crypto/rand.
type zeroThenRandom struct {
	mu sync.Mutex
	n  int
}

func (r *zeroThenRandom) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range p {
		if r.n > 0 {
			p[i] = 0
			r.n--
			continue
		}
		if _, err := rand.Read(p[i : i+1]); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

func never(context.Context, string) (bool, error) { return false, nil }

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func TestGenerate_Shapes(t *testing.T) {
	g := NewGenerator(nil, 0)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		acc, err := g.Generate(ctx, AccountNumber, never)
		require.NoError(t, err)
		assert.Len(t, acc, 20)
		assert.True(t, strings.HasPrefix(acc, "40817"), acc)
		assert.True(t, isDigits(acc), acc)

		card, err := g.Generate(ctx, CardNumber, never)
		require.NoError(t, err)
		assert.Len(t, card, 16)
		assert.True(t, strings.HasPrefix(card, "2200"), card)
		assert.True(t, isDigits(card), card)
	}
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	// 0xFF is always rejected, so the generator must keep reading
	r := io.MultiReader(constReader(0xFF).limit(7), constReader(3))
	g := NewGenerator(r, 1)

	got, err := g.Generate(context.Background(), Format{Prefix: "9", Length: 4}, never)
	require.NoError(t, err)
	assert.Equal(t, "9333", got)
}

func (c constReader) limit(n int64) io.Reader { return io.LimitReader(c, n) }

func TestGenerate_RetriesOnCollision(t *testing.T) {
	g := NewGenerator(&zeroThenRandom{n: 12 * 3}, 10)

	taken := map[string]bool{"2200000000000000": true}
	calls := 0
	exists := func(_ context.Context, c string) (bool, error) {
		calls++
		return taken[c], nil
	}

	got, err := g.Generate(context.Background(), CardNumber, exists)
	require.NoError(t, err)
	assert.NotEqual(t, "2200000000000000", got)
	assert.GreaterOrEqual(t, calls, 4, "three zero candidates must have been rejected")
}

func TestGenerate_Exhausted(t *testing.T) {
	g := NewGenerator(constReader(0), 5)

	calls := 0
	always := func(context.Context, string) (bool, error) { calls++; return true, nil }

	_, err := g.Generate(context.Background(), AccountNumber, always)
	require.ErrorIs(t, err, common.ErrGenerationExhausted)
	assert.Equal(t, 5, calls)
}

func TestGenerate_InvalidConfiguration(t *testing.T) {
	g := NewGenerator(nil, 0)
	called := false
	exists := func(context.Context, string) (bool, error) { called = true; return false, nil }

	for _, f := range []Format{
		{Prefix: "12345", Length: 5},
		{Prefix: "12345", Length: 3},
		{Prefix: "", Length: 0},
		{Prefix: "22a", Length: 10},
	} {
		_, err := g.Generate(context.Background(), f, exists)
		require.ErrorIs(t, err, common.ErrInvalidConfiguration, "format %+v", f)
	}
	assert.False(t, called, "lookup must not run for an invalid format")
}

func TestGenerate_LookupErrorAborts(t *testing.T) {
	g := NewGenerator(nil, 0)
	boom := errors.New("db down")

	_, err := g.Generate(context.Background(), CardNumber, func(context.Context, string) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestGenerate_RandomSourceError(t *testing.T) {
	g := NewGenerator(io.LimitReader(constReader(1), 2), 3)

	_, err := g.Generate(context.Background(), CardNumber, never)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random source")
}
