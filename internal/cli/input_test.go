package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw func(int) ([]byte, error)) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	if pw != nil {
		readPassword = pw
	}
	t.Cleanup(func() {
		isTerminal = origTerm
		readPassword = origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "alice\n", "alice"},
		{"trimmed", "  alice \r\n", "alice"},
		{"last line without newline", "lastline", "lastline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tt.input), "Enter login", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter login\n> ", out.String())
		})
	}
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Enter login", &out)
	require.Error(t, err)
}

func TestGetPassword_Piped(t *testing.T) {
	stubTerminal(t, false, nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr(" s3cret \nnext\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, " s3cret ", string(pw), "piped passwords keep inner spaces")
	assert.Equal(t, "Enter password: ", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("hidden"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr("not used\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "hidden", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}
