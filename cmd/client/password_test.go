package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stdinFile returns a regular (non-terminal) file holding content.
func stdinFile(t *testing.T, content string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadPasswordLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "newline terminated", input: "pw123\nrest", want: "pw123"},
		{name: "crlf", input: "pw123\r\n", want: "pw123"},
		{name: "no trailing newline", input: "pw123", want: "pw123"},
		{name: "spaces are kept", input: " pw 123 \n", want: " pw 123 "},
		{name: "empty line", input: "\n", wantErr: errEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readPasswordLine(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPasswordLine_EmptyInput(t *testing.T) {
	_, err := readPasswordLine(strings.NewReader(""))
	assert.Error(t, err)
}

func TestPasswordSource_EnvironmentWins(t *testing.T) {
	t.Setenv(passwordEnv, "from-env")

	got, err := newPasswordSource(stdinFile(t, "from-stdin\n"), &bytes.Buffer{})()

	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestPasswordSource_PipedStdin(t *testing.T) {
	t.Setenv(passwordEnv, "")
	var prompt bytes.Buffer

	got, err := newPasswordSource(stdinFile(t, "from-stdin\n"), &prompt)()

	require.NoError(t, err)
	assert.Equal(t, "from-stdin", got)
	assert.Empty(t, prompt.String(), "no prompt without a terminal")
}
