package fmtcmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUnix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already unix", "a\nb\n", "a\nb\n"},
		{"windows", "a\r\nb\r\n", "a\nb\n"},
		{"legacy mac", "a\rb\r", "a\nb\n"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToUnix(tt.in))
		})
	}
}

func TestCommandRoundTrip(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on cat")
	}

	f := Command("cat")
	out, err := f("hello\nworld\n")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", out)
}

func TestCommandFailure(t *testing.T) {
	t.Parallel()

	f := Command("definitely-not-a-real-formatter-binary")
	_, err := f("input")
	assert.Error(t, err)
}
