package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dot finishes", "a\nb\n.\n", "a\nb"},
		{"CRLF", "a\r\nb\r\n.\r\n", "a\nb"},
		{"immediate dot", ".\n", ""},
		{"EOF without dot", "milk\neggs", "milk\neggs"},
		{"blank lines and indentation kept", "  - milk\n\n  - eggs\n.\n", "  - milk\n\n  - eggs"},
		{"dot inside a line is text", "see you.\n .\n.\n", "see you.\n ."},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.input), "Note", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetMultiline_LeavesRestOfInput(t *testing.T) {
	r := rdr("  - milk\n\n  - eggs\n.\nsave\n")
	var out bytes.Buffer
	got, err := GetMultiline(r, "Note", &out)
	require.NoError(t, err)
	assert.Equal(t, "  - milk\n\n  - eggs", got)

	rest, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "save\n", rest)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, Confirm(rdr(tt.input), "Sure?", &out))
			assert.Contains(t, out.String(), "Sure? [y/N]")
		})
	}
}
