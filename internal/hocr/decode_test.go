package hocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAllValidInput(t *testing.T) {
	out, err := DecodeAll(strings.NewReader("héllo wörld"))
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", out)
}

func TestDecodeAllReplacesInvalidBytes(t *testing.T) {
	out, err := DecodeAll(strings.NewReader("ok\xffok"))
	require.NoError(t, err)
	assert.Equal(t, "ok�ok", out)
}

func TestDecodeAllEmpty(t *testing.T) {
	out, err := DecodeAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, out)
}
