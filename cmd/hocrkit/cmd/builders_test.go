package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildersCommandText(t *testing.T) {
	out, err := executeCommand(t, "builders")
	require.NoError(t, err)

	assert.Contains(t, out, "text (raw text)")
	assert.Contains(t, out, "word (word boxes)")
	assert.Contains(t, out, "line (line boxes)")
	assert.Contains(t, out, "char (character boxes)")
	assert.Contains(t, out, "--psm 3")
	assert.Contains(t, out, "batch.nochop makebox")
	assert.Contains(t, out, "requires:          char-boxes")
}

func TestBuildersCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "builders", "--format", "json")
	require.NoError(t, err)

	var infos []builderInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 4)

	assert.Equal(t, "text", infos[0].Kind)
	assert.Equal(t, []string{"txt"}, infos[0].Extensions)
	assert.Equal(t, []string{"--psm", "1"}, infos[1].TesseractFlags)
	assert.Equal(t, []string{"hocr"}, infos[1].TesseractConfigs)
	assert.Equal(t, "char", infos[3].Kind)
	assert.Equal(t, []string{"char-boxes"}, infos[3].Capabilities)
}
