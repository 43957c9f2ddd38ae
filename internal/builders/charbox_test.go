package builders

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/hocrkit/internal/hocr"
)

func TestCharBoxBuilderParams(t *testing.T) {
	b := NewCharBoxBuilder()

	assert.Equal(t, "character boxes", b.Name())
	assert.Equal(t, []string{"box"}, b.Extensions())
	assert.Equal(t, []string{"--psm", "1"}, b.TesseractFlags())
	assert.Equal(t, []string{"batch.nochop", "makebox"}, b.TesseractConfigs())
	assert.Empty(t, b.CuneiformArgs())
	assert.Equal(t, []Capability{CapabilityCharBoxes}, b.RequiredCapabilities())
}

func TestCharBoxBuilderRead(t *testing.T) {
	b := NewCharBoxBuilder()
	boxes, err := b.Read(strings.NewReader("H 12 34 56 78 0\ni 60 34 64 78 0\n"))
	require.NoError(t, err)

	require.Len(t, boxes, 2)
	assert.Equal(t, "H", boxes[0].Content)
	assert.Equal(t, hocr.Rect{MinX: 12, MinY: 34, MaxX: 56, MaxY: 78}, boxes[0].Position)
}

func TestCharBoxBuilderWriteReadRoundTrip(t *testing.T) {
	in := []hocr.Box{
		{Content: "a", Position: hocr.Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}},
		{Content: "b", Position: hocr.Rect{MinX: 5, MinY: 2, MaxX: 7, MaxY: 4}},
	}

	b := NewCharBoxBuilder()
	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf, in))

	out, err := b.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCharBoxBuilderIncremental(t *testing.T) {
	b := NewCharBoxBuilder()
	b.StartLine(hocr.Rect{})
	b.AddWord("x", hocr.Rect{MinX: 0, MinY: 0, MaxX: 8, MaxY: 12}, 99)
	b.EndLine()

	out := b.Output()
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].Content)
	assert.Equal(t, 0, out[0].Confidence, "box files carry no confidence")
}
