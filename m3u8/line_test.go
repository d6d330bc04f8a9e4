package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLineBlank(t *testing.T) {
	kind, _, _, _ := scanLine(nil)
	assert.Equal(t, LineBlank, kind)
}

func TestScanLineURI(t *testing.T) {
	kind, _, uri, _ := scanLine([]byte("first.ts"))
	assert.Equal(t, LineURI, kind)
	assert.Equal(t, []byte("first.ts"), uri)
}

func TestScanLineComment(t *testing.T) {
	kind, comment, _, _ := scanLine([]byte("# just a comment"))
	assert.Equal(t, LineComment, kind)
	assert.Equal(t, []byte(" just a comment"), comment)
}

func TestScanLineHashExtNoNameIsComment(t *testing.T) {
	// "#EXT:value" has no name after EXT, so it must be a Comment (section 8).
	kind, comment, _, _ := scanLine([]byte("#EXT:value"))
	assert.Equal(t, LineComment, kind)
	assert.Equal(t, []byte("EXT:value"), comment)
}

func TestScanLineUnknownTagNoValue(t *testing.T) {
	kind, _, _, unk := scanLine([]byte("#EXTM3U"))
	assert.Equal(t, LineUnknownTag, kind)
	assert.Equal(t, []byte("M3U"), unk.Name)
	assert.False(t, unk.HasValue)
}

func TestScanLineUnknownTagWithValue(t *testing.T) {
	kind, _, _, unk := scanLine([]byte("#EXT-X-VERSION:3"))
	assert.Equal(t, LineUnknownTag, kind)
	assert.Equal(t, []byte("-X-VERSION"), unk.Name)
	assert.True(t, unk.HasValue)
	assert.Equal(t, []byte("3"), unk.Value)
}

func TestScanLineEmptyPayloadTag(t *testing.T) {
	// "#EXTINF:" has an empty payload: Empty value, not absent.
	kind, _, _, unk := scanLine([]byte("#EXTINF:"))
	assert.Equal(t, LineUnknownTag, kind)
	assert.True(t, unk.HasValue)
	assert.Equal(t, []byte{}, unk.Value)
}

func TestSplitLineHandlesCRLFAndFinalLineWithoutTerminator(t *testing.T) {
	data := []byte("a\r\nb\nc")
	line, next, ok := splitLine(data, 0)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), line)

	line, next, ok = splitLine(data, next)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), line)

	line, next, ok = splitLine(data, next)
	assert.True(t, ok)
	assert.Equal(t, []byte("c"), line)
	assert.Equal(t, len(data), next)

	_, _, ok = splitLine(data, next)
	assert.False(t, ok)
}
