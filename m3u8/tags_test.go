package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfNewWithEmptyTitleOmitsTrailingComma(t *testing.T) {
	inf := NewInf(9.009, "")
	assert.True(t, inf.IsMutated())
	assert.Equal(t, "#EXTINF:9.009", string(inf.Line()))
}

func TestInfNewWithTitle(t *testing.T) {
	inf := NewInf(9.009, "some title")
	assert.Equal(t, "#EXTINF:9.009,some title", string(inf.Line()))
}

func TestInfParsedIsPristineUntilMutated(t *testing.T) {
	u := UnknownTag{Name: []byte("INF"), Value: []byte("9.009,old"), HasValue: true, raw: []byte("#EXTINF:9.009,old")}
	inf, err := tryFromInf(u)
	require.NoError(t, err)
	assert.False(t, inf.IsMutated())
	assert.Equal(t, "#EXTINF:9.009,old", string(inf.Line()))

	inf.SetDuration(10)
	assert.True(t, inf.IsMutated())
	assert.Equal(t, "#EXTINF:10,old", string(inf.Line()))
}

func TestInfParsedEmptyValueIsValidationError(t *testing.T) {
	_, err := tryFromInf(UnknownTag{Name: []byte("INF"), HasValue: false})
	assert.Error(t, err)
}

func TestInfParsedWrongShapeIsValidationError(t *testing.T) {
	u := UnknownTag{Name: []byte("INF"), Value: []byte("METHOD=AES-128"), HasValue: true, raw: []byte("#EXTINF:METHOD=AES-128")}
	_, err := tryFromInf(u)
	assert.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestKeyMutationRoundTrip(t *testing.T) {
	raw := []byte(`#EXT-X-KEY:METHOD=AES-128,URI="https://example.com/key",IV=0x0123456789ABCDEF0123456789ABCDEF`)
	u := UnknownTag{
		Name:     []byte("-X-KEY"),
		Value:    raw[len("#EXT-X-KEY:"):],
		HasValue: true,
		raw:      raw,
	}
	key, err := tryFromKey(u)
	require.NoError(t, err)
	assert.False(t, key.IsMutated())
	assert.Equal(t, "AES-128", key.Method())
	uri, hasURI := key.URI()
	assert.True(t, hasURI)
	assert.Equal(t, "https://example.com/key", uri)
	iv, hasIV := key.IV()
	assert.True(t, hasIV)
	assert.Equal(t, "0123456789ABCDEF0123456789ABCDEF", string(iv))
	assert.Equal(t, string(raw), string(key.Line()))

	key.SetMethod("NONE")
	assert.True(t, key.IsMutated())
	assert.Equal(t, `#EXT-X-KEY:METHOD=NONE,URI="https://example.com/key",IV=0x0123456789ABCDEF0123456789ABCDEF`, string(key.Line()))
}

func TestKeyMissingMethodIsValidationError(t *testing.T) {
	u := UnknownTag{Name: []byte("-X-KEY"), Value: []byte(`URI="https://x"`), HasValue: true, raw: []byte(`#EXT-X-KEY:URI="https://x"`)}
	_, err := tryFromKey(u)
	assert.Error(t, err)
}

func TestKeyMalformedAttributeListReportsAttributeListError(t *testing.T) {
	// The unterminated quote means this looks like an attribute list (it has a
	// top-level "=") but fails to tokenize; it must be reported as an
	// AttrErrAttributeList, not silently demoted to some other shape.
	raw := []byte(`#EXT-X-KEY:METHOD=AES-128,URI="unterminated`)
	u := UnknownTag{Name: []byte("-X-KEY"), Value: raw[len("#EXT-X-KEY:"):], HasValue: true, raw: raw}
	_, err := tryFromKey(u)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrWrapped, verr.Kind)

	var aerr *ParseAttributeValueError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AttrErrAttributeList, aerr.Expected)
}

func TestByterangeMutationRoundTrip(t *testing.T) {
	u := UnknownTag{Name: []byte("-X-BYTERANGE"), Value: []byte("1024@512"), HasValue: true, raw: []byte("#EXT-X-BYTERANGE:1024@512")}
	br, err := tryFromByterange(u)
	require.NoError(t, err)
	assert.EqualValues(t, 1024, br.Length())
	offset, hasOffset := br.Offset()
	assert.True(t, hasOffset)
	assert.EqualValues(t, 512, offset)

	br.ClearOffset()
	assert.True(t, br.IsMutated())
	assert.Equal(t, "#EXT-X-BYTERANGE:1024", string(br.Line()))
}
