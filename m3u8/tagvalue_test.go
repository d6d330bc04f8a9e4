package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSemiParsedValueEmpty(t *testing.T) {
	v := decodeSemiParsedValue(nil)
	assert.Equal(t, SemiEmpty, v.Kind())
}

func TestDecodeSemiParsedValueDecimalIntegerRange(t *testing.T) {
	v := decodeSemiParsedValue([]byte("123@456"))
	assert.Equal(t, SemiDecimalIntegerRange, v.Kind())
	n, o, hasO := v.DecimalIntegerRange()
	assert.EqualValues(t, 123, n)
	assert.EqualValues(t, 456, o)
	assert.True(t, hasO)
}

func TestDecodeSemiParsedValueDecimalIntegerRangeNoOffset(t *testing.T) {
	v := decodeSemiParsedValue([]byte("10"))
	assert.Equal(t, SemiDecimalIntegerRange, v.Kind())
	_, _, hasO := v.DecimalIntegerRange()
	assert.False(t, hasO)
}

func TestDecodeSemiParsedValueTypeEnum(t *testing.T) {
	assert.Equal(t, SemiTypeEnum, decodeSemiParsedValue([]byte("VOD")).Kind())
	assert.Equal(t, SemiTypeEnum, decodeSemiParsedValue([]byte("EVENT")).Kind())
}

func TestDecodeSemiParsedValueFloatWithTitle(t *testing.T) {
	v := decodeSemiParsedValue([]byte("9.009,"))
	assert.Equal(t, SemiFloatWithTitle, v.Kind())
	f, title, hasTitle := v.FloatWithTitle()
	assert.Equal(t, 9.009, f)
	assert.True(t, hasTitle)
	assert.Equal(t, []byte{}, title)
}

func TestDecodeSemiParsedValueFloatNoTitle(t *testing.T) {
	v := decodeSemiParsedValue([]byte("9.009"))
	assert.Equal(t, SemiFloatWithTitle, v.Kind())
	f, _, hasTitle := v.FloatWithTitle()
	assert.Equal(t, 9.009, f)
	assert.False(t, hasTitle)
}

func TestDecodeSemiParsedValueDateTime(t *testing.T) {
	v := decodeSemiParsedValue([]byte("2014-03-05T11:15:00Z"))
	assert.Equal(t, SemiDateTime, v.Kind())
}

func TestDecodeSemiParsedValueDateTimeWithOffsetAndSpaceSeparator(t *testing.T) {
	v := decodeSemiParsedValue([]byte("2014-03-05 11:15:00.123-05:00"))
	assert.Equal(t, SemiDateTime, v.Kind())
}

func TestDecodeSemiParsedValueAttributeList(t *testing.T) {
	v := decodeSemiParsedValue([]byte(`METHOD=AES-128,URI="https://x"`))
	assert.Equal(t, SemiAttributeList, v.Kind())
	assert.Equal(t, 2, v.AttributeList().Len())
}

func TestDecodeSemiParsedValueUnparsedFallback(t *testing.T) {
	v := decodeSemiParsedValue([]byte("!!!not-anything-recognized"))
	assert.Equal(t, SemiUnparsed, v.Kind())
	assert.False(t, v.MalformedAttributeList())
}

func TestDecodeSemiParsedValueMalformedAttributeListFallsThroughButIsFlagged(t *testing.T) {
	// Has a top-level "=" (looks like an attribute list) but the quote is
	// unterminated, so parseAttributeList rejects it; classification still falls
	// through to the remaining shapes, but MalformedAttributeList records that the
	// attribute-list shape was attempted and failed.
	v := decodeSemiParsedValue([]byte(`URI="unterminated`))
	assert.Equal(t, SemiUnparsed, v.Kind())
	assert.True(t, v.MalformedAttributeList())
}
