package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttributeListOrderingAndKinds(t *testing.T) {
	list, ok := parseAttributeList([]byte("RESOLUTION=320x180,LAYOUT=5x4,DURATION=3.003"))
	assert.True(t, ok)
	ordered := list.Ordered()
	assert.Len(t, ordered, 3)

	assert.Equal(t, "RESOLUTION", string(ordered[0].Name))
	assert.Equal(t, AttrDecimalResolution, ordered[0].Value.Kind())
	w, h := ordered[0].Value.Resolution()
	assert.EqualValues(t, 320, w)
	assert.EqualValues(t, 180, h)

	assert.Equal(t, "LAYOUT", string(ordered[1].Name))
	lw, lh := ordered[1].Value.Resolution()
	assert.EqualValues(t, 5, lw)
	assert.EqualValues(t, 4, lh)

	assert.Equal(t, "DURATION", string(ordered[2].Name))
	assert.Equal(t, AttrDecimalFloatingPoint, ordered[2].Value.Kind())
	assert.Equal(t, 3.003, ordered[2].Value.Float())

	v, found := list.Get("RESOLUTION")
	assert.True(t, found)
	assert.Equal(t, AttrDecimalResolution, v.Kind())
}

func TestParseAttributeListDuplicateKeys(t *testing.T) {
	list, ok := parseAttributeList([]byte("A=1,A=2"))
	assert.True(t, ok)

	ordered := list.Ordered()
	assert.Len(t, ordered, 2)
	assert.EqualValues(t, 1, ordered[0].Value.DecimalInteger())
	assert.EqualValues(t, 2, ordered[1].Value.DecimalInteger())

	v, found := list.Get("A")
	assert.True(t, found)
	assert.EqualValues(t, 2, v.DecimalInteger())
}

func TestParseAttributeListQuotedStringWithComma(t *testing.T) {
	list, ok := parseAttributeList([]byte(`CHARACTERISTICS="public.accessibility,public.easy-to-read"`))
	assert.True(t, ok)
	assert.Equal(t, 1, list.Len())
	v, _ := list.Get("CHARACTERISTICS")
	assert.Equal(t, AttrQuotedString, v.Kind())
	assert.Equal(t, "public.accessibility,public.easy-to-read", string(v.QuotedString()))
}

func TestParseAttributeListNoEqualsIsError(t *testing.T) {
	_, ok := parseAttributeList([]byte("JUSTANAME"))
	assert.False(t, ok)
}

func TestParseAttributeListUnterminatedQuoteIsError(t *testing.T) {
	_, ok := parseAttributeList([]byte(`URI="unterminated`))
	assert.False(t, ok)
}

func TestDecodeAttributeValueHexadecimalSequence(t *testing.T) {
	v, ok := decodeAttributeValue([]byte("0xFC002F"))
	assert.True(t, ok)
	assert.Equal(t, AttrHexadecimalSequence, v.Kind())
	digits, upper := v.HexadecimalSequence()
	assert.Equal(t, "FC002F", string(digits))
	assert.False(t, upper)
}

func TestDecodeAttributeValueBareZeroXWithZeroDigitsIsRejected(t *testing.T) {
	// "0x" matches the hex-sequence prefix but carries zero digits, so it is
	// rejected rather than falling through to UnquotedString.
	_, ok := decodeAttributeValue([]byte("0x"))
	assert.False(t, ok)
}

func TestDecodeAttributeValueMalformedHexPrefixIsParseError(t *testing.T) {
	_, ok := decodeAttributeValue([]byte("0xZZ"))
	assert.False(t, ok)
}

func TestDecodeAttributeValueSignedFloat(t *testing.T) {
	v, ok := decodeAttributeValue([]byte("-1.5"))
	assert.True(t, ok)
	assert.Equal(t, AttrSignedDecimalFloatingPoint, v.Kind())
	assert.Equal(t, -1.5, v.Float())
}

func TestDecodeAttributeValueUnquotedFallback(t *testing.T) {
	v, ok := decodeAttributeValue([]byte("AES-128"))
	assert.True(t, ok)
	assert.Equal(t, AttrUnquotedString, v.Kind())
}

func TestDecodeAttributeValueDigitPrefixedNonNumericFallsThroughToUnquoted(t *testing.T) {
	// Open Question in SPEC_FULL.md/DESIGN.md: values like "12abc" are not a valid
	// decimal-integer/float, so they fall through to UnquotedString.
	v, ok := decodeAttributeValue([]byte("12abc"))
	assert.True(t, ok)
	assert.Equal(t, AttrUnquotedString, v.Kind())
}
