package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParsingOptionsDefaultsAllEnabled(t *testing.T) {
	o := NewParsingOptions()
	assert.True(t, o.IsEnabled(TagM3u))
	assert.True(t, o.IsEnabled(TagInf))
	assert.True(t, o.IsEnabled(TagContentSteering))
}

func TestLookupTagNameKnownAndUnknown(t *testing.T) {
	tn, ok := lookupTagName([]byte("INF"))
	assert.True(t, ok)
	assert.Equal(t, TagInf, tn)

	tn, ok = lookupTagName([]byte("-X-VERSION"))
	assert.True(t, ok)
	assert.Equal(t, TagVersion, tn)

	_, ok = lookupTagName([]byte("-X-NOT-A-REAL-TAG"))
	assert.False(t, ok)
}

func TestParsingOptionsBuilderDisableAll(t *testing.T) {
	o := NewParsingOptionsBuilder().WithParsingForNoTags().Build()
	assert.False(t, o.IsEnabled(TagInf))
	assert.False(t, o.IsEnabled(TagM3u))
}

func TestParsingOptionsBuilderPerTagOverrides(t *testing.T) {
	o := NewParsingOptionsBuilder().
		WithParsingForNoTags().
		WithParsingFor(TagInf).
		Build()

	assert.True(t, o.IsEnabled(TagInf))
	assert.False(t, o.IsEnabled(TagVersion))
}

func TestParsingOptionsBuilderWithoutParsingFor(t *testing.T) {
	o := NewParsingOptionsBuilder().
		WithParsingForAllTags().
		WithoutParsingFor(TagKey).
		Build()

	assert.False(t, o.IsEnabled(TagKey))
	assert.True(t, o.IsEnabled(TagMap))
}

func TestParsingOptionsIsEnabledOutOfRangeIsFalse(t *testing.T) {
	o := NewParsingOptions()
	assert.False(t, o.IsEnabled(TagName(-1)))
	assert.False(t, o.IsEnabled(tagNameCount))
}
