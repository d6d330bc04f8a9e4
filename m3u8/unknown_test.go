package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownTagSemiParsedValueNoValueIsEmpty(t *testing.T) {
	u := UnknownTag{Name: []byte("-X-GAP"), HasValue: false}
	assert.Equal(t, SemiEmpty, u.SemiParsedValue().Kind())
}

func TestUnknownTagSemiParsedValueDelegatesToDecode(t *testing.T) {
	u := UnknownTag{Name: []byte("-X-VERSION"), Value: []byte("3"), HasValue: true}
	sv := u.SemiParsedValue()
	assert.Equal(t, SemiDecimalIntegerRange, sv.Kind())
}
