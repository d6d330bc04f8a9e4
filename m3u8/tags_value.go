package m3u8

import (
	"fmt"
	"strconv"
)

// ---- Inf (#EXTINF) ----

// Inf corresponds to the EXTINF tag, grounded on
// original_source/src/tag/hls/inf.rs: duration is eagerly parsed and required;
// title is optional and, when empty, is omitted entirely from the serialized line
// (calculate_line in the original).
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.1
type Inf struct {
	state    lineState
	duration float64
	title    string
}

// NewInf constructs a fresh Inf. An empty title omits the trailing ",title".
func NewInf(duration float64, title string) *Inf {
	return &Inf{state: newMutatedState(), duration: duration, title: title}
}

func tryFromInf(u UnknownTag) (*Inf, error) {
	if !u.HasValue {
		return nil, &ValidationError{Tag: "INF", Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: "INF", Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() != SemiFloatWithTitle {
		return nil, &ValidationError{Tag: "INF", Kind: ErrUnexpectedValueType, Detail: "expected decimal-floating-point-with-optional-title"}
	}
	duration, title, hasTitle := sv.FloatWithTitle()
	t := ""
	if hasTitle {
		t = string(title)
	}
	return &Inf{state: newPristineState(u.raw), duration: duration, title: t}, nil
}

func (t *Inf) TagNameID() TagName { return TagInf }
func (t *Inf) IsMutated() bool    { return t.state.IsMutated() }
func (t *Inf) Duration() float64  { return t.duration }
func (t *Inf) Title() string      { return t.title }

func (t *Inf) SetDuration(d float64) {
	t.duration = d
	t.state.markMutated()
}

func (t *Inf) SetTitle(title string) {
	t.title = title
	t.state.markMutated()
}

func (t *Inf) Line() []byte {
	return t.state.line(func() []byte { return calculateInfLine(t.duration, t.title) })
}

func calculateInfLine(duration float64, title string) []byte {
	d := strconv.FormatFloat(duration, 'f', -1, 64)
	if title == "" {
		return []byte(fmt.Sprintf("#EXTINF:%s", d))
	}
	return []byte(fmt.Sprintf("#EXTINF:%s,%s", d, title))
}

// ---- Byterange (#EXT-X-BYTERANGE) ----

// Byterange corresponds to the EXT-X-BYTERANGE tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.2
type Byterange struct {
	state     lineState
	length    uint64
	offset    uint64
	hasOffset bool
}

// NewByterange constructs a fresh Byterange. Pass hasOffset=false to omit "@offset".
func NewByterange(length uint64, offset uint64, hasOffset bool) *Byterange {
	return &Byterange{state: newMutatedState(), length: length, offset: offset, hasOffset: hasOffset}
}

func tryFromByterange(u UnknownTag) (*Byterange, error) {
	if !u.HasValue {
		return nil, &ValidationError{Tag: "-X-BYTERANGE", Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: "-X-BYTERANGE", Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() != SemiDecimalIntegerRange {
		return nil, &ValidationError{Tag: "-X-BYTERANGE", Kind: ErrUnexpectedValueType, Detail: "expected decimal-integer-range"}
	}
	n, o, hasOffset := sv.DecimalIntegerRange()
	return &Byterange{state: newPristineState(u.raw), length: n, offset: o, hasOffset: hasOffset}, nil
}

func (t *Byterange) TagNameID() TagName          { return TagByterange }
func (t *Byterange) IsMutated() bool             { return t.state.IsMutated() }
func (t *Byterange) Length() uint64              { return t.length }
func (t *Byterange) Offset() (uint64, bool)       { return t.offset, t.hasOffset }
func (t *Byterange) SetLength(length uint64) {
	t.length = length
	t.state.markMutated()
}
func (t *Byterange) SetOffset(offset uint64) {
	t.offset = offset
	t.hasOffset = true
	t.state.markMutated()
}
func (t *Byterange) ClearOffset() {
	t.hasOffset = false
	t.state.markMutated()
}
func (t *Byterange) Line() []byte {
	return t.state.line(func() []byte {
		if t.hasOffset {
			return []byte(fmt.Sprintf("#EXT-X-BYTERANGE:%d@%d", t.length, t.offset))
		}
		return []byte(fmt.Sprintf("#EXT-X-BYTERANGE:%d", t.length))
	})
}

// ---- ProgramDateTime (#EXT-X-PROGRAM-DATE-TIME) ----

// ProgramDateTime corresponds to the EXT-X-PROGRAM-DATE-TIME tag. The value is
// kept as the structurally-validated, uninterpreted date-time slice; numeric range
// validation and timezone arithmetic are caller concerns (section 1, 9).
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.6
type ProgramDateTime struct {
	state lineState
	value string
}

func NewProgramDateTime(value string) *ProgramDateTime {
	return &ProgramDateTime{state: newMutatedState(), value: value}
}

func tryFromProgramDateTime(u UnknownTag) (*ProgramDateTime, error) {
	if !u.HasValue {
		return nil, &ValidationError{Tag: "-X-PROGRAM-DATE-TIME", Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: "-X-PROGRAM-DATE-TIME", Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() != SemiDateTime {
		return nil, &ValidationError{Tag: "-X-PROGRAM-DATE-TIME", Kind: ErrUnexpectedValueType, Detail: "expected date-time"}
	}
	return &ProgramDateTime{state: newPristineState(u.raw), value: string(sv.DateTime())}, nil
}

func (t *ProgramDateTime) TagNameID() TagName { return TagProgramDateTime }
func (t *ProgramDateTime) IsMutated() bool    { return t.state.IsMutated() }
func (t *ProgramDateTime) Value() string      { return t.value }
func (t *ProgramDateTime) SetValue(v string) {
	t.value = v
	t.state.markMutated()
}
func (t *ProgramDateTime) Line() []byte {
	return t.state.line(func() []byte {
		return []byte(fmt.Sprintf("#EXT-X-PROGRAM-DATE-TIME:%s", t.value))
	})
}
