package m3u8

import (
	"fmt"
)

// requireNoValue validates that an UnknownTag has no ":value" payload, for the
// Empty-shaped built-in tags (M3u, IndependentSegments, EndList, IFramesOnly,
// Discontinuity, Gap).
func requireNoValue(tagName string, u UnknownTag) error {
	if u.HasValue {
		return &ValidationError{Tag: tagName, Kind: ErrUnexpectedValueType, Detail: "expected no value"}
	}
	return nil
}

// requireDecimalInt validates and extracts a plain (no "@offset") decimal integer
// value, for the DecimalIntegerRange-shaped scalar tags (Version, TargetDuration,
// MediaSequence, DiscontinuitySequence, Bitrate).
func requireDecimalInt(tagName string, u UnknownTag) (uint64, error) {
	if !u.HasValue {
		return 0, &ValidationError{Tag: tagName, Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: tagName, Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() != SemiDecimalIntegerRange {
		return 0, &ValidationError{Tag: tagName, Kind: ErrUnexpectedValueType, Detail: "expected decimal-integer-range"}
	}
	n, _, hasOffset := sv.DecimalIntegerRange()
	if hasOffset {
		return 0, &ValidationError{Tag: tagName, Kind: ErrUnexpectedValueType, Detail: "unexpected byterange offset"}
	}
	return n, nil
}

// ---- M3u (#EXTM3U) ----

// M3u corresponds to the required playlist header tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.3.1.1
type M3u struct{ state lineState }

// NewM3u constructs a fresh M3u tag.
func NewM3u() *M3u { return &M3u{state: newMutatedState()} }

func tryFromM3u(u UnknownTag) (*M3u, error) {
	if err := requireNoValue("M3U", u); err != nil {
		return nil, err
	}
	return &M3u{state: newPristineState(u.raw)}, nil
}

func (t *M3u) TagNameID() TagName { return TagM3u }
func (t *M3u) IsMutated() bool    { return t.state.IsMutated() }
func (t *M3u) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXTM3U") })
}

// ---- IndependentSegments (#EXT-X-INDEPENDENT-SEGMENTS) ----

// IndependentSegments corresponds to the EXT-X-INDEPENDENT-SEGMENTS tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.3.5.1
type IndependentSegments struct{ state lineState }

func NewIndependentSegments() *IndependentSegments {
	return &IndependentSegments{state: newMutatedState()}
}

func tryFromIndependentSegments(u UnknownTag) (*IndependentSegments, error) {
	if err := requireNoValue("-X-INDEPENDENT-SEGMENTS", u); err != nil {
		return nil, err
	}
	return &IndependentSegments{state: newPristineState(u.raw)}, nil
}

func (t *IndependentSegments) TagNameID() TagName { return TagIndependentSegments }
func (t *IndependentSegments) IsMutated() bool    { return t.state.IsMutated() }
func (t *IndependentSegments) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXT-X-INDEPENDENT-SEGMENTS") })
}

// ---- EndList (#EXT-X-ENDLIST) ----

// EndList corresponds to the EXT-X-ENDLIST tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.4
type EndList struct{ state lineState }

func NewEndList() *EndList { return &EndList{state: newMutatedState()} }

func tryFromEndList(u UnknownTag) (*EndList, error) {
	if err := requireNoValue("-X-ENDLIST", u); err != nil {
		return nil, err
	}
	return &EndList{state: newPristineState(u.raw)}, nil
}

func (t *EndList) TagNameID() TagName { return TagEndList }
func (t *EndList) IsMutated() bool    { return t.state.IsMutated() }
func (t *EndList) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXT-X-ENDLIST") })
}

// ---- IFramesOnly (#EXT-X-I-FRAMES-ONLY) ----

// IFramesOnly corresponds to the EXT-X-I-FRAMES-ONLY tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.6
type IFramesOnly struct{ state lineState }

func NewIFramesOnly() *IFramesOnly { return &IFramesOnly{state: newMutatedState()} }

func tryFromIFramesOnly(u UnknownTag) (*IFramesOnly, error) {
	if err := requireNoValue("-X-I-FRAMES-ONLY", u); err != nil {
		return nil, err
	}
	return &IFramesOnly{state: newPristineState(u.raw)}, nil
}

func (t *IFramesOnly) TagNameID() TagName { return TagIFramesOnly }
func (t *IFramesOnly) IsMutated() bool    { return t.state.IsMutated() }
func (t *IFramesOnly) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXT-X-I-FRAMES-ONLY") })
}

// ---- Discontinuity (#EXT-X-DISCONTINUITY) ----

// Discontinuity corresponds to the EXT-X-DISCONTINUITY tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.3
type Discontinuity struct{ state lineState }

func NewDiscontinuity() *Discontinuity { return &Discontinuity{state: newMutatedState()} }

func tryFromDiscontinuity(u UnknownTag) (*Discontinuity, error) {
	if err := requireNoValue("-X-DISCONTINUITY", u); err != nil {
		return nil, err
	}
	return &Discontinuity{state: newPristineState(u.raw)}, nil
}

func (t *Discontinuity) TagNameID() TagName { return TagDiscontinuity }
func (t *Discontinuity) IsMutated() bool    { return t.state.IsMutated() }
func (t *Discontinuity) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXT-X-DISCONTINUITY") })
}

// ---- Gap (#EXT-X-GAP) ----

// Gap corresponds to the EXT-X-GAP tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.9
type Gap struct{ state lineState }

func NewGap() *Gap { return &Gap{state: newMutatedState()} }

func tryFromGap(u UnknownTag) (*Gap, error) {
	if err := requireNoValue("-X-GAP", u); err != nil {
		return nil, err
	}
	return &Gap{state: newPristineState(u.raw)}, nil
}

func (t *Gap) TagNameID() TagName { return TagGap }
func (t *Gap) IsMutated() bool    { return t.state.IsMutated() }
func (t *Gap) Line() []byte {
	return t.state.line(func() []byte { return []byte("#EXT-X-GAP") })
}

// ---- Version (#EXT-X-VERSION) ----

// Version corresponds to the EXT-X-VERSION tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.3.1.2
type Version struct {
	state lineState
	value uint64
}

func NewVersion(value uint64) *Version {
	return &Version{state: newMutatedState(), value: value}
}

func tryFromVersion(u UnknownTag) (*Version, error) {
	n, err := requireDecimalInt("-X-VERSION", u)
	if err != nil {
		return nil, err
	}
	return &Version{state: newPristineState(u.raw), value: n}, nil
}

func (t *Version) TagNameID() TagName { return TagVersion }
func (t *Version) IsMutated() bool    { return t.state.IsMutated() }
func (t *Version) Value() uint64      { return t.value }
func (t *Version) SetValue(v uint64) {
	t.value = v
	t.state.markMutated()
}
func (t *Version) Line() []byte {
	return t.state.line(func() []byte { return []byte(fmt.Sprintf("#EXT-X-VERSION:%d", t.value)) })
}

// ---- TargetDuration (#EXT-X-TARGETDURATION) ----

// TargetDuration corresponds to the EXT-X-TARGETDURATION tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.1
type TargetDuration struct {
	state lineState
	value uint64
}

func NewTargetDuration(value uint64) *TargetDuration {
	return &TargetDuration{state: newMutatedState(), value: value}
}

func tryFromTargetDuration(u UnknownTag) (*TargetDuration, error) {
	n, err := requireDecimalInt("-X-TARGETDURATION", u)
	if err != nil {
		return nil, err
	}
	return &TargetDuration{state: newPristineState(u.raw), value: n}, nil
}

func (t *TargetDuration) TagNameID() TagName { return TagTargetDuration }
func (t *TargetDuration) IsMutated() bool    { return t.state.IsMutated() }
func (t *TargetDuration) Value() uint64      { return t.value }
func (t *TargetDuration) SetValue(v uint64) {
	t.value = v
	t.state.markMutated()
}
func (t *TargetDuration) Line() []byte {
	return t.state.line(func() []byte { return []byte(fmt.Sprintf("#EXT-X-TARGETDURATION:%d", t.value)) })
}

// ---- MediaSequence (#EXT-X-MEDIA-SEQUENCE) ----

// MediaSequence corresponds to the EXT-X-MEDIA-SEQUENCE tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.2
type MediaSequence struct {
	state lineState
	value uint64
}

func NewMediaSequence(value uint64) *MediaSequence {
	return &MediaSequence{state: newMutatedState(), value: value}
}

func tryFromMediaSequence(u UnknownTag) (*MediaSequence, error) {
	n, err := requireDecimalInt("-X-MEDIA-SEQUENCE", u)
	if err != nil {
		return nil, err
	}
	return &MediaSequence{state: newPristineState(u.raw), value: n}, nil
}

func (t *MediaSequence) TagNameID() TagName { return TagMediaSequence }
func (t *MediaSequence) IsMutated() bool    { return t.state.IsMutated() }
func (t *MediaSequence) Value() uint64      { return t.value }
func (t *MediaSequence) SetValue(v uint64) {
	t.value = v
	t.state.markMutated()
}
func (t *MediaSequence) Line() []byte {
	return t.state.line(func() []byte { return []byte(fmt.Sprintf("#EXT-X-MEDIA-SEQUENCE:%d", t.value)) })
}

// ---- DiscontinuitySequence (#EXT-X-DISCONTINUITY-SEQUENCE) ----

// DiscontinuitySequence corresponds to the EXT-X-DISCONTINUITY-SEQUENCE tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.3
type DiscontinuitySequence struct {
	state lineState
	value uint64
}

func NewDiscontinuitySequence(value uint64) *DiscontinuitySequence {
	return &DiscontinuitySequence{state: newMutatedState(), value: value}
}

func tryFromDiscontinuitySequence(u UnknownTag) (*DiscontinuitySequence, error) {
	n, err := requireDecimalInt("-X-DISCONTINUITY-SEQUENCE", u)
	if err != nil {
		return nil, err
	}
	return &DiscontinuitySequence{state: newPristineState(u.raw), value: n}, nil
}

func (t *DiscontinuitySequence) TagNameID() TagName { return TagDiscontinuitySequence }
func (t *DiscontinuitySequence) IsMutated() bool    { return t.state.IsMutated() }
func (t *DiscontinuitySequence) Value() uint64      { return t.value }
func (t *DiscontinuitySequence) SetValue(v uint64) {
	t.value = v
	t.state.markMutated()
}
func (t *DiscontinuitySequence) Line() []byte {
	return t.state.line(func() []byte {
		return []byte(fmt.Sprintf("#EXT-X-DISCONTINUITY-SEQUENCE:%d", t.value))
	})
}

// ---- Bitrate (#EXT-X-BITRATE) ----

// Bitrate corresponds to the EXT-X-BITRATE tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.8
type Bitrate struct {
	state lineState
	value uint64
}

func NewBitrate(value uint64) *Bitrate {
	return &Bitrate{state: newMutatedState(), value: value}
}

func tryFromBitrate(u UnknownTag) (*Bitrate, error) {
	n, err := requireDecimalInt("-X-BITRATE", u)
	if err != nil {
		return nil, err
	}
	return &Bitrate{state: newPristineState(u.raw), value: n}, nil
}

func (t *Bitrate) TagNameID() TagName { return TagBitrate }
func (t *Bitrate) IsMutated() bool    { return t.state.IsMutated() }
func (t *Bitrate) Value() uint64      { return t.value }
func (t *Bitrate) SetValue(v uint64) {
	t.value = v
	t.state.markMutated()
}
func (t *Bitrate) Line() []byte {
	return t.state.line(func() []byte { return []byte(fmt.Sprintf("#EXT-X-BITRATE:%d", t.value)) })
}

// ---- PlaylistType (#EXT-X-PLAYLIST-TYPE) ----

// PlaylistType corresponds to the EXT-X-PLAYLIST-TYPE tag. Value is the raw
// type-enum bytes ("EVENT" or "VOD"); the core does not interpret enumerated
// strings beyond preserving them (section 1, Non-goals).
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.5
type PlaylistType struct {
	state lineState
	value string
}

func NewPlaylistType(value string) *PlaylistType {
	return &PlaylistType{state: newMutatedState(), value: value}
}

func tryFromPlaylistType(u UnknownTag) (*PlaylistType, error) {
	if !u.HasValue {
		return nil, &ValidationError{Tag: "-X-PLAYLIST-TYPE", Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: "-X-PLAYLIST-TYPE", Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() != SemiTypeEnum {
		return nil, &ValidationError{Tag: "-X-PLAYLIST-TYPE", Kind: ErrUnexpectedValueType, Detail: "expected type-enum"}
	}
	return &PlaylistType{state: newPristineState(u.raw), value: string(sv.TypeEnum())}, nil
}

func (t *PlaylistType) TagNameID() TagName { return TagPlaylistType }
func (t *PlaylistType) IsMutated() bool    { return t.state.IsMutated() }
func (t *PlaylistType) Value() string      { return t.value }
func (t *PlaylistType) SetValue(v string) {
	t.value = v
	t.state.markMutated()
}
func (t *PlaylistType) Line() []byte {
	return t.state.line(func() []byte { return []byte(fmt.Sprintf("#EXT-X-PLAYLIST-TYPE:%s", t.value)) })
}
