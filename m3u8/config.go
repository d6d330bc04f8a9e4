package m3u8

// TagName identifies one of the 32 built-in HLS tag names that ParsingOptions gates
// (section 4.4, 6). Values are dense small integers suitable for bitset indexing.
type TagName int

const (
	TagM3u TagName = iota
	TagVersion
	TagIndependentSegments
	TagStart
	TagTargetDuration
	TagMediaSequence
	TagDiscontinuitySequence
	TagEndList
	TagPlaylistType
	TagIFramesOnly
	TagDiscontinuity
	TagGap
	TagInf
	TagByterange
	TagProgramDateTime
	TagBitrate
	TagKey
	TagMap
	TagServerControl
	TagDefine
	TagPartInf
	TagPart
	TagDaterange
	TagSkip
	TagPreloadHint
	TagRenditionReport
	TagMedia
	TagStreamInf
	TagIFrameStreamInf
	TagSessionData
	TagSessionKey
	TagContentSteering

	tagNameCount // sentinel; not a real tag
)

// tagNames maps each TagName to its "#EXT..." name slice (without the "#EXT"
// prefix itself, matching UnknownTag.Name), used by the dispatch table (known.go).
var tagNames = [tagNameCount]string{
	TagM3u:                   "M3U",
	TagVersion:               "-X-VERSION",
	TagIndependentSegments:   "-X-INDEPENDENT-SEGMENTS",
	TagStart:                 "-X-START",
	TagTargetDuration:        "-X-TARGETDURATION",
	TagMediaSequence:         "-X-MEDIA-SEQUENCE",
	TagDiscontinuitySequence: "-X-DISCONTINUITY-SEQUENCE",
	TagEndList:               "-X-ENDLIST",
	TagPlaylistType:          "-X-PLAYLIST-TYPE",
	TagIFramesOnly:           "-X-I-FRAMES-ONLY",
	TagDiscontinuity:         "-X-DISCONTINUITY",
	TagGap:                   "-X-GAP",
	TagInf:                   "INF",
	TagByterange:             "-X-BYTERANGE",
	TagProgramDateTime:       "-X-PROGRAM-DATE-TIME",
	TagBitrate:               "-X-BITRATE",
	TagKey:                   "-X-KEY",
	TagMap:                   "-X-MAP",
	TagServerControl:         "-X-SERVER-CONTROL",
	TagDefine:                "-X-DEFINE",
	TagPartInf:               "-X-PART-INF",
	TagPart:                  "-X-PART",
	TagDaterange:             "-X-DATERANGE",
	TagSkip:                  "-X-SKIP",
	TagPreloadHint:           "-X-PRELOAD-HINT",
	TagRenditionReport:       "-X-RENDITION-REPORT",
	TagMedia:                 "-X-MEDIA",
	TagStreamInf:             "-X-STREAM-INF",
	TagIFrameStreamInf:       "-X-I-FRAME-STREAM-INF",
	TagSessionData:           "-X-SESSION-DATA",
	TagSessionKey:            "-X-SESSION-KEY",
	TagContentSteering:       "-X-CONTENT-STEERING",
}

// tagNameLookup is the reverse of tagNames, built once at init for O(1) dispatch.
var tagNameLookup = func() map[string]TagName {
	m := make(map[string]TagName, tagNameCount)
	for t, name := range tagNames {
		m[name] = TagName(t)
	}
	return m
}()

// lookupTagName returns the TagName for a scanned tag name slice, if it's one of
// the 32 built-in HLS tags.
func lookupTagName(name []byte) (TagName, bool) {
	t, ok := tagNameLookup[string(name)]
	return t, ok
}

// ParsingOptions is a per-tag bitset gating which built-in HLS tag names are
// promoted from UnknownTag to a typed KnownTag record (section 4.4, 6). The
// repository default, matching spec's stated default, is "enable all".
type ParsingOptions struct {
	enabled [tagNameCount]bool
}

// NewParsingOptions returns options with every built-in tag enabled, the
// repository default.
func NewParsingOptions() ParsingOptions {
	var o ParsingOptions
	for i := range o.enabled {
		o.enabled[i] = true
	}
	return o
}

// IsEnabled reports whether parsing is enabled for t.
func (o ParsingOptions) IsEnabled(t TagName) bool {
	if t < 0 || t >= tagNameCount {
		return false
	}
	return o.enabled[t]
}

// ParsingOptionsBuilder constructs a ParsingOptions via chained calls, mirroring
// the teacher's constructor-argument style rather than a free-standing functional-
// options package (there is no process boundary here to source options from; see
// SPEC_FULL.md section 1.1).
type ParsingOptionsBuilder struct {
	opts ParsingOptions
}

// NewParsingOptionsBuilder starts from the "enable all" default.
func NewParsingOptionsBuilder() *ParsingOptionsBuilder {
	return &ParsingOptionsBuilder{opts: NewParsingOptions()}
}

// WithParsingForAllTags enables every built-in tag.
func (b *ParsingOptionsBuilder) WithParsingForAllTags() *ParsingOptionsBuilder {
	for i := range b.opts.enabled {
		b.opts.enabled[i] = true
	}
	return b
}

// WithParsingForNoTags disables every built-in tag; all lines with built-in tag
// names are emitted as UnknownTag (or dispatched to a custom hook, if supplied).
func (b *ParsingOptionsBuilder) WithParsingForNoTags() *ParsingOptionsBuilder {
	for i := range b.opts.enabled {
		b.opts.enabled[i] = false
	}
	return b
}

// WithParsingFor enables parsing for t.
func (b *ParsingOptionsBuilder) WithParsingFor(t TagName) *ParsingOptionsBuilder {
	if t >= 0 && t < tagNameCount {
		b.opts.enabled[t] = true
	}
	return b
}

// WithoutParsingFor disables parsing for t.
func (b *ParsingOptionsBuilder) WithoutParsingFor(t TagName) *ParsingOptionsBuilder {
	if t >= 0 && t < tagNameCount {
		b.opts.enabled[t] = false
	}
	return b
}

// Build returns the constructed ParsingOptions.
func (b *ParsingOptionsBuilder) Build() ParsingOptions {
	return b.opts
}
