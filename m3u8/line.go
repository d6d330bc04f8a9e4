package m3u8

import "bytes"

// tagPrefix is the literal that every HLS tag line begins with (section 4.1).
const tagPrefix = "#EXT"

// LineKind identifies which of the five shapes a scanned Line takes.
type LineKind int

const (
	// LineBlank is an empty line; it carries no payload.
	LineBlank LineKind = iota
	// LineComment is a "#" line that is not a recognized tag prefix.
	LineComment
	// LineURI is any line that does not begin with "#".
	LineURI
	// LineUnknownTag is a "#EXT..." line whose name was not promoted to a KnownTag,
	// either because parsing was disabled for it or because it isn't a built-in or
	// custom tag name.
	LineUnknownTag
	// LineKnownTag is a "#EXT..." line successfully dispatched to a typed record.
	LineKnownTag
)

// Line is one line of a playlist, as produced by Reader.ReadLine. Exactly one of
// the accessor methods is meaningful for any given Kind.
type Line[T CustomTag] struct {
	kind    LineKind
	comment []byte
	uri     []byte
	unknown UnknownTag
	known   KnownTag[T]
}

// Kind reports which shape this Line holds.
func (l Line[T]) Kind() LineKind { return l.kind }

// Comment returns the payload for a LineComment (the bytes after "#", excluding the
// line terminator). It is only meaningful when Kind() == LineComment.
func (l Line[T]) Comment() []byte { return l.comment }

// URI returns the payload for a LineURI. It is only meaningful when Kind() == LineURI.
func (l Line[T]) URI() []byte { return l.uri }

// UnknownTagValue returns the tag for a LineUnknownTag. It is only meaningful when
// Kind() == LineUnknownTag.
func (l Line[T]) UnknownTagValue() UnknownTag { return l.unknown }

// KnownTagValue returns the tag for a LineKnownTag. It is only meaningful when
// Kind() == LineKnownTag.
func (l Line[T]) KnownTagValue() KnownTag[T] { return l.known }

// isTagNameByte reports whether b is a legal byte within an HLS tag name
// (1*(ALPHA / DIGIT / "-"), section 4.1).
func isTagNameByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '-'
}

// splitLine finds the next line terminator ("\n" or "\r\n") in data starting at
// offset off and returns the line content (without the terminator) plus the offset
// immediately after the terminator. If no terminator is found, the remainder of
// data is the line and the returned offset equals len(data). ok is false only when
// off is already at or past len(data) (end of input).
func splitLine(data []byte, off int) (line []byte, next int, ok bool) {
	if off >= len(data) {
		return nil, off, false
	}
	rest := data[off:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		end := i
		if i > 0 && rest[i-1] == '\r' {
			end = i - 1
		}
		return rest[:end], off + i + 1, true
	}
	return rest, off + len(rest), true
}

// scanLine classifies the raw bytes of a single terminated (or final, untermianted)
// line per section 4.1's classification rules, without performing tag dispatch.
// The returned UnknownTag is zero-valued unless kind == LineUnknownTag.
func scanLine(raw []byte) (kind LineKind, comment []byte, uri []byte, unk UnknownTag) {
	if len(raw) == 0 {
		return LineBlank, nil, nil, UnknownTag{}
	}
	if raw[0] != '#' {
		return LineURI, nil, raw, UnknownTag{}
	}
	rest := raw[1:]
	if bytes.HasPrefix(rest, []byte(tagPrefix[1:])) {
		name := rest[len(tagPrefix)-1:]
		if len(name) > 0 && isTagNameByte(name[0]) {
			i := 0
			for i < len(name) && isTagNameByte(name[i]) {
				i++
			}
			tagName := name[:i]
			remainder := name[i:]
			var value []byte
			hasValue := false
			if len(remainder) > 0 && remainder[0] == ':' {
				value = remainder[1:]
				hasValue = true
			}
			return LineUnknownTag, nil, nil, UnknownTag{
				Name:     tagName,
				Value:    value,
				HasValue: hasValue,
				raw:      raw,
			}
		}
	}
	return LineComment, rest, nil, UnknownTag{}
}
