package m3u8

// UnknownTag is a "#EXT..." line that the reader has not (yet) promoted to a
// KnownTag, either because its name isn't in the built-in or custom vocabulary, or
// because parsing was disabled for that name via ParsingOptions (section 4.4).
//
// UnknownTag borrows its Name and Value slices from the reader's input buffer; it
// never allocates and round-trips losslessly when written back unmodified.
type UnknownTag struct {
	// Name is the tag name: the bytes matching 1*(ALPHA / DIGIT / "-") following the
	// literal "#EXT" prefix. For "#EXTM3U" this is "M3U"; for "#EXT-X-INF:..." this
	// is "-X-INF".
	Name []byte
	// Value is the raw payload after the ":", if present. Meaningful only when
	// HasValue is true.
	Value []byte
	// HasValue reports whether a ":" followed the tag name.
	HasValue bool

	raw []byte // full original line, without terminator; used by the writer
}

// rawValue returns the raw value slice and whether one was present, mirroring the
// two-field (Value, HasValue) representation as a single accessor for convenience.
func (t UnknownTag) rawValue() ([]byte, bool) {
	if !t.HasValue {
		return nil, false
	}
	return t.Value, true
}

// SemiParsedValue lazily decodes this tag's raw value per section 4.2's decision
// procedure. The built-in records' TryFrom functions apply the same procedure to
// Value directly; a custom tag's TryFrom can call this method.
func (t UnknownTag) SemiParsedValue() SemiParsedValue {
	v, ok := t.rawValue()
	if !ok {
		return SemiParsedValue{kind: SemiEmpty}
	}
	return decodeSemiParsedValue(v)
}
