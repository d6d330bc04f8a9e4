package m3u8

// lineState is the Pristine/Mutated mutation-tracking wrapper shared by every
// built-in HLS tag record (section 4.5, 9). Pristine tags remember the original
// source bytes and never allocate on read; Mutated tags memoize a freshly formatted
// line, recomputed lazily (on markMutated, and on any subsequent field write) the
// next time Line() is called. This is grounded directly on
// original_source/src/tag/hls/inf.rs's `output_line` / `output_line_is_dirty` pair
// (Cow<'a, [u8]> in the original; Go has no Cow, so Pristine keeps raw as a plain
// slice into the input buffer and Mutated keeps computed as an owned slice).
type lineState struct {
	raw      []byte // original source line bytes; valid only while !mutated
	computed []byte // cached freshly-formatted line; nil means "needs (re)compute"
	mutated  bool
}

// newPristineState records the original line bytes for a tag parsed from input.
func newPristineState(raw []byte) lineState {
	return lineState{raw: raw}
}

// newMutatedState is used by a tag's constructor (New), which has no original
// source line to borrow from.
func newMutatedState() lineState {
	return lineState{mutated: true}
}

// markMutated transitions Pristine -> Mutated. The transition is one-way: calling
// it again is a no-op beyond invalidating any stale cached line.
func (s *lineState) markMutated() {
	s.mutated = true
	s.computed = nil
}

// IsMutated reports whether this tag owns its field values (Mutated) or is still a
// view over the original source bytes (Pristine).
func (s *lineState) IsMutated() bool { return s.mutated }

// line returns the bytes to write for this tag (without a line terminator),
// computing and memoizing the Mutated form via calc on first use after a mutation.
func (s *lineState) line(calc func() []byte) []byte {
	if !s.mutated {
		return s.raw
	}
	if s.computed == nil {
		s.computed = calc()
	}
	return s.computed
}

// HLSTag is the uniform contract every built-in known-tag record satisfies
// (section 4.4's "uniform record contract", realized for the 20 tags this module
// implements — see SPEC_FULL.md's DOMAIN STACK table for which of the 32 built-in
// names those are).
type HLSTag interface {
	// TagNameID identifies which built-in tag this record is.
	TagNameID() TagName
	// Line returns the full serialized line, including the "#EXT" prefix and name,
	// but no trailing terminator (the writer appends it).
	Line() []byte
	// IsMutated reports whether this record has been mutated since it was parsed
	// or constructed.
	IsMutated() bool
}

// CustomTag is the contract a caller's custom known-tag type must satisfy so the
// mutation-tracking wrapper and writer can treat it uniformly with built-in tags
// (section 4.4, 9 "Polymorphism over the custom-tag family").
type CustomTag interface {
	// Line returns the full serialized line for this tag (no trailing terminator).
	Line() []byte
	// IsMutated reports whether this tag has been mutated since it was parsed or
	// constructed. KnownTag.IsMutated returns this value as-is: KnownTag.Custom
	// hands out the record itself, and KnownTag does not track whether the caller
	// changed it.
	IsMutated() bool
}

// CustomTagSpec is the type-level descriptor a caller registers with a Reader
// (NewReader) to extend tag dispatch with its own vocabulary (section 4.4, 6). A
// Writer takes no CustomTagSpec; it is parameterized by the same T and writes
// custom records through their Line method. T is the
// union of all custom tags the caller wishes to recognize — Go's nearest analogue
// to the original design's closed, variant-like "union of all custom tags"
// parameterization, since Go has no sum types (section 9, "Polymorphism over the
// custom-tag family").
type CustomTagSpec[T CustomTag] struct {
	// IsKnownName reports whether name (as produced by UnknownTag.Name) is one this
	// spec recognizes. A nil IsKnownName means "registers zero custom tags", which
	// section 6 states is valid.
	IsKnownName func(name []byte) bool
	// TryFrom attempts to construct T from an UnknownTag that IsKnownName accepted.
	TryFrom func(UnknownTag) (T, error)
}

func (c CustomTagSpec[T]) isKnownName(name []byte) bool {
	return c.IsKnownName != nil && c.IsKnownName(name)
}

// NoCustomTag is a convenience CustomTag implementation for callers who register
// no custom tags at all; pass CustomTagSpec[NoCustomTag]{} (its zero value) to
// NewReader, and use NoCustomTag as NewWriter's type parameter, to get plain
// built-in-only dispatch.
type NoCustomTag struct{}

func (NoCustomTag) Line() []byte   { return nil }
func (NoCustomTag) IsMutated() bool { return false }

// KnownTag is a dispatched tag: either one of the built-in HLS records, or a
// caller-supplied custom record of type T.
type KnownTag[T CustomTag] struct {
	isCustom bool
	hls      HLSTag
	custom   T
}

// IsCustom reports whether this KnownTag holds a caller-supplied record rather
// than a built-in HLS one.
func (k KnownTag[T]) IsCustom() bool { return k.isCustom }

// HLS returns the built-in record and true, or the zero value and false if this
// KnownTag holds a custom record.
func (k KnownTag[T]) HLS() (HLSTag, bool) {
	if k.isCustom {
		return nil, false
	}
	return k.hls, true
}

// Custom returns the custom record and true, or the zero value and false if this
// KnownTag holds a built-in record.
func (k KnownTag[T]) Custom() (T, bool) {
	if !k.isCustom {
		var zero T
		return zero, false
	}
	return k.custom, true
}

// Line returns the serialized line for whichever record this KnownTag holds.
func (k KnownTag[T]) Line() []byte {
	if k.isCustom {
		return k.custom.Line()
	}
	return k.hls.Line()
}

// IsMutated reports whether the held record has been mutated.
func (k KnownTag[T]) IsMutated() bool {
	if k.isCustom {
		return k.custom.IsMutated()
	}
	return k.hls.IsMutated()
}

// dispatch implements section 4.4: given a scanned UnknownTag, the active
// ParsingOptions, and a custom-tag spec, decide whether to promote it to a
// KnownTag, leave it as UnknownTag, or report a ValidationError.
func dispatch[T CustomTag](unk UnknownTag, opts ParsingOptions, custom CustomTagSpec[T]) (kt KnownTag[T], ok bool, err error) {
	if tn, found := lookupTagName(unk.Name); found && opts.IsEnabled(tn) {
		rec, rerr := tryFromHLS(tn, unk)
		if rerr != nil {
			return KnownTag[T]{}, false, rerr
		}
		if rec != nil {
			return KnownTag[T]{hls: rec}, true, nil
		}
		// tn is a recognized built-in name but this build implements no concrete
		// record for it (one of the 12 tags SPEC_FULL.md's DOMAIN STACK table
		// intentionally leaves unimplemented); fall through as if unrecognized.
	}
	if custom.isKnownName(unk.Name) {
		c, cerr := custom.TryFrom(unk)
		if cerr != nil {
			return KnownTag[T]{}, false, cerr
		}
		return KnownTag[T]{isCustom: true, custom: c}, true, nil
	}
	return KnownTag[T]{}, false, nil
}
