package m3u8

// Reader walks a playlist buffer one Line at a time (section 4.1, 6). It borrows
// its input: Line payloads, UnknownTag slices and the Line() of every unmutated
// built-in record are sub-slices of it. Built-in records do copy the field values
// they decode (such as an Inf title or a Key URI) when they are parsed. A Reader is single-threaded and its cursor advances monotonically;
// it is not restartable, matching section 5's concurrency model. Multiple Readers
// may share the same backing buffer concurrently without synchronization.
type Reader[T CustomTag] struct {
	data    []byte
	cursor  int
	options ParsingOptions
	custom  CustomTagSpec[T]
}

// NewReader constructs a Reader over data with the given ParsingOptions. Pass a
// zero CustomTagSpec[T] to register zero custom tags (section 6: "Registering zero
// custom tags is valid").
func NewReader[T CustomTag](data []byte, options ParsingOptions, custom CustomTagSpec[T]) *Reader[T] {
	return &Reader[T]{data: data, options: options, custom: custom}
}

// ReadLine returns the next Line, or ok=false once the input is exhausted. Errors
// are returned per-call and do not halt the cursor: it has already advanced past
// the offending line by the time an error is returned, so the next call proceeds
// normally (section 7, "Propagation policy").
func (r *Reader[T]) ReadLine() (line Line[T], ok bool, err error) {
	raw, next, more := splitLine(r.data, r.cursor)
	if !more {
		return Line[T]{}, false, nil
	}
	r.cursor = next

	kind, comment, uri, unk := scanLine(raw)
	switch kind {
	case LineBlank:
		return Line[T]{kind: LineBlank}, true, nil
	case LineComment:
		return Line[T]{kind: LineComment, comment: comment}, true, nil
	case LineURI:
		return Line[T]{kind: LineURI, uri: uri}, true, nil
	default: // LineUnknownTag, pre-dispatch
		kt, promoted, derr := dispatch[T](unk, r.options, r.custom)
		if derr != nil {
			return Line[T]{}, true, derr
		}
		if promoted {
			return Line[T]{kind: LineKnownTag, known: kt}, true, nil
		}
		return Line[T]{kind: LineUnknownTag, unknown: unk}, true, nil
	}
}
