package m3u8

import "io"

// Writer emits Lines to a byte sink (section 4.6, 6). It performs no buffering
// beyond what its sink provides, and no allocation for Pristine known-tag lines or
// for Blank/Comment/Uri/UnknownTag lines.
type Writer[T CustomTag] struct {
	w io.Writer
}

// NewWriter constructs a Writer over sink.
func NewWriter[T CustomTag](sink io.Writer) *Writer[T] {
	return &Writer[T]{w: sink}
}

var (
	newlineBytes   = []byte("\n")
	hashBytes      = []byte("#")
	colonBytes     = []byte(":")
	tagPrefixBytes = []byte(tagPrefix)
)

// IntoInner returns the sink this Writer writes to (section 4.6, 6).
func (w *Writer[T]) IntoInner() io.Writer { return w.w }

// WriteLine emits line per section 4.6:
//   - Blank: "\n"
//   - Comment(s): "#", s, "\n"
//   - Uri(s): s, "\n"
//   - UnknownTag: "#EXT", name, optionally ":" + raw value, "\n" — no re-parsing.
//   - KnownTag: the record's own Line(), which is either the original source bytes
//     (Pristine) or a freshly formatted line (Mutated), followed by "\n".
func (w *Writer[T]) WriteLine(line Line[T]) error {
	switch line.Kind() {
	case LineBlank:
		return w.writeAll(newlineBytes)
	case LineComment:
		return w.writeAll(hashBytes, line.Comment(), newlineBytes)
	case LineURI:
		return w.writeAll(line.URI(), newlineBytes)
	case LineUnknownTag:
		u := line.UnknownTagValue()
		if u.HasValue {
			return w.writeAll(tagPrefixBytes, u.Name, colonBytes, u.Value, newlineBytes)
		}
		return w.writeAll(tagPrefixBytes, u.Name, newlineBytes)
	case LineKnownTag:
		return w.writeAll(line.KnownTagValue().Line(), newlineBytes)
	default:
		return nil
	}
}

func (w *Writer[T]) writeAll(parts ...[]byte) error {
	for _, p := range parts {
		if _, err := w.w.Write(p); err != nil {
			return err
		}
	}
	return nil
}
