package m3u8

import "fmt"

// ParseTagValueError reports that a tag's raw value could not be decoded into any
// of the semi-parsed shapes a caller required (section 7).
type ParseTagValueError struct {
	// Tag is the offending tag name.
	Tag string
	// Reason describes what was expected (e.g. "decimal-floating-point-with-title").
	Reason string
	// Raw is the offending slice, copied so the error outlives the input buffer.
	Raw []byte
}

func (e *ParseTagValueError) Error() string {
	if len(e.Raw) == 0 {
		return fmt.Sprintf("m3u8: tag %s: unexpected empty value", e.Tag)
	}
	return fmt.Sprintf("m3u8: tag %s: value %q does not match %s", e.Tag, e.Raw, e.Reason)
}

// ErrUnexpectedEmpty is a sentinel Reason used by ParseTagValueError when a tag
// requires a value but none was present.
const ErrUnexpectedEmpty = "a non-empty value"

// ParseAttributeValueErrorKind names the primitive shape an attribute value failed
// to match.
type ParseAttributeValueErrorKind int

const (
	AttrErrDecimalInteger ParseAttributeValueErrorKind = iota
	AttrErrHexadecimalSequence
	AttrErrDecimalResolution
	AttrErrDecimalFloatingPoint
	AttrErrSignedDecimalFloatingPoint
	AttrErrQuotedString
	AttrErrUnquotedString
	// AttrErrAttributeList means the payload looked like an attribute list (it
	// contained a top-level "=") but failed to tokenize as one — an unterminated
	// quoted string, a token with no "=", or similar.
	AttrErrAttributeList
)

func (k ParseAttributeValueErrorKind) String() string {
	switch k {
	case AttrErrDecimalInteger:
		return "DecimalInteger"
	case AttrErrHexadecimalSequence:
		return "HexadecimalSequence"
	case AttrErrDecimalResolution:
		return "DecimalResolution"
	case AttrErrDecimalFloatingPoint:
		return "DecimalFloatingPoint"
	case AttrErrSignedDecimalFloatingPoint:
		return "SignedDecimalFloatingPoint"
	case AttrErrQuotedString:
		return "QuotedString"
	case AttrErrUnquotedString:
		return "UnquotedString"
	case AttrErrAttributeList:
		return "AttributeList"
	default:
		return "Unknown"
	}
}

// ParseAttributeValueError reports that a specific attribute's value did not match
// the shape a known-tag record required for it (section 7).
type ParseAttributeValueError struct {
	AttributeName string
	Expected      ParseAttributeValueErrorKind
	Raw           []byte
}

func (e *ParseAttributeValueError) Error() string {
	return fmt.Sprintf("m3u8: attribute %s: value %q is not a valid %s", e.AttributeName, e.Raw, e.Expected)
}

// ValidationErrorKind names the kind of record-level failure a known tag's TryFrom
// reported (section 7).
type ValidationErrorKind int

const (
	// ErrUnexpectedTagName means the dispatched name did not match the record.
	ErrUnexpectedTagName ValidationErrorKind = iota
	// ErrUnexpectedValueType means the semi-parsed value's Kind wasn't one the
	// record accepts.
	ErrUnexpectedValueType
	// ErrMissingRequiredAttribute means a required AttributeName was absent from an
	// AttributeList value.
	ErrMissingRequiredAttribute
	// ErrWrapped means Cause carries a ParseTagValueError or
	// ParseAttributeValueError transparently.
	ErrWrapped
)

// ValidationError is the record-level failure kind from section 4.4/7: a known
// tag's TryFrom rejected the UnknownTag it was given.
type ValidationError struct {
	Tag    string
	Kind   ValidationErrorKind
	Detail string // e.g. the missing attribute name, the attribute with the wrong value type, or the expected value shape
	Cause  error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnexpectedTagName:
		return fmt.Sprintf("m3u8: validating %s: unexpected tag name %s", e.Tag, e.Detail)
	case ErrUnexpectedValueType:
		return fmt.Sprintf("m3u8: validating %s: unexpected value type %s", e.Tag, e.Detail)
	case ErrMissingRequiredAttribute:
		return fmt.Sprintf("m3u8: validating %s: missing required attribute %s", e.Tag, e.Detail)
	default:
		return fmt.Sprintf("m3u8: validating %s: %v", e.Tag, e.Cause)
	}
}

func (e *ValidationError) Unwrap() error { return e.Cause }
