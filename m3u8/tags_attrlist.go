package m3u8

import (
	"fmt"
	"strings"
)

// requireAttributeList decodes u's value as an attribute list, for the five
// AttributeList-shaped built-in tags this module implements. Per section 4.2, a
// value that looked like an attribute list (it contained a top-level "=") but
// failed to tokenize as one is reported as an error by default rather than
// silently demoted to some other shape.
func requireAttributeList(tagName string, u UnknownTag) (AttributeList, error) {
	if !u.HasValue {
		return AttributeList{}, &ValidationError{Tag: tagName, Kind: ErrWrapped, Cause: &ParseTagValueError{Tag: tagName, Reason: ErrUnexpectedEmpty}}
	}
	sv := decodeSemiParsedValue(u.Value)
	if sv.Kind() == SemiAttributeList {
		return sv.AttributeList(), nil
	}
	if sv.MalformedAttributeList() {
		return AttributeList{}, &ValidationError{
			Tag:  tagName,
			Kind: ErrWrapped,
			Cause: &ParseAttributeValueError{
				AttributeName: tagName,
				Expected:      AttrErrAttributeList,
				Raw:           u.Value,
			},
		}
	}
	return AttributeList{}, &ValidationError{Tag: tagName, Kind: ErrUnexpectedValueType, Detail: "expected attribute-list"}
}

func quoted(s string) string { return `"` + s + `"` }

// ---- Start (#EXT-X-START) ----

// Start corresponds to the EXT-X-START tag.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.3.5.2
type Start struct {
	state      lineState
	timeOffset float64
	precise    bool
	hasPrecise bool
}

func NewStart(timeOffset float64, precise bool) *Start {
	return &Start{state: newMutatedState(), timeOffset: timeOffset, precise: precise, hasPrecise: true}
}

func tryFromStart(u UnknownTag) (*Start, error) {
	list, err := requireAttributeList("-X-START", u)
	if err != nil {
		return nil, err
	}
	offVal, ok := list.Get("TIME-OFFSET")
	if !ok {
		return nil, &ValidationError{Tag: "-X-START", Kind: ErrMissingRequiredAttribute, Detail: "TIME-OFFSET"}
	}
	var offset float64
	switch offVal.Kind() {
	case AttrSignedDecimalFloatingPoint, AttrDecimalFloatingPoint:
		offset = offVal.Float()
	case AttrDecimalInteger:
		offset = float64(offVal.DecimalInteger())
	default:
		return nil, &ValidationError{Tag: "-X-START", Kind: ErrUnexpectedValueType, Detail: "TIME-OFFSET"}
	}
	s := &Start{state: newPristineState(u.raw), timeOffset: offset}
	if pv, ok := list.Get("PRECISE"); ok {
		s.hasPrecise = true
		s.precise = string(pv.Raw()) == "YES"
	}
	return s, nil
}

func (t *Start) TagNameID() TagName     { return TagStart }
func (t *Start) IsMutated() bool        { return t.state.IsMutated() }
func (t *Start) TimeOffset() float64    { return t.timeOffset }
func (t *Start) Precise() (bool, bool)  { return t.precise, t.hasPrecise }
func (t *Start) SetTimeOffset(v float64) {
	t.timeOffset = v
	t.state.markMutated()
}
func (t *Start) SetPrecise(v bool) {
	t.precise = v
	t.hasPrecise = true
	t.state.markMutated()
}
func (t *Start) Line() []byte {
	return t.state.line(func() []byte {
		var b strings.Builder
		fmt.Fprintf(&b, "#EXT-X-START:TIME-OFFSET=%g", t.timeOffset)
		if t.hasPrecise {
			if t.precise {
				b.WriteString(",PRECISE=YES")
			} else {
				b.WriteString(",PRECISE=NO")
			}
		}
		return []byte(b.String())
	})
}

// ---- Key (#EXT-X-KEY) ----

// Key corresponds to the EXT-X-KEY tag, adapted from the teacher's media.go Key
// struct and parseKey function (regex/Sscanf-based) into the attribute-list
// contract from section 4.3.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.4
type Key struct {
	state             lineState
	method            string
	uri               string
	hasURI            bool
	iv                []byte
	hasIV             bool
	ivUpper           bool
	keyFormat         string
	hasKeyFormat      bool
	keyFormatVersions string
	hasKFV            bool
}

func NewKey(method string) *Key {
	return &Key{state: newMutatedState(), method: method}
}

func tryFromKey(u UnknownTag) (*Key, error) {
	list, err := requireAttributeList("-X-KEY", u)
	if err != nil {
		return nil, err
	}
	methodVal, ok := list.Get("METHOD")
	if !ok {
		return nil, &ValidationError{Tag: "-X-KEY", Kind: ErrMissingRequiredAttribute, Detail: "METHOD"}
	}
	k := &Key{state: newPristineState(u.raw), method: string(methodVal.Raw())}
	if v, ok := list.Get("URI"); ok {
		if v.Kind() != AttrQuotedString {
			return nil, &ValidationError{Tag: "-X-KEY", Kind: ErrUnexpectedValueType, Detail: "URI"}
		}
		k.uri, k.hasURI = string(v.QuotedString()), true
	}
	if v, ok := list.Get("IV"); ok {
		if v.Kind() != AttrHexadecimalSequence {
			return nil, &ValidationError{Tag: "-X-KEY", Kind: ErrUnexpectedValueType, Detail: "IV"}
		}
		digits, upper := v.HexadecimalSequence()
		k.iv, k.hasIV, k.ivUpper = digits, true, upper
	}
	if v, ok := list.Get("KEYFORMAT"); ok {
		if v.Kind() != AttrQuotedString {
			return nil, &ValidationError{Tag: "-X-KEY", Kind: ErrUnexpectedValueType, Detail: "KEYFORMAT"}
		}
		k.keyFormat, k.hasKeyFormat = string(v.QuotedString()), true
	}
	if v, ok := list.Get("KEYFORMATVERSIONS"); ok {
		if v.Kind() != AttrQuotedString {
			return nil, &ValidationError{Tag: "-X-KEY", Kind: ErrUnexpectedValueType, Detail: "KEYFORMATVERSIONS"}
		}
		k.keyFormatVersions, k.hasKFV = string(v.QuotedString()), true
	}
	return k, nil
}

func (t *Key) TagNameID() TagName         { return TagKey }
func (t *Key) IsMutated() bool            { return t.state.IsMutated() }
func (t *Key) Method() string             { return t.method }
func (t *Key) URI() (string, bool)        { return t.uri, t.hasURI }
func (t *Key) IV() ([]byte, bool)         { return t.iv, t.hasIV }
func (t *Key) KeyFormat() (string, bool)  { return t.keyFormat, t.hasKeyFormat }
func (t *Key) KeyFormatVersions() (string, bool) { return t.keyFormatVersions, t.hasKFV }

func (t *Key) SetMethod(v string) {
	t.method = v
	t.state.markMutated()
}
func (t *Key) SetURI(v string) {
	t.uri, t.hasURI = v, true
	t.state.markMutated()
}

func (t *Key) Line() []byte {
	return t.state.line(func() []byte {
		var b strings.Builder
		fmt.Fprintf(&b, "#EXT-X-KEY:METHOD=%s", t.method)
		if t.hasURI {
			fmt.Fprintf(&b, ",URI=%s", quoted(t.uri))
		}
		if t.hasIV {
			prefix := "0x"
			if t.ivUpper {
				prefix = "0X"
			}
			fmt.Fprintf(&b, ",IV=%s%s", prefix, t.iv)
		}
		if t.hasKeyFormat {
			fmt.Fprintf(&b, ",KEYFORMAT=%s", quoted(t.keyFormat))
		}
		if t.hasKFV {
			fmt.Fprintf(&b, ",KEYFORMATVERSIONS=%s", quoted(t.keyFormatVersions))
		}
		return []byte(b.String())
	})
}

// ---- Map (#EXT-X-MAP) ----

// Map corresponds to the EXT-X-MAP tag, adapted from the teacher's structs.go/
// media.go Map type.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.4.5
type Map struct {
	state         lineState
	uri           string
	byterange     string
	hasByterange  bool
}

func NewMap(uri string) *Map {
	return &Map{state: newMutatedState(), uri: uri}
}

func tryFromMap(u UnknownTag) (*Map, error) {
	list, err := requireAttributeList("-X-MAP", u)
	if err != nil {
		return nil, err
	}
	uriVal, ok := list.Get("URI")
	if !ok {
		return nil, &ValidationError{Tag: "-X-MAP", Kind: ErrMissingRequiredAttribute, Detail: "URI"}
	}
	if uriVal.Kind() != AttrQuotedString {
		return nil, &ValidationError{Tag: "-X-MAP", Kind: ErrUnexpectedValueType, Detail: "URI"}
	}
	m := &Map{state: newPristineState(u.raw), uri: string(uriVal.QuotedString())}
	if brVal, ok := list.Get("BYTERANGE"); ok {
		if brVal.Kind() != AttrQuotedString {
			return nil, &ValidationError{Tag: "-X-MAP", Kind: ErrUnexpectedValueType, Detail: "BYTERANGE"}
		}
		m.byterange, m.hasByterange = string(brVal.QuotedString()), true
	}
	return m, nil
}

func (t *Map) TagNameID() TagName           { return TagMap }
func (t *Map) IsMutated() bool              { return t.state.IsMutated() }
func (t *Map) URI() string                  { return t.uri }
func (t *Map) Byterange() (string, bool)    { return t.byterange, t.hasByterange }
func (t *Map) SetURI(v string) {
	t.uri = v
	t.state.markMutated()
}
func (t *Map) SetByterange(v string) {
	t.byterange, t.hasByterange = v, true
	t.state.markMutated()
}
func (t *Map) Line() []byte {
	return t.state.line(func() []byte {
		var b strings.Builder
		fmt.Fprintf(&b, "#EXT-X-MAP:URI=%s", quoted(t.uri))
		if t.hasByterange {
			fmt.Fprintf(&b, ",BYTERANGE=%s", quoted(t.byterange))
		}
		return []byte(b.String())
	})
}

// ---- ServerControl (#EXT-X-SERVER-CONTROL) ----

// ServerControl corresponds to the EXT-X-SERVER-CONTROL tag. All attributes are
// optional.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.3.8
type ServerControl struct {
	state              lineState
	canSkipUntil       float64
	hasCanSkipUntil    bool
	canBlockReload     bool
	holdBack           float64
	hasHoldBack        bool
	partHoldBack       float64
	hasPartHoldBack    bool
}

func NewServerControl() *ServerControl {
	return &ServerControl{state: newMutatedState()}
}

func tryFromServerControl(u UnknownTag) (*ServerControl, error) {
	list, err := requireAttributeList("-X-SERVER-CONTROL", u)
	if err != nil {
		return nil, err
	}
	s := &ServerControl{state: newPristineState(u.raw)}
	if v, ok := list.Get("CAN-SKIP-UNTIL"); ok {
		s.canSkipUntil, s.hasCanSkipUntil = v.Float(), true
	}
	if v, ok := list.Get("CAN-BLOCK-RELOAD"); ok {
		s.canBlockReload = string(v.Raw()) == "YES"
	}
	if v, ok := list.Get("HOLD-BACK"); ok {
		s.holdBack, s.hasHoldBack = v.Float(), true
	}
	if v, ok := list.Get("PART-HOLD-BACK"); ok {
		s.partHoldBack, s.hasPartHoldBack = v.Float(), true
	}
	return s, nil
}

func (t *ServerControl) TagNameID() TagName { return TagServerControl }
func (t *ServerControl) IsMutated() bool    { return t.state.IsMutated() }
func (t *ServerControl) CanSkipUntil() (float64, bool) { return t.canSkipUntil, t.hasCanSkipUntil }
func (t *ServerControl) CanBlockReload() bool          { return t.canBlockReload }
func (t *ServerControl) HoldBack() (float64, bool)     { return t.holdBack, t.hasHoldBack }
func (t *ServerControl) PartHoldBack() (float64, bool) { return t.partHoldBack, t.hasPartHoldBack }

func (t *ServerControl) SetCanBlockReload(v bool) {
	t.canBlockReload = v
	t.state.markMutated()
}

func (t *ServerControl) Line() []byte {
	return t.state.line(func() []byte {
		var parts []string
		if t.hasCanSkipUntil {
			parts = append(parts, fmt.Sprintf("CAN-SKIP-UNTIL=%g", t.canSkipUntil))
		}
		if t.canBlockReload {
			parts = append(parts, "CAN-BLOCK-RELOAD=YES")
		}
		if t.hasHoldBack {
			parts = append(parts, fmt.Sprintf("HOLD-BACK=%g", t.holdBack))
		}
		if t.hasPartHoldBack {
			parts = append(parts, fmt.Sprintf("PART-HOLD-BACK=%g", t.partHoldBack))
		}
		if len(parts) == 0 {
			return []byte("#EXT-X-SERVER-CONTROL")
		}
		return []byte("#EXT-X-SERVER-CONTROL:" + strings.Join(parts, ","))
	})
}

// ---- Define (#EXT-X-DEFINE) ----

// Define corresponds to the EXT-X-DEFINE tag, in its NAME/VALUE form.
//
// https://datatracker.ietf.org/doc/html/draft-pantos-hls-rfc8216bis-17#section-4.4.2.2
type Define struct {
	state lineState
	name  string
	value string
}

func NewDefine(name, value string) *Define {
	return &Define{state: newMutatedState(), name: name, value: value}
}

func tryFromDefine(u UnknownTag) (*Define, error) {
	list, err := requireAttributeList("-X-DEFINE", u)
	if err != nil {
		return nil, err
	}
	nameVal, ok := list.Get("NAME")
	if !ok {
		return nil, &ValidationError{Tag: "-X-DEFINE", Kind: ErrMissingRequiredAttribute, Detail: "NAME"}
	}
	valueVal, ok := list.Get("VALUE")
	if !ok {
		return nil, &ValidationError{Tag: "-X-DEFINE", Kind: ErrMissingRequiredAttribute, Detail: "VALUE"}
	}
	return &Define{
		state: newPristineState(u.raw),
		name:  string(nameVal.QuotedString()),
		value: string(valueVal.QuotedString()),
	}, nil
}

func (t *Define) TagNameID() TagName { return TagDefine }
func (t *Define) IsMutated() bool    { return t.state.IsMutated() }
func (t *Define) Name() string       { return t.name }
func (t *Define) Value() string      { return t.value }
func (t *Define) SetValue(v string) {
	t.value = v
	t.state.markMutated()
}
func (t *Define) Line() []byte {
	return t.state.line(func() []byte {
		return []byte(fmt.Sprintf("#EXT-X-DEFINE:NAME=%s,VALUE=%s", quoted(t.name), quoted(t.value)))
	})
}
