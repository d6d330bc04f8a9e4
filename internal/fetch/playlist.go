// Package fetch adapts the teacher's hls.go downloader to drive the m3u8
// package's Reader instead of its old regex-based decoder. It is
// consumed by cmd/hlsfetch and is not part of the m3u8 library itself.
package fetch

import (
	"encoding/hex"
	"strings"

	"github.com/quickhls/m3u8/m3u8"
)

// KeyInfo is the decryption key in effect for a Segment, carried forward from
// the most recent #EXT-X-KEY tag (teacher media.go's Key, reshaped around the
// new m3u8.Key record).
type KeyInfo struct {
	Method string
	URI    string
	IV     []byte // decoded from the tag's hex IV, if present
}

// Segment is one media segment URI plus the tag state accumulated since the
// previous URI line (teacher structs.go's Segment).
type Segment struct {
	URI           string
	Duration      float64
	Discontinuity bool
	Key           *KeyInfo
}

// Variant is one #EXT-X-STREAM-INF entry of a master playlist. StreamInf is
// one of the 32 built-in tag names this module's KnownTag table intentionally
// leaves unimplemented (SPEC_FULL.md's DOMAIN STACK table), so its attributes
// are read directly off the UnknownTag's semi-parsed attribute list rather
// than through a dedicated record type.
type Variant struct {
	URI       string
	Bandwidth uint64
	Width     uint64
	Height    uint64
}

// Playlist is the flattened result of walking every Line a Reader produces.
type Playlist struct {
	IsMaster bool
	Segments []Segment
	Variants []Variant
}

// ParsePlaylist walks data with a plain m3u8.Reader (no custom tags) and
// accumulates Segments or Variants depending on what it finds, exercising the
// core Reader the way any external consumer would.
func ParsePlaylist(data []byte) (*Playlist, error) {
	r := m3u8.NewReader[m3u8.NoCustomTag](data, m3u8.NewParsingOptions(), m3u8.CustomTagSpec[m3u8.NoCustomTag]{})

	var pl Playlist
	var pendingDuration float64
	var pendingDiscontinuity bool
	var currentKey *KeyInfo
	var pendingVariant *Variant

	for {
		line, ok, err := r.ReadLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		switch line.Kind() {
		case m3u8.LineKnownTag:
			hls, isHLS := line.KnownTagValue().HLS()
			if !isHLS {
				continue
			}
			switch t := hls.(type) {
			case *m3u8.Inf:
				pendingDuration = t.Duration()
			case *m3u8.Discontinuity:
				pendingDiscontinuity = true
			case *m3u8.Key:
				currentKey = keyInfoFromTag(t)
			}
		case m3u8.LineUnknownTag:
			u := line.UnknownTagValue()
			if string(u.Name) == "-X-STREAM-INF" {
				v := variantFromStreamInf(u)
				pendingVariant = &v
			}
		case m3u8.LineURI:
			uri := string(line.URI())
			if pendingVariant != nil {
				pendingVariant.URI = uri
				pl.Variants = append(pl.Variants, *pendingVariant)
				pendingVariant = nil
				pl.IsMaster = true
				continue
			}
			pl.Segments = append(pl.Segments, Segment{
				URI:           uri,
				Duration:      pendingDuration,
				Discontinuity: pendingDiscontinuity,
				Key:           currentKey,
			})
			pendingDuration = 0
			pendingDiscontinuity = false
		}
	}
	return &pl, nil
}

func keyInfoFromTag(t *m3u8.Key) *KeyInfo {
	if strings.EqualFold(t.Method(), "NONE") {
		return nil
	}
	ki := &KeyInfo{Method: t.Method()}
	if uri, ok := t.URI(); ok {
		ki.URI = uri
	}
	if ivDigits, ok := t.IV(); ok {
		if iv, err := hex.DecodeString(string(ivDigits)); err == nil {
			ki.IV = iv
		}
	}
	return ki
}

func variantFromStreamInf(u m3u8.UnknownTag) Variant {
	var v Variant
	sv := u.SemiParsedValue()
	if sv.Kind() != m3u8.SemiAttributeList {
		return v
	}
	list := sv.AttributeList()
	if bw, ok := list.Get("BANDWIDTH"); ok {
		v.Bandwidth = bw.DecimalInteger()
	}
	if res, ok := list.Get("RESOLUTION"); ok {
		v.Width, v.Height = res.Resolution()
	}
	return v
}
