package m3u8

// tryFromHLS routes a recognized built-in TagName to its concrete record's
// TryFrom. It returns (nil, nil) for the 12 built-in names this module
// intentionally leaves unimplemented (see SPEC_FULL.md's DOMAIN STACK table) —
// the caller treats that the same as an unrecognized name.
func tryFromHLS(tn TagName, u UnknownTag) (HLSTag, error) {
	switch tn {
	case TagM3u:
		return tryFromM3u(u)
	case TagVersion:
		return tryFromVersion(u)
	case TagIndependentSegments:
		return tryFromIndependentSegments(u)
	case TagStart:
		return tryFromStart(u)
	case TagTargetDuration:
		return tryFromTargetDuration(u)
	case TagMediaSequence:
		return tryFromMediaSequence(u)
	case TagDiscontinuitySequence:
		return tryFromDiscontinuitySequence(u)
	case TagEndList:
		return tryFromEndList(u)
	case TagPlaylistType:
		return tryFromPlaylistType(u)
	case TagIFramesOnly:
		return tryFromIFramesOnly(u)
	case TagDiscontinuity:
		return tryFromDiscontinuity(u)
	case TagGap:
		return tryFromGap(u)
	case TagInf:
		return tryFromInf(u)
	case TagByterange:
		return tryFromByterange(u)
	case TagProgramDateTime:
		return tryFromProgramDateTime(u)
	case TagBitrate:
		return tryFromBitrate(u)
	case TagKey:
		return tryFromKey(u)
	case TagMap:
		return tryFromMap(u)
	case TagServerControl:
		return tryFromServerControl(u)
	case TagDefine:
		return tryFromDefine(u)
	default:
		// TagPartInf, TagPart, TagDaterange, TagSkip, TagPreloadHint,
		// TagRenditionReport, TagMedia, TagStreamInf, TagIFrameStreamInf,
		// TagSessionData, TagSessionKey, TagContentSteering: not implemented.
		return nil, nil
	}
}
