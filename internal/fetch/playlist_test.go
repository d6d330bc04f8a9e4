package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediaPlaylist = "#EXTM3U\n" +
	"#EXT-X-VERSION:3\n" +
	"#EXT-X-TARGETDURATION:10\n" +
	"#EXT-X-KEY:METHOD=AES-128,URI=\"https://example.com/key\",IV=0x00000000000000000000000000000001\n" +
	"#EXTINF:9.009,\n" +
	"first.ts\n" +
	"#EXT-X-DISCONTINUITY\n" +
	"#EXTINF:9.009,\n" +
	"second.ts\n" +
	"#EXT-X-ENDLIST\n"

const masterPlaylist = "#EXTM3U\n" +
	"#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=640x360\n" +
	"low/index.m3u8\n" +
	"#EXT-X-STREAM-INF:BANDWIDTH=4500000,RESOLUTION=1920x1080\n" +
	"high/index.m3u8\n"

func TestParsePlaylistMediaSegmentsCarryKeyAndDiscontinuity(t *testing.T) {
	pl, err := ParsePlaylist([]byte(mediaPlaylist))
	require.NoError(t, err)
	assert.False(t, pl.IsMaster)
	require.Len(t, pl.Segments, 2)

	first := pl.Segments[0]
	assert.Equal(t, "first.ts", first.URI)
	assert.Equal(t, 9.009, first.Duration)
	assert.False(t, first.Discontinuity)
	require.NotNil(t, first.Key)
	assert.Equal(t, "AES-128", first.Key.Method)
	assert.Equal(t, "https://example.com/key", first.Key.URI)
	assert.Len(t, first.Key.IV, 16)

	second := pl.Segments[1]
	assert.Equal(t, "second.ts", second.URI)
	assert.True(t, second.Discontinuity)
	require.NotNil(t, second.Key)
}

func TestParsePlaylistMasterVariants(t *testing.T) {
	pl, err := ParsePlaylist([]byte(masterPlaylist))
	require.NoError(t, err)
	assert.True(t, pl.IsMaster)
	require.Len(t, pl.Variants, 2)

	assert.Equal(t, "low/index.m3u8", pl.Variants[0].URI)
	assert.EqualValues(t, 1280000, pl.Variants[0].Bandwidth)
	assert.EqualValues(t, 640, pl.Variants[0].Width)
	assert.EqualValues(t, 360, pl.Variants[0].Height)

	assert.Equal(t, "high/index.m3u8", pl.Variants[1].URI)
	assert.EqualValues(t, 1920, pl.Variants[1].Width)
}

func TestChooseVariantBestWorstAndExactWidth(t *testing.T) {
	pl, err := ParsePlaylist([]byte(masterPlaylist))
	require.NoError(t, err)

	best, err := chooseVariant(pl.Variants, "best")
	require.NoError(t, err)
	assert.EqualValues(t, 1920, best.Width)

	worst, err := chooseVariant(pl.Variants, "worst")
	require.NoError(t, err)
	assert.EqualValues(t, 640, worst.Width)

	exact, err := chooseVariant(pl.Variants, "640x360")
	require.NoError(t, err)
	assert.EqualValues(t, 640, exact.Width)

	_, err = chooseVariant(pl.Variants, "9999x9999")
	assert.Error(t, err)
}
