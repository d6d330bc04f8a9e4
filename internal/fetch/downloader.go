package fetch

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/quickhls/m3u8/progressbar"
)

// Downloader fetches a stream's segments and muxes them into a single output
// file, adapted from the teacher's hls.go Downloader: same AES-128 decryption
// and worker-pool download loop, now fed by internal/fetch.ParsePlaylist
// instead of the teacher's old regex decoder.
type Downloader struct {
	mu sync.Mutex

	client  *http.Client
	logger  *log.Logger
	quality string
	threads int

	keyCache map[string][]byte // key URI -> fetched raw key bytes
}

// New constructs a Downloader. logger may be nil, in which case a default
// charmbracelet/log logger writing to stderr is used.
func New(client *http.Client, logger *log.Logger, quality string, threads int) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	if threads <= 0 {
		threads = 1
	}
	return &Downloader{
		client:   client,
		logger:   logger,
		quality:  quality,
		threads:  threads,
		keyCache: make(map[string][]byte),
	}
}

// Download fetches playlistURL, resolves a master playlist to its best or worst
// variant (by height), or to a variant whose width equals the width in a
// "<width>x<height>" quality, when necessary, and muxes the resulting media
// playlist's segments into output via ffmpeg.
func (d *Downloader) Download(playlistURL, output string) error {
	tempDir, err := os.MkdirTemp("", "hlsfetch-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pl, resolvedURL, err := d.fetchPlaylist(playlistURL)
	if err != nil {
		return fmt.Errorf("fetching playlist: %w", err)
	}

	if pl.IsMaster {
		variant, err := chooseVariant(pl.Variants, d.quality)
		if err != nil {
			return err
		}
		variantURL := resolveURL(resolvedURL, variant.URI)
		d.logger.Info("selected variant", "bandwidth", variant.Bandwidth, "width", variant.Width, "height", variant.Height)

		pl, resolvedURL, err = d.fetchPlaylist(variantURL)
		if err != nil {
			return fmt.Errorf("fetching variant media playlist: %w", err)
		}
		if pl.IsMaster {
			return fmt.Errorf("variant playlist url %q is itself a master playlist", variantURL)
		}
	}

	return d.downloadMediaPlaylist(pl, resolvedURL, output, tempDir)
}

func (d *Downloader) fetchPlaylist(playlistURL string) (*Playlist, string, error) {
	resp, err := d.client.Get(playlistURL)
	if err != nil {
		return nil, "", fmt.Errorf("getting playlist: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading playlist body: %w", err)
	}
	pl, err := ParsePlaylist(data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing playlist: %w", err)
	}
	return pl, playlistURL, nil
}

func chooseVariant(variants []Variant, quality string) (Variant, error) {
	if len(variants) == 0 {
		return Variant{}, fmt.Errorf("master playlist has no variants")
	}
	sorted := make([]Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })

	switch strings.ToLower(quality) {
	case "", "best":
		return sorted[len(sorted)-1], nil
	case "worst":
		return sorted[0], nil
	default:
		split := strings.SplitN(quality, "x", 2)
		width, err := strconv.ParseUint(split[0], 10, 64)
		if err != nil {
			return Variant{}, fmt.Errorf("invalid quality %q: %w", quality, err)
		}
		for _, v := range sorted {
			if v.Width == width {
				return v, nil
			}
		}
		return Variant{}, fmt.Errorf("no variant found matching quality %q", quality)
	}
}

func resolveURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func (d *Downloader) downloadMediaPlaylist(pl *Playlist, playlistURL, output, tempDir string) error {
	segCount := len(pl.Segments)
	if segCount == 0 {
		return fmt.Errorf("media playlist has no segments")
	}

	indexes := make([]int, segCount)
	concatParts := make([]string, segCount)
	for i := 0; i < segCount; i++ {
		indexes[i] = i
		concatParts[i] = strconv.Itoa(i) + ".ts"
	}
	concatStr := "concat:" + strings.Join(concatParts, "|")

	bar := progressbar.New(segCount)
	completed := 0

	var wg sync.WaitGroup
	for i := 0; i < d.threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				d.mu.Lock()
				if len(indexes) == 0 {
					d.mu.Unlock()
					return
				}
				idx := indexes[0]
				indexes = indexes[1:]
				seg := pl.Segments[idx]
				d.mu.Unlock()

				if err := d.downloadSegment(seg, idx, playlistURL, tempDir); err != nil {
					d.logger.Warn("segment download failed, requeueing", "index", idx, "error", err)
					d.mu.Lock()
					indexes = append(indexes, idx)
					d.mu.Unlock()
					continue
				}

				d.mu.Lock()
				completed++
				line := bar.Render(completed)
				d.mu.Unlock()
				fmt.Fprint(os.Stderr, line)
			}
		}()
	}
	wg.Wait()
	fmt.Fprintln(os.Stderr)

	cmd := exec.Command("ffmpeg", "-i", concatStr, "-c", "copy", "-y", output)
	cmd.Dir = tempDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running ffmpeg: %s: %w", stderr.String(), err)
	}
	d.logger.Info("wrote output", "path", output)
	return nil
}

func (d *Downloader) downloadSegment(seg Segment, index int, playlistURL, tempDir string) error {
	segURL := resolveURL(playlistURL, seg.URI)
	resp, err := d.client.Get(segURL)
	if err != nil {
		return fmt.Errorf("getting segment: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading segment body: %w", err)
	}

	out := body
	if seg.Key != nil && !strings.EqualFold(seg.Key.Method, "NONE") {
		keyBytes, err := d.fetchKeyBytes(resolveURL(playlistURL, seg.Key.URI))
		if err != nil {
			return fmt.Errorf("fetching segment key: %w", err)
		}
		out, err = decryptAES128CBC(body, keyBytes, seg.Key.IV, index)
		if err != nil {
			return fmt.Errorf("decrypting segment: %w", err)
		}
	}

	// Trim to the first MPEG-TS sync byte so segments concatenate cleanly,
	// matching the teacher's downloadSegment.
	const syncByte = 0x47
	for j, b := range out {
		if b == syncByte {
			out = out[j:]
			break
		}
	}

	path := filepath.Join(tempDir, strconv.Itoa(index)+".ts")
	return os.WriteFile(path, out, 0o644)
}

func (d *Downloader) fetchKeyBytes(keyURL string) ([]byte, error) {
	d.mu.Lock()
	if cached, ok := d.keyCache[keyURL]; ok {
		d.mu.Unlock()
		return cached, nil
	}
	d.mu.Unlock()

	resp, err := d.client.Get(keyURL)
	if err != nil {
		return nil, fmt.Errorf("getting key: %w", err)
	}
	defer resp.Body.Close()
	keyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading key body: %w", err)
	}

	d.mu.Lock()
	d.keyCache[keyURL] = keyBytes
	d.mu.Unlock()
	return keyBytes, nil
}

func decryptAES128CBC(data, key, iv []byte, mediaSequence int) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("segment length %d is not a multiple of the AES block size", len(data))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating aes cipher: %w", err)
	}
	if len(iv) == 0 {
		iv = []byte(fmt.Sprintf("%016d", mediaSequence))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv length %d, want %d", len(iv), aes.BlockSize)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	if len(out) == 0 {
		return out, nil
	}
	padding := int(out[len(out)-1])
	if padding <= 0 || padding > len(out) {
		return out, nil
	}
	return out[:len(out)-padding], nil
}
