package assets

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Sounds decodes and plays one-shot sound effects. Each Play spawns a
// fresh player over cached PCM, so overlapping effects mix naturally.
type Sounds struct {
	ctx   *audio.Context
	fsys  fs.FS
	cache map[string][]byte
}

// NewSounds creates a sound effect player over fsys. ctx may be shared
// with the music player; ebiten allows only one context per process.
func NewSounds(ctx *audio.Context, fsys fs.FS) *Sounds {
	return &Sounds{ctx: ctx, fsys: fsys, cache: map[string][]byte{}}
}

// Play fires the effect at path with the given volume. Missing or
// undecodable files are logged once and stay silent. Nil-safe.
func (s *Sounds) Play(path string, volume float64) {
	if s == nil || s.ctx == nil || path == "" {
		return
	}
	pcm, ok := s.cache[path]
	if !ok {
		pcm = decodePCM(s.fsys, path)
		s.cache[path] = pcm
	}
	if len(pcm) == 0 {
		return
	}

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
}

// decodePCM reads and fully decodes an audio file to raw PCM. Returns
// nil on any failure.
func decodePCM(fsys fs.FS, path string) []byte {
	stream := decodeStream(fsys, path)
	if stream == nil {
		return nil
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		log.Printf("assets: read %s: %v", path, err)
		return nil
	}
	return pcm
}

// loopStream is the subset shared by the wav and mp3 decoders.
type loopStream interface {
	io.ReadSeeker
	Length() int64
}

func decodeStream(fsys fs.FS, path string) loopStream {
	if fsys == nil {
		return nil
	}
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("assets: %s not found, muted", path)
		return nil
	}

	r := bytes.NewReader(b)
	var stream loopStream
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".mp3"):
		stream, err = mp3.DecodeWithSampleRate(sampleRate, r)
	default:
		stream, err = wav.DecodeWithSampleRate(sampleRate, r)
	}
	if err != nil {
		log.Printf("assets: decode %s: %v, muted", path, err)
		return nil
	}
	return stream
}
