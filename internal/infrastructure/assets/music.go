package assets

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const musicFadeDuration = 0.5

// Music owns the looped background track. Switching tracks fades the
// current one out over half a second before the next one starts; the
// fade is stepped from the scene's Update so it follows game time.
type Music struct {
	ctx    *audio.Context
	fsys   fs.FS
	player *audio.Player
	track  string
	volume float64

	fading    bool
	fadeLeft  float64
	nextTrack string
}

// NewMusic creates a music player over fsys.
func NewMusic(ctx *audio.Context, fsys fs.FS) *Music {
	return &Music{ctx: ctx, fsys: fsys, volume: 1.0}
}

// Switch fades into the track at path. Switching to the already-playing
// track is a no-op, so scenes can call it every level load. Nil-safe.
func (m *Music) Switch(path string) {
	if m == nil || m.ctx == nil {
		return
	}
	if path == m.track && !m.fading {
		return
	}
	if m.player == nil {
		m.start(path)
		return
	}
	m.fading = true
	m.fadeLeft = musicFadeDuration
	m.nextTrack = path
}

// SetVolume sets the steady-state playback volume. Nil-safe.
func (m *Music) SetVolume(v float64) {
	if m == nil {
		return
	}
	m.volume = v
	if m.player != nil && !m.fading {
		m.player.SetVolume(v)
	}
}

// Update advances a fade in progress.
func (m *Music) Update(dt float64) {
	if m == nil || !m.fading {
		return
	}
	m.fadeLeft -= dt
	if m.fadeLeft <= 0 {
		m.fading = false
		m.Stop()
		m.start(m.nextTrack)
		return
	}
	if m.player != nil {
		m.player.SetVolume(m.volume * m.fadeLeft / musicFadeDuration)
	}
}

// Stop halts playback immediately. Nil-safe.
func (m *Music) Stop() {
	if m == nil {
		return
	}
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
	m.track = ""
	m.fading = false
}

func (m *Music) start(path string) {
	if path == "" {
		return
	}
	stream := decodeStream(m.fsys, path)
	if stream == nil {
		return
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		return
	}
	p.SetVolume(m.volume)
	p.Play()
	m.player = p
	m.track = path
}
