package assets

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Library bundles the loaders for one asset tree. All methods tolerate a
// nil receiver, so scenes can run without assets in tests.
type Library struct {
	fsys   fs.FS
	images *Images
	sounds *Sounds
	music  *Music
}

// NewLibrary opens the asset tree rooted at dir.
func NewLibrary(dir string) *Library {
	return NewFSLibrary(os.DirFS(dir))
}

// NewFSLibrary builds a library over fsys. The audio context is created
// here; ebiten allows a single context per process.
func NewFSLibrary(fsys fs.FS) *Library {
	ctx := audio.NewContext(sampleRate)
	return &Library{
		fsys:   fsys,
		images: NewImages(fsys),
		sounds: NewSounds(ctx, fsys),
		music:  NewMusic(ctx, fsys),
	}
}

// Sprite loads the sprite at path, falling back to a w-by-h placeholder.
func (l *Library) Sprite(path string, w, h int) *ebiten.Image {
	if l == nil {
		return nil
	}
	return l.images.Sprite(path, w, h)
}

// PlaySound fires a one-shot effect.
func (l *Library) PlaySound(path string, volume float64) {
	if l == nil {
		return
	}
	l.sounds.Play(path, volume)
}

// Music returns the background music player, or nil without assets.
func (l *Library) Music() *Music {
	if l == nil {
		return nil
	}
	return l.music
}

// Cutscene loads the level handoff sequence, nil when absent.
func (l *Library) Cutscene(from, to int) *Cutscene {
	if l == nil {
		return nil
	}
	return LoadCutscene(l.fsys, from, to)
}
