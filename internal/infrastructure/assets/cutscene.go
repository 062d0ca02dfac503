package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

const cutsceneFPS = 12.0

// Cutscene plays a directory of numbered PNG frames between levels.
type Cutscene struct {
	frames []*ebiten.Image
	timer  float64
	index  int
}

// LoadCutscene loads the frame sequence for the from->to level handoff.
// Returns nil when the directory is missing or holds no decodable
// frames; callers treat a nil cutscene as "skip straight to the level".
func LoadCutscene(fsys fs.FS, from, to int) *Cutscene {
	if fsys == nil {
		return nil
	}
	dir := fmt.Sprintf("cutscenes/level_%d_to_%d", from, to)
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var frames []*ebiten.Image
	for _, name := range names {
		b, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			continue
		}
		src, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			continue
		}
		frames = append(frames, ebiten.NewImageFromImage(src))
	}
	if len(frames) == 0 {
		return nil
	}
	return &Cutscene{frames: frames}
}

// Update advances the frame clock.
func (c *Cutscene) Update(dt float64) {
	if c == nil || c.Done() {
		return
	}
	c.timer += dt
	for c.timer >= 1.0/cutsceneFPS {
		c.timer -= 1.0 / cutsceneFPS
		c.index++
		if c.Done() {
			return
		}
	}
}

// Skip jumps past the remaining frames.
func (c *Cutscene) Skip() {
	if c == nil {
		return
	}
	c.index = len(c.frames)
}

// Done reports whether the last frame has played out.
func (c *Cutscene) Done() bool {
	return c == nil || c.index >= len(c.frames)
}

// Draw renders the current frame stretched to the screen.
func (c *Cutscene) Draw(screen *ebiten.Image) {
	if c == nil || c.Done() {
		return
	}
	frame := c.frames[c.index]
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
	screen.DrawImage(frame, op)
}
