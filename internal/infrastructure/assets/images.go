// Package assets loads sprites, sounds and cutscene frames from an asset
// tree. Every loader degrades gracefully: missing art becomes a solid
// placeholder tile and missing audio becomes silence, so the game stays
// playable from a bare checkout.
package assets

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Images loads and caches sprite textures.
type Images struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewImages creates an image loader over fsys.
func NewImages(fsys fs.FS) *Images {
	return &Images{fsys: fsys, cache: map[string]*ebiten.Image{}}
}

// Sprite returns the decoded image at path, or a w-by-h placeholder tile
// when the file is missing or corrupt. Results are cached per path.
// A nil receiver returns nil.
func (im *Images) Sprite(path string, w, h int) *ebiten.Image {
	if im == nil {
		return nil
	}
	if img, ok := im.cache[path]; ok {
		return img
	}

	img := im.decode(path)
	if img == nil {
		img = placeholder(w, h, PlaceholderColor(path))
	}
	im.cache[path] = img
	return img
}

func (im *Images) decode(path string) *ebiten.Image {
	if im.fsys == nil || path == "" {
		return nil
	}
	b, err := fs.ReadFile(im.fsys, path)
	if err != nil {
		log.Printf("assets: %s not found, using placeholder", path)
		return nil
	}
	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("assets: decode %s: %v, using placeholder", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(src)
}

// PlaceholderColor derives a stable, fully-opaque color from an asset
// path, so every missing sprite gets its own recognizable tint.
func PlaceholderColor(path string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(path))
	sum := h.Sum32()
	return color.RGBA{
		R: 64 + uint8(sum)%160,
		G: 64 + uint8(sum>>8)%160,
		B: 64 + uint8(sum>>16)%160,
		A: 255,
	}
}

func placeholder(w, h int, c color.RGBA) *ebiten.Image {
	if w <= 0 {
		w = 32
	}
	if h <= 0 {
		h = 32
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}
