// Package render rasterises committed placements onto an RGBA canvas.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/vector"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// Palette maps the catalogue color labels to RGBA values.
var Palette = map[string]color.RGBA{
	"red":    {R: 0xe5, G: 0x2b, B: 0x2b, A: 0xff},
	"blue":   {R: 0x2b, G: 0x6c, B: 0xe5, A: 0xff},
	"green":  {R: 0x2b, G: 0xb5, B: 0x4c, A: 0xff},
	"yellow": {R: 0xf2, G: 0xd0, B: 0x2e, A: 0xff},
	"purple": {R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
	"orange": {R: 0xf2, G: 0x7f, B: 0x1b, A: 0xff},
	"white":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// DefaultColors lists the labels the driver picks from, in a fixed
// order so seeded runs are reproducible.
var DefaultColors = []string{"red", "blue", "green", "yellow", "purple", "orange", "white"}

// Canvas is a black display surface with the world origin at its
// center and the y axis pointing up. DrawPlacement is called once per
// accepted placement, after the registry append.
type Canvas struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewCanvas creates a black canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// toImage maps a world point to pixel coordinates.
func (c *Canvas) toImage(p geometry.Point) (float32, float32) {
	b := c.img.Bounds()
	return float32(p.X + float64(b.Dx())/2), float32(float64(b.Dy())/2 - p.Y)
}

// DrawPlacement fills the placement's world-space outline in its
// palette color. Unknown color labels fall back to white.
func (c *Canvas) DrawPlacement(p scene.Placement) {
	world := p.WorldOutline()
	if len(world) < 3 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	r := vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	r.MoveTo(c.toImage(world[0]))
	for _, v := range world[1:] {
		r.LineTo(c.toImage(v))
	}
	r.ClosePath()

	fill, ok := Palette[p.Color]
	if !ok {
		fill = Palette["white"]
	}
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(fill), image.Point{})
}

// EncodePNG returns the canvas as PNG bytes.
func (c *Canvas) EncodePNG() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("render: failed to encode canvas: %w", err)
	}
	return buf.Bytes(), nil
}

// Image returns the current canvas image for upload or inspection.
func (c *Canvas) Image() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := image.NewRGBA(c.img.Bounds())
	draw.Draw(copied, copied.Bounds(), c.img, image.Point{}, draw.Src)
	return copied
}

// At returns the pixel color at image coordinates, for tests.
func (c *Canvas) At(x, y int) color.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.img.At(x, y)
}
