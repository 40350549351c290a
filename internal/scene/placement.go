// Package scene holds the committed placements of one fill session.
package scene

import (
	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
)

// Placement is one committed shape instance: an outline template
// anchored, scaled and colored. The outline is shared by reference with
// every other placement of the same template and is never mutated.
type Placement struct {
	Anchor  geometry.Point
	Outline geometry.Outline
	Scale   float64
	Color   string
}

// WorldOutline returns the placement's vertices in world space:
// anchor + scale * outline[i].
func (p Placement) WorldOutline() []geometry.Point {
	world := make([]geometry.Point, len(p.Outline))
	for i, v := range p.Outline {
		world[i] = geometry.Point{
			X: p.Anchor.X + v.X*p.Scale,
			Y: p.Anchor.Y + v.Y*p.Scale,
		}
	}
	return world
}

// BoundingBox returns the placement's world-space box expanded by
// buffer on all sides.
func (p Placement) BoundingBox(buffer float64) (minX, maxX, minY, maxY float64) {
	return geometry.BoundingBox(p.Outline, p.Anchor, p.Scale, buffer)
}
