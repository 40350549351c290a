// Package placement implements the bounded random search that fits one
// shape into a scene without violating the clearance buffer.
package placement

import (
	"errors"
	"math/rand"
	"time"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/overlap"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// MaxAttempts bounds a single search so it terminates even when the
// canvas is saturated.
const MaxAttempts = 10000

// SampleMargin keeps sampled anchors away from the canvas edge so the
// scaled outline stays fully visible.
const SampleMargin = 50.0

// Reject reasons. A rejected shape is non-fatal; the driver moves on to
// the next shape choice.
var (
	ErrDeadline  = errors.New("placement: deadline reached")
	ErrExhausted = errors.New("placement: attempts exhausted")
)

// Bounds is the axis-aligned sampling domain for candidate anchors.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBounds derives the sampling domain from display dimensions and a
// span factor. The world origin sits at the canvas center.
func NewBounds(width, height int, span float64) Bounds {
	halfW := float64(width) / 2 * span
	halfH := float64(height) / 2 * span
	return Bounds{MinX: -halfW, MaxX: halfW, MinY: -halfH, MaxY: halfH}
}

// Inset returns the bounds shrunk by margin on all sides. Bounds too
// small to inset collapse to their center.
func (b Bounds) Inset(margin float64) Bounds {
	out := Bounds{
		MinX: b.MinX + margin,
		MaxX: b.MaxX - margin,
		MinY: b.MinY + margin,
		MaxY: b.MaxY - margin,
	}
	if out.MinX > out.MaxX {
		mid := (b.MinX + b.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MinY > out.MaxY {
		mid := (b.MinY + b.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out
}

// Searcher samples candidate anchors and accepts the first placement
// the overlap oracle clears.
type Searcher struct {
	Rand   *rand.Rand
	Buffer float64

	// Now is the injected clock for deadline polling. Nil means
	// time.Now.
	Now func() time.Time
}

// TryPlace samples anchors uniformly inside the inset bounds until a
// candidate clears every existing placement, the attempt ceiling is
// reached, or the deadline passes. First fit; there is no notion of
// optimal packing. The deadline is polled every attempt.
func (s *Searcher) TryPlace(outline geometry.Outline, color string, scale float64, bounds Bounds, existing []scene.Placement, deadline time.Time) (scene.Placement, error) {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	inset := bounds.Inset(SampleMargin)

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if now().After(deadline) {
			return scene.Placement{}, ErrDeadline
		}

		anchor := geometry.Point{
			X: inset.MinX + s.Rand.Float64()*(inset.MaxX-inset.MinX),
			Y: inset.MinY + s.Rand.Float64()*(inset.MaxY-inset.MinY),
		}
		candidate := scene.Placement{Anchor: anchor, Outline: outline, Scale: scale, Color: color}

		if !overlap.Overlaps(candidate, existing, s.Buffer) {
			return candidate, nil
		}
	}
	return scene.Placement{}, ErrExhausted
}
