package placement

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

var testSquare = geometry.Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func newSearcher(seed int64) *Searcher {
	return &Searcher{
		Rand:   rand.New(rand.NewSource(seed)),
		Buffer: 2,
	}
}

func TestNewBounds(t *testing.T) {
	b := NewBounds(1000, 800, 0.8)

	assert.InDelta(t, -400, b.MinX, 1e-9)
	assert.InDelta(t, 400, b.MaxX, 1e-9)
	assert.InDelta(t, -320, b.MinY, 1e-9)
	assert.InDelta(t, 320, b.MaxY, 1e-9)
}

func TestBounds_Inset(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		margin float64
		want   Bounds
	}{
		{
			name:   "正常系: 通常の縮小",
			bounds: Bounds{MinX: -100, MaxX: 100, MinY: -50, MaxY: 50},
			margin: 10,
			want:   Bounds{MinX: -90, MaxX: 90, MinY: -40, MaxY: 40},
		},
		{
			name:   "異常系: マージンが大きすぎると中心に潰れる",
			bounds: Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5},
			margin: 10,
			want:   Bounds{MinX: 0, MaxX: 0, MinY: 0, MaxY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bounds.Inset(tt.margin))
		})
	}
}

func TestTryPlace_EmptyScene(t *testing.T) {
	s := newSearcher(1)
	bounds := NewBounds(1000, 800, 0.8)
	deadline := time.Now().Add(time.Minute)

	p, err := s.TryPlace(testSquare, "red", 2, bounds, nil, deadline)

	require.NoError(t, err)
	assert.Equal(t, "red", p.Color)
	assert.Equal(t, 2.0, p.Scale)

	// アンカーはマージン分内側に収まる
	inset := bounds.Inset(SampleMargin)
	assert.GreaterOrEqual(t, p.Anchor.X, inset.MinX)
	assert.LessOrEqual(t, p.Anchor.X, inset.MaxX)
	assert.GreaterOrEqual(t, p.Anchor.Y, inset.MinY)
	assert.LessOrEqual(t, p.Anchor.Y, inset.MaxY)
}

func TestTryPlace_DeterministicWithSeed(t *testing.T) {
	bounds := NewBounds(1000, 800, 0.8)
	deadline := time.Now().Add(time.Minute)

	p1, err1 := newSearcher(42).TryPlace(testSquare, "blue", 1, bounds, nil, deadline)
	p2, err2 := newSearcher(42).TryPlace(testSquare, "blue", 1, bounds, nil, deadline)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1.Anchor, p2.Anchor)
}

func TestTryPlace_SaturatedCanvas(t *testing.T) {
	// キャンバス全体を覆う巨大な既存シェイプ1つで飽和させる
	huge := scene.Placement{
		Anchor:  geometry.Point{X: -1000, Y: -1000},
		Outline: geometry.Outline{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 200}, {X: 0, Y: 200}},
		Scale:   10,
		Color:   "white",
	}
	s := newSearcher(7)
	bounds := NewBounds(1000, 800, 0.8)
	deadline := time.Now().Add(time.Minute)

	_, err := s.TryPlace(testSquare, "red", 1, bounds, []scene.Placement{huge}, deadline)

	assert.ErrorIs(t, err, ErrExhausted)
}

func TestTryPlace_Deadline(t *testing.T) {
	// 注入クロックを進めて1回目の試行で期限切れにする
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	s := newSearcher(7)
	s.Now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	bounds := NewBounds(1000, 800, 0.8)

	_, err := s.TryPlace(testSquare, "red", 1, bounds, nil, base.Add(500*time.Millisecond))

	assert.ErrorIs(t, err, ErrDeadline)
}
