package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// unitSquare is a 1x1 square template anchored at its lower-left corner.
var unitSquare = geometry.Outline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// square10 is the 10x10 square used by the clearance scenario.
var square10 = geometry.Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func placeAt(x, y float64, outline geometry.Outline, scale float64) scene.Placement {
	return scene.Placement{Anchor: geometry.Point{X: x, Y: y}, Outline: outline, Scale: scale, Color: "red"}
}

func TestOverlaps_BufferBoundary(t *testing.T) {
	const buffer = 2.0
	base := placeAt(0, 0, unitSquare, 1)

	tests := []struct {
		name string
		gap  float64
		want bool
	}{
		{name: "正常系: ぴったりバッファ距離は接触扱いで拒否", gap: buffer, want: true},
		{name: "正常系: バッファ+εは許可", gap: buffer + 0.001, want: false},
		{name: "正常系: バッファ未満は拒否", gap: buffer / 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := placeAt(1+tt.gap, 0, unitSquare, 1)
			assert.Equal(t, tt.want, Overlaps(candidate, []scene.Placement{base}, buffer))
		})
	}
}

func TestOverlaps_ClearanceScenario(t *testing.T) {
	// 10x10の正方形に対してバッファ3.5: 距離3.5は拒否、距離10は許可
	const buffer = 3.5
	placed := placeAt(0, 0, square10, 1)

	rejected := placeAt(10+buffer, 0, square10, 1)
	assert.True(t, Overlaps(rejected, []scene.Placement{placed}, buffer))

	accepted := placeAt(20, 0, square10, 1)
	assert.False(t, Overlaps(accepted, []scene.Placement{placed}, buffer))
}

func TestOverlaps_EdgeCrossing(t *testing.T) {
	a := placeAt(0, 0, square10, 1)
	b := placeAt(5, 5, square10, 1)

	assert.True(t, Overlaps(b, []scene.Placement{a}, 1))
}

func TestOverlaps_Containment(t *testing.T) {
	// 小さな三角形が大きな正方形の内部に完全に収まるケース。バウンディング
	// ボックスは入れ子で交わらないわけではないが、包含チェックは常に走る。
	big := placeAt(0, 0, square10, 1)
	triangle := geometry.Outline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
	small := placeAt(4.5, 4.5, triangle, 1)

	assert.True(t, Overlaps(small, []scene.Placement{big}, 0.1))

	// 対称性: どちらを候補にしても判定は一致する
	assert.Equal(t,
		Overlaps(small, []scene.Placement{big}, 0.1),
		Overlaps(big, []scene.Placement{small}, 0.1))
}

func TestOverlaps_Symmetry(t *testing.T) {
	tests := []struct {
		name   string
		a, b   scene.Placement
		buffer float64
	}{
		{name: "正常系: 離れた正方形", a: placeAt(0, 0, unitSquare, 1), b: placeAt(10, 10, unitSquare, 1), buffer: 1},
		{name: "正常系: 重なる正方形", a: placeAt(0, 0, square10, 1), b: placeAt(3, 3, square10, 1), buffer: 1},
		{name: "正常系: 接近した正方形", a: placeAt(0, 0, unitSquare, 2), b: placeAt(2.5, 0, unitSquare, 1), buffer: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Overlaps(tt.a, []scene.Placement{tt.b}, tt.buffer)
			ba := Overlaps(tt.b, []scene.Placement{tt.a}, tt.buffer)
			assert.Equal(t, ab, ba)
		})
	}
}

func TestOverlaps_EmptyRegistry(t *testing.T) {
	candidate := placeAt(0, 0, unitSquare, 1)
	assert.False(t, Overlaps(candidate, nil, 5))
}

func TestOverlaps_ScaleApplied(t *testing.T) {
	// スケール10のユニット正方形は10x10相当として判定される
	big := placeAt(0, 0, unitSquare, 10)
	inside := placeAt(4, 4, unitSquare, 1)

	assert.True(t, Overlaps(inside, []scene.Placement{big}, 1))
}
