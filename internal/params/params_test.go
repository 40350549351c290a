package params

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		stretch      float64
		seed         int64
		durationSec  float64
		wantStretch  float64
		wantSeed     int64
		wantDuration time.Duration
	}{
		{
			name:    "正常系: 範囲内の値はそのまま",
			stretch: 3, seed: 42, durationSec: 10,
			wantStretch: 3, wantSeed: 42, wantDuration: 10 * time.Second,
		},
		{
			name:    "正常系: ゼロ値はデフォルトになる",
			stretch: 0, seed: 0, durationSec: 0,
			wantStretch: DefaultStretch, wantSeed: DefaultSeed, wantDuration: 5 * time.Second,
		},
		{
			name:    "正常系: 上限を超えるとクランプされる",
			stretch: 100, seed: 500, durationSec: 90,
			wantStretch: MaxStretch, wantSeed: MaxSeed, wantDuration: 30 * time.Second,
		},
		{
			name:    "正常系: 下限を下回るとクランプされる",
			stretch: 0.1, seed: -3, durationSec: 1,
			wantStretch: MinStretch, wantSeed: MinSeed, wantDuration: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.stretch, tt.seed, tt.durationSec)

			assert.Equal(t, tt.wantStretch, p.Stretch)
			assert.Equal(t, tt.wantSeed, p.Seed)
			assert.Equal(t, tt.wantDuration, p.Duration)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 1, 10))
	assert.Equal(t, 1.0, Clamp(-2, 1, 10))
	assert.Equal(t, 10.0, Clamp(99, 1, 10))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RunParams
	}{
		{
			name:  "正常系: すべて入力",
			input: "4\n7\n12\ny\n",
			want:  RunParams{Stretch: 4, Seed: 7, Duration: 12 * time.Second, Terminate: true},
		},
		{
			name:  "正常系: 空入力はデフォルト",
			input: "\n\n\n\n",
			want:  RunParams{Stretch: 1, Seed: 1, Duration: 5 * time.Second, Terminate: false},
		},
		{
			name:  "正常系: 範囲外はクランプ",
			input: "999\n999\n999\nn\n",
			want:  RunParams{Stretch: 10, Seed: 99, Duration: 30 * time.Second, Terminate: false},
		},
		{
			name:  "異常系: 数値でない入力はデフォルトに落ちる",
			input: "abc\nxyz\n??\nmaybe\n",
			want:  RunParams{Stretch: 1, Seed: 1, Duration: 5 * time.Second, Terminate: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Prompt(strings.NewReader(tt.input), &out)

			assert.Equal(t, tt.want, got)

			// 4つのプロンプトが表示される
			assert.Equal(t, 4, strings.Count(out.String(), "default is"))
		})
	}
}
