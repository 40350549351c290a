package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PORT", "ALLOWED_ORIGIN", "AWS_REGION", "S3_BUCKET", "CLOUDFRONT_DOMAIN",
	"CATALOGUE_PATH", "CATALOGUE_KEY", "CANVAS_WIDTH", "CANVAS_HEIGHT",
	"SPAN_FACTOR", "PLACEMENT_BUFFER",
}

func withEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		envVars    map[string]string
		wantPort   string
		wantWidth  int
		wantBuffer float64
	}{
		{
			name:       "正常系: デフォルト値が使用される",
			envVars:    map[string]string{},
			wantPort:   "8080",
			wantWidth:  960,
			wantBuffer: 2.0,
		},
		{
			name: "正常系: 環境変数で上書き",
			envVars: map[string]string{
				"PORT":             "3000",
				"CANVAS_WIDTH":     "1280",
				"PLACEMENT_BUFFER": "3.5",
			},
			wantPort:   "3000",
			wantWidth:  1280,
			wantBuffer: 3.5,
		},
		{
			name: "異常系: 数値にならない値はデフォルトに落ちる",
			envVars: map[string]string{
				"CANVAS_WIDTH":     "wide",
				"PLACEMENT_BUFFER": "thick",
			},
			wantPort:   "8080",
			wantWidth:  960,
			wantBuffer: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.envVars)

			cfg, err := LoadConfig()

			require.NoError(t, err)
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantWidth, cfg.CanvasWidth)
			assert.Equal(t, tt.wantBuffer, cfg.Buffer)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "正常系: デフォルト設定", mutate: func(c *Config) {}, wantErr: false},
		{name: "異常系: ポートが数値でない", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "異常系: キャンバス幅がゼロ", mutate: func(c *Config) { c.CanvasWidth = 0 }, wantErr: true},
		{name: "異常系: スパン係数が範囲外", mutate: func(c *Config) { c.SpanFactor = 1.5 }, wantErr: true},
		{name: "異常系: バッファが負", mutate: func(c *Config) { c.Buffer = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, nil)
			cfg, err := LoadConfig()
			require.NoError(t, err)

			tt.mutate(cfg)

			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
