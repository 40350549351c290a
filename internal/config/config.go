// Package config provides configuration management for the application.
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	Port          string
	AllowedOrigin string

	AWSRegion        string
	S3Bucket         string
	CloudfrontDomain string

	CataloguePath string
	CatalogueKey  string

	CanvasWidth  int
	CanvasHeight int
	SpanFactor   float64
	Buffer       float64
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		AllowedOrigin:    getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		AWSRegion:        getEnv("AWS_REGION", "ap-northeast-1"),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		CloudfrontDomain: getEnv("CLOUDFRONT_DOMAIN", ""),
		CataloguePath:    getEnv("CATALOGUE_PATH", "shapes.txt"),
		CatalogueKey:     getEnv("CATALOGUE_KEY", "catalogue/shapes.txt"),
		CanvasWidth:      getEnvInt("CANVAS_WIDTH", 960),
		CanvasHeight:     getEnvInt("CANVAS_HEIGHT", 720),
		SpanFactor:       getEnvFloat("SPAN_FACTOR", 0.8),
		Buffer:           getEnvFloat("PLACEMENT_BUFFER", 2.0),
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.New("invalid port: must be a number")
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return errors.New("invalid canvas size: must be positive")
	}
	if c.SpanFactor <= 0 || c.SpanFactor > 1 {
		return errors.New("invalid span factor: must be in (0, 1]")
	}
	if c.Buffer < 0 {
		return errors.New("invalid placement buffer: must be non-negative")
	}
	return nil
}

// getEnv returns the value of an environment variable or a default
// value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
