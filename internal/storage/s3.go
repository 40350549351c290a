// Package storage provides S3 storage integration for shape catalogues
// and rendered scene snapshots.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/google/uuid"
)

// S3ClientInterface defines the interface for S3 operations.
type S3ClientInterface interface {
	GetObject(key string) ([]byte, error)
	PutObject(key string, data []byte) error
	ListObjects(prefix string) ([]string, error)
}

// SnapshotPrefix is the object prefix for uploaded scene images.
const SnapshotPrefix = "scenes/"

// Client wraps S3 operations for the placement backend.
type Client struct {
	client        S3ClientInterface
	cloudfrontURL string
}

// NewClient creates a new Client.
func NewClient(client S3ClientInterface, cloudfrontURL string) *Client {
	return &Client{
		client:        client,
		cloudfrontURL: strings.TrimSuffix(cloudfrontURL, "/"),
	}
}

// GetObject fetches raw bytes by key. It satisfies
// catalogue.ObjectGetter so the loader can read the catalogue straight
// from the bucket.
func (c *Client) GetObject(key string) ([]byte, error) {
	data, err := c.client.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to get object %s: %w", key, err)
	}
	return data, nil
}

// UploadSnapshot encodes the rendered scene as PNG, uploads it under a
// unique key, and returns its CloudFront URL.
func (c *Client) UploadSnapshot(img image.Image) (string, error) {
	key := SnapshotPrefix + uuid.New().String() + ".png"

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("storage: failed to encode snapshot: %w", err)
	}

	if err := c.client.PutObject(key, buf.Bytes()); err != nil {
		return "", fmt.Errorf("storage: failed to upload snapshot: %w", err)
	}

	return fmt.Sprintf("%s/%s", c.cloudfrontURL, key), nil
}

// ListSnapshots returns the keys of previously uploaded scene images.
func (c *Client) ListSnapshots() ([]string, error) {
	keys, err := c.client.ListObjects(SnapshotPrefix)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to list snapshots: %w", err)
	}
	return keys, nil
}
