package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
)

// Buckets used by the portal.
const (
	BucketUsers    = "usuario"
	BucketProjects = "proyectos"
	BucketVideos   = "reuniones-videos"
)

// Uploader stores an object and returns nothing; PublicURL derives the
// client-visible address. Split out as an interface so services can be
// tested without a live storage backend.
type Uploader interface {
	Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) error
	PublicURL(bucket, path string) string
}

// Client talks to a Supabase-Storage-compatible REST endpoint.
// Objects are uploaded with upsert semantics: re-uploading the same path
// replaces the previous object.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a storage client.
func NewClient(cfg *config.StorageConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// Upload stores an object under bucket/path.
func (c *Client) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading upload body: %w", err)
	}

	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("storage upload rejected",
			zap.String("bucket", bucket),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

// PublicURL returns the public address of an object.
func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, bucket, path)
}
