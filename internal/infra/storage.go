package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StorageClient talks to the Supabase Storage REST API. Uploads are the only
// write path the backend needs; the storefront consumes public URLs directly
// from the CDN.
type StorageClient struct {
	baseURL    string
	bucket     string
	serviceKey string
	httpClient *http.Client
}

func NewStorageClient(baseURL, bucket, serviceKey string) *StorageClient {
	return &StorageClient{
		baseURL:    baseURL,
		bucket:     bucket,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload streams body into bucket/path, overwriting any existing object, and
// returns the public URL.
func (c *StorageClient) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("storage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("storage: upload returned %d", resp.StatusCode)
	}
	return c.PublicURL(path), nil
}

// Delete removes an object. Missing objects are not an error: the caller is
// usually cleaning up after a catalog delete.
func (c *StorageClient) Delete(ctx context.Context, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("storage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage: delete returned %d", resp.StatusCode)
	}
	return nil
}

// PublicURL builds the CDN-served URL for an object in the public bucket.
func (c *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
