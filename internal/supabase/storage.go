package supabase

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
	"portfolio-backend/internal/config"
)

const publicObjectPrefix = "/storage/v1/object/public/"

type StorageClient struct {
	client  *storage.Client
	buckets config.Buckets
	baseURL string
}

func NewStorageClient(supabaseURL, key string, buckets config.Buckets) (*StorageClient, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	client := storage.NewClient(baseURL+"/storage/v1", key, nil)

	return &StorageClient{
		client:  client,
		buckets: buckets,
		baseURL: baseURL,
	}, nil
}

// GenerateFilename returns a collision-resistant object name: upload time in
// milliseconds plus a random suffix.
func GenerateFilename(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, strings.ToLower(ext))
}

func (s *StorageClient) Upload(bucket, filename string, data []byte, contentType string) (string, string, error) {
	if !s.buckets.Has(bucket) {
		return "", "", fmt.Errorf("unknown bucket %q", bucket)
	}

	upsert := false
	_, err := s.client.UploadFile(bucket, filename, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return filename, s.PublicURL(bucket, filename), nil
}

func (s *StorageClient) PublicURL(bucket, storagePath string) string {
	return fmt.Sprintf("%s%s%s/%s", s.baseURL, publicObjectPrefix, bucket, storagePath)
}

// ObjectFromURL maps a public object URL back to its bucket and path. Root
// relative paths, data URLs and URLs of other hosts or buckets are not
// storage objects this service owns.
func (s *StorageClient) ObjectFromURL(publicURL string) (string, string, bool) {
	if publicURL == "" || strings.HasPrefix(publicURL, "data:") {
		return "", "", false
	}
	u, err := url.Parse(publicURL)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	base, err := url.Parse(s.baseURL)
	if err != nil || !strings.EqualFold(u.Host, base.Host) {
		return "", "", false
	}
	rest, ok := strings.CutPrefix(u.Path, publicObjectPrefix)
	if !ok {
		return "", "", false
	}
	bucket, objectPath, ok := strings.Cut(rest, "/")
	if !ok || objectPath == "" || !s.buckets.Has(bucket) {
		return "", "", false
	}
	return bucket, objectPath, true
}

// RemoveByURL deletes the object behind a public URL. It reports false
// without error when the URL does not point at a managed object.
func (s *StorageClient) RemoveByURL(publicURL string) (bool, error) {
	bucket, objectPath, ok := s.ObjectFromURL(publicURL)
	if !ok {
		return false, nil
	}
	if err := s.DeleteFile(bucket, objectPath); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StorageClient) DeleteFile(bucket, storagePath string) error {
	_, err := s.client.RemoveFile(bucket, []string{storagePath})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, storagePath, err)
	}
	return nil
}
