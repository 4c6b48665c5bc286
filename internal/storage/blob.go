// blob.go
//
// Roadmap and user feedback management service
// Copyright (c) 2026 the roadmap-feedback authors
//
// This file is part of roadmap-feedback.
// roadmap-feedback is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roadmap-feedback is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roadmap-feedback.
// If not, see <https://www.gnu.org/licenses/>.

// Package storage persists uploaded images either in an S3-compatible blob
// store or, when none is configured, on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/030106mia/Roadmap-Feedback/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MaxUploadSize is the byte limit for one uploaded image.
const MaxUploadSize = 5 * 1024 * 1024

// extByContentType maps the accepted image content types to file extensions.
var extByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// AllowedContentType reports whether ct is an accepted image type.
func AllowedContentType(ct string) bool {
	_, ok := extByContentType[ct]
	return ok
}

// BlobStore stores uploaded images. When client is nil, files land under
// uploadDir and are served from /uploads.
type BlobStore struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	useSSL    bool
	uploadDir string
}

// NewBlobStore builds a store from configuration. A configured endpoint
// selects the S3-compatible backend and ensures the bucket exists; otherwise
// the local filesystem backend is used.
func NewBlobStore(cfg *config.Config) (*BlobStore, error) {
	store := &BlobStore{
		bucket:    cfg.BlobBucket,
		endpoint:  cfg.BlobEndpoint,
		useSSL:    cfg.BlobUseSSL,
		uploadDir: cfg.UploadDir,
	}

	if cfg.BlobEndpoint == "" {
		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir: %w", err)
		}
		log.Printf("Blob store: local filesystem at %s", cfg.UploadDir)
		return store, nil
	}

	client, err := minio.New(cfg.BlobEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.BlobAccessKey, cfg.BlobSecretKey, ""),
		Secure: cfg.BlobUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}
	store.client = client

	exists, err := client.BucketExists(context.Background(), cfg.BlobBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.BlobBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.BlobBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.BlobBucket, err)
		}
	}

	log.Printf("Blob store: %s bucket %s", cfg.BlobEndpoint, cfg.BlobBucket)
	return store, nil
}

// Put stores one image and returns its public URL. The object name is a
// fresh UUID with an extension derived from the content type.
func (s *BlobStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("file exceeds %d byte limit", MaxUploadSize)
	}

	name := uuid.NewString() + ext

	if s.client == nil {
		path := filepath.Join(s.uploadDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return "/uploads/" + name, nil
	}

	_, err := s.client.PutObject(ctx, s.bucket, name,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", name, err)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, name), nil
}
