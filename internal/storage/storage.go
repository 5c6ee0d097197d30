package storage

// Package storage contains object storage abstractions for the media library.
// Drivers (MinIO, AWS S3) stream uploads and never touch local disk.

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrUpload wraps every failure to write an object.
	ErrUpload = errors.New("object upload failed")
	// ErrDelete wraps every failure to remove an object.
	ErrDelete = errors.New("object delete failed")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; -1 lets the driver stream in parts.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object storage client used by the media service.
type Storage interface {
	// Put uploads an object under key. Errors wrap ErrUpload.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Errors wrap ErrDelete.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of key. It is pure formatting and makes no network call.
	URL(key string) string
	// PresignGet returns a time-limited download URL for private buckets.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
