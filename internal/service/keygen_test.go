package service

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cmsapi/internal/model"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9\-_]{1,50}-\d+-[0-9a-f]{8}(\.\w+)?$`)

func TestStorageKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	tests := []struct {
		name     string
		original string
		want     string
	}{
		{"spaces replaced", "my photo.jpg", "my-photo-1700000000123-a1b2c3d4.jpg"},
		{"no extension", "README", "README-1700000000123-a1b2c3d4"},
		{"last dot splits", "archive.tar.gz", "archive-tar-1700000000123-a1b2c3d4.gz"},
		{"empty name", "", "file-1700000000123-a1b2c3d4"},
		{"dotfile", ".env", "file-1700000000123-a1b2c3d4.env"},
		{"unicode runes", "café_menü.pdf", "caf-_men--1700000000123-a1b2c3d4.pdf"},
		{"extension kept verbatim", "a.j g", "a-1700000000123-a1b2c3d4.j g"},
		{"keeps underscore and hyphen", "a_b-c.png", "a_b-c-1700000000123-a1b2c3d4.png"},
		{"long base truncated", strings.Repeat("x", 80) + ".webp", strings.Repeat("x", 50) + "-1700000000123-a1b2c3d4.webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storageKey(tt.original, now, "a1b2c3d4"))
		})
	}
}

func TestStorageKey_Pattern(t *testing.T) {
	names := []string{"my photo.jpg", "", "report (final) v2.pdf", "ünïcödé.mp4", strings.Repeat("long name ", 20) + ".txt", "plain"}
	for _, name := range names {
		key := storageKey(name, time.Now(), randomSuffix())
		assert.Regexp(t, keyPattern, key, "name %q", name)
	}
}

func TestStorageKey_SameNameNeverCollides(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := storageKey("my photo.jpg", now, randomSuffix())
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestRandomSuffix(t *testing.T) {
	assert.Regexp(t, `^[0-9a-f]{8}$`, randomSuffix())
}

func TestClassifyMediaType(t *testing.T) {
	tests := []struct {
		contentType string
		want        model.MediaType
	}{
		{"image/jpeg", model.MediaTypeImage},
		{"IMAGE/PNG", model.MediaTypeImage},
		{"video/mp4", model.MediaTypeVideo},
		{"audio/mpeg", model.MediaTypeAudio},
		{"application/pdf", model.MediaTypeDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", model.MediaTypeDocument},
		{"text/plain", model.MediaTypeDocument},
		{"application/zip", model.MediaTypeOther},
		{"application/octet-stream", model.MediaTypeOther},
		{"", model.MediaTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyMediaType(tt.contentType))
		})
	}
}
