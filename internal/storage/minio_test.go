package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cmsapi/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{"missing endpoint", config.StorageConfig{AccessKey: "a", SecretKey: "b", Bucket: "c"}, "endpoint is required"},
		{"missing credentials", config.StorageConfig{Endpoint: "localhost:9000", Bucket: "c"}, "credentials are required"},
		{"missing bucket", config.StorageConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(context.Background(), tt.cfg)
			assert.ErrorContains(t, err, tt.want)
			assert.Nil(t, s)
		})
	}
}
