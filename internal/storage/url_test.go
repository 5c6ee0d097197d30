package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		region   string
		override string
		key      string
		want     string
	}{
		{
			name:   "aws virtual hosted",
			bucket: "cms-media",
			region: "eu-west-1",
			key:    "my-photo-1700000000000-1a2b3c4d.jpg",
			want:   "https://cms-media.s3.eu-west-1.amazonaws.com/my-photo-1700000000000-1a2b3c4d.jpg",
		},
		{
			name:     "override without trailing slash",
			bucket:   "cms-media",
			region:   "us-east-1",
			override: "http://localhost:9000/cms-media",
			key:      "file-1-00000000",
			want:     "http://localhost:9000/cms-media/file-1-00000000",
		},
		{
			name:     "override with trailing slash",
			override: "https://cdn.example.com/",
			key:      "a.png",
			want:     "https://cdn.example.com/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPublicURL(tt.bucket, tt.region, tt.override).For(tt.key))
		})
	}
}
