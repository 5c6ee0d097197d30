package storage

import (
	"fmt"
	"strings"
)

// PublicURL formats object URLs from a fixed base.
type PublicURL struct {
	base string
}

// NewPublicURL builds the URL template for bucket. When override is set it is used as
// the base (e.g. "http://localhost:9000/cms-media"); otherwise the virtual-hosted AWS form
// https://<bucket>.s3.<region>.amazonaws.com is used.
func NewPublicURL(bucket, region, override string) PublicURL {
	if override != "" {
		return PublicURL{base: strings.TrimRight(override, "/")}
	}
	return PublicURL{base: fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)}
}

// For returns the URL of key.
func (p PublicURL) For(key string) string {
	return p.base + "/" + strings.TrimLeft(key, "/")
}
