package model

import (
	"strings"
	"time"
)

// MediaType is the coarse kind of an uploaded file, derived from its content type.
type MediaType string

const (
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeAudio    MediaType = "AUDIO"
	MediaTypeDocument MediaType = "DOCUMENT"
	MediaTypeOther    MediaType = "OTHER"
)

// ParseMediaType accepts a media type name in any case.
func ParseMediaType(s string) (MediaType, bool) {
	mt := MediaType(strings.ToUpper(strings.TrimSpace(s)))
	switch mt {
	case MediaTypeImage, MediaTypeVideo, MediaTypeAudio, MediaTypeDocument, MediaTypeOther:
		return mt, true
	}
	return "", false
}

// Media is an uploaded asset. The object lives in the bucket under S3Key;
// FileURL is derived from S3Key when the record is created.
type Media struct {
	ID               int64        `json:"id"`
	FileName         string       `json:"fileName"`
	OriginalFileName string       `json:"originalFileName"`
	FileURL          string       `json:"fileUrl"`
	S3Key            string       `json:"s3Key"`
	ContentType      string       `json:"contentType"`
	FileSize         int64        `json:"fileSize"`
	MediaType        MediaType    `json:"mediaType"`
	Width            *int         `json:"width"`
	Height           *int         `json:"height"`
	AltText          *string      `json:"altText"`
	Caption          *string      `json:"caption"`
	UploadedByID     *int64       `json:"-"`
	UploadedBy       *UserSummary `json:"uploadedBy"`
	UploadedAt       time.Time    `json:"uploadedAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type MediaSummary struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl"`
	ContentType string    `json:"contentType"`
	MediaType   MediaType `json:"mediaType"`
}
