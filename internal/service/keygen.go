package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"cmsapi/internal/model"
)

const maxKeyBaseLen = 50

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// storageKey derives a unique object key from an uploaded file name:
// <sanitized base>-<epoch millis>-<suffix>[.<ext>].
func storageKey(originalName string, now time.Time, suffix string) string {
	base, ext := originalName, ""
	if i := strings.LastIndex(originalName, "."); i >= 0 {
		base, ext = originalName[:i], originalName[i+1:]
	}

	base = unsafeKeyChars.ReplaceAllString(base, "-")
	if len(base) > maxKeyBaseLen {
		base = base[:maxKeyBaseLen]
	}
	if base == "" {
		base = "file"
	}

	key := base + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
	if ext != "" {
		key += "." + ext
	}
	return key
}

// randomSuffix returns 8 lowercase hex characters.
func randomSuffix() string {
	return uuid.NewString()[:8]
}

// classifyMediaType maps a MIME content type onto a media kind.
func classifyMediaType(contentType string) model.MediaType {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "image/"):
		return model.MediaTypeImage
	case strings.HasPrefix(ct, "video/"):
		return model.MediaTypeVideo
	case strings.HasPrefix(ct, "audio/"):
		return model.MediaTypeAudio
	case strings.Contains(ct, "pdf"), strings.Contains(ct, "document"), strings.Contains(ct, "text"):
		return model.MediaTypeDocument
	}
	return model.MediaTypeOther
}
