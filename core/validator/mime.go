package validator

import (
	"mime"
	"strings"
)

// mimeTypes maps file extensions accepted by the mime rule to MIME types.
var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"txt":  "text/plain",
	"pdf":  "application/pdf",
	"zip":  "application/zip",
	"rar":  "application/x-rar-compressed",
}

var imageTypes = []string{"image/jpg", "image/jpeg", "image/png"}

// MIMEType returns the MIME type for a file extension, with or without
// the leading dot. The built-in table wins over the platform table.
func MIMEType(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "", false
	}
	if t, ok := mimeTypes[ext]; ok {
		return t, true
	}
	t := mime.TypeByExtension("." + ext)
	if t == "" {
		return "", false
	}
	media, _, err := mime.ParseMediaType(t)
	if err != nil {
		return "", false
	}
	return media, true
}

func sameMedia(a, b string) bool {
	if media, _, err := mime.ParseMediaType(a); err == nil {
		a = media
	}
	return strings.EqualFold(strings.TrimSpace(a), b)
}
