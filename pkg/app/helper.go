package app

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectContentType sniffs the MIME type of data from its leading bytes.
func DetectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
