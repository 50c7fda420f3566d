package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// ValidateMimeType sniffs the first 512 bytes and checks the detected MIME
// type against the allowed prefixes or exact types ("image/", "application/pdf").
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/") || mimeType == "application/x-mpegURL"
}

func HasAllowedExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range allowed {
		if ext == e {
			return true
		}
	}
	return false
}

// BuildStorageKey builds the object key for an upload. The user-supplied
// original filename never enters the key; only its extension survives. The
// original name is preserved in the record's title/file_name fields instead.
func BuildStorageKey(dir, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return dir + "/" + time.Now().Format("20060102150405") + "_" + GenerateRandomString(6) + ext
}
