package filesvc

import (
	"mime"
	"path/filepath"
	"strings"
)

const defaultMimeType = "application/octet-stream"

// detectMimeType определяет Content-Type по расширению объявленного имени.
func detectMimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return defaultMimeType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	// Fallback для систем с бедной mime-таблицей.
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mp3":
		return "audio/mpeg"
	case ".pdf":
		return "application/pdf"
	case ".txt", ".log", ".md":
		return "text/plain; charset=utf-8"
	case ".zip":
		return "application/zip"
	case ".gz":
		return "application/gzip"
	default:
		return defaultMimeType
	}
}
