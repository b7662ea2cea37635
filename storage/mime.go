package storage

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const sniffBytes = 3072

var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain; charset=utf-8",
	".csv":  "text/csv; charset=utf-8",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
	".epub": "application/epub+zip",
	".zip":  "application/zip",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// ContentTypeForKey maps a known extension to its MIME type, "" otherwise
func ContentTypeForKey(key string) string {
	return extensionTypes[strings.ToLower(path.Ext(key))]
}

// SniffContentType inspects the leading bytes of a document
func SniffContentType(head []byte) string {
	return mimetype.Detect(head).String()
}

// Filename is the last path segment, used for Content-Disposition
func Filename(key string) string {
	name := path.Base(key)
	if name == "." || name == "/" {
		return "document"
	}
	return strings.ReplaceAll(name, `"`, "")
}
