package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeJSON        = "application/json"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedVideoExtensions    = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	AllowedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".txt"}
	AllowedImageExtensions    = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}
)
