package domain

import "context"

// PDFService defines the document operations exposed over HTTP and MCP
type PDFService interface {
	Merge(ctx context.Context, files []UploadedFile, words NameWords) (*OutputFile, error)
	Rotate(ctx context.Context, file UploadedFile, angle Angle, words NameWords) (*OutputFile, error)
	Split(ctx context.Context, file UploadedFile, at int, words NameWords) ([]*OutputFile, error)
	Compress(ctx context.Context, file UploadedFile, words NameWords) (*OutputFile, error)
	Extract(ctx context.Context, file UploadedFile, page int, words NameWords) (*OutputFile, error)
	Inspect(ctx context.Context, file UploadedFile) (*DocumentInfo, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetDefaultLanguage() string
	GetAllowedOrigins() []string
	GetValidationMode() string
}
