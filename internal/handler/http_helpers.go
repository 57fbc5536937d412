package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"pdf-toolkit/internal/domain"
	apperrors "pdf-toolkit/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestIDFromContext extracts the request id set by the request middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeAppError maps err to its status code and client-facing message
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), apperrors.UserMessage(err))
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAttachment sends data as a download named filename
func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", contentDisposition(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writePDF sends a produced document with its page count
func writePDF(w http.ResponseWriter, out *domain.OutputFile) {
	w.Header().Set("X-Page-Count", strconv.Itoa(out.PageCount))
	writeAttachment(w, domain.PDFMimeType, out.Name, out.Data)
}

// contentDisposition encodes non-ASCII names per RFC 2231
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
