package handler

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/i18n"
	apperrors "pdf-toolkit/pkg/errors"
)

const (
	fieldFile  = "file"
	fieldFiles = "files"
)

// PDFHandler handles HTTP requests for PDF operations
type PDFHandler struct {
	pdfService  domain.PDFService
	localizer   *i18n.Localizer
	logger      domain.Logger
	maxFileSize int64
}

// NewPDFHandler creates a new PDF handler instance. maxFileSize bounds the
// whole request body.
func NewPDFHandler(pdfService domain.PDFService, localizer *i18n.Localizer, logger domain.Logger, maxFileSize int64) *PDFHandler {
	return &PDFHandler{
		pdfService:  pdfService,
		localizer:   localizer,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Merge handles POST /pdf/merge with two or more "files" parts
func (h *PDFHandler) Merge(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	files, err := readUploads(r, fieldFiles)
	if err != nil {
		h.fail(w, r, "merge", err)
		return
	}
	if len(files) < domain.MinMergeFiles {
		h.fail(w, r, "merge", apperrors.NewValidationError(domain.ErrNotEnoughFiles.Error(), domain.ErrNotEnoughFiles))
		return
	}

	out, err := h.pdfService.Merge(r.Context(), files, h.words(r))
	if err != nil {
		h.fail(w, r, "merge", err)
		return
	}
	writePDF(w, out)
}

// Rotate handles POST /pdf/rotate with "file" and "angle"
func (h *PDFHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, err := readUpload(r)
	if err != nil {
		h.fail(w, r, "rotate", err)
		return
	}
	value, err := intField(r, "angle", int(domain.Angle90))
	if err != nil {
		h.fail(w, r, "rotate", err)
		return
	}
	angle, err := domain.ParseAngle(value)
	if err != nil {
		h.fail(w, r, "rotate", apperrors.NewValidationError(domain.ErrInvalidAngle.Error(), err))
		return
	}

	out, err := h.pdfService.Rotate(r.Context(), file, angle, h.words(r))
	if err != nil {
		h.fail(w, r, "rotate", err)
		return
	}
	writePDF(w, out)
}

// Split handles POST /pdf/split with "file", "at" (default 1) and an
// optional "part". Without a part both halves are returned as a zip archive.
func (h *PDFHandler) Split(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, err := readUpload(r)
	if err != nil {
		h.fail(w, r, "split", err)
		return
	}
	at, err := intField(r, "at", 1)
	if err != nil {
		h.fail(w, r, "split", err)
		return
	}
	part, err := intField(r, "part", 0)
	if err != nil {
		h.fail(w, r, "split", err)
		return
	}
	if part != 0 && part != 1 && part != 2 {
		h.fail(w, r, "split", apperrors.NewValidationError(domain.ErrInvalidPart.Error(), domain.ErrInvalidPart))
		return
	}

	parts, err := h.pdfService.Split(r.Context(), file, at, h.words(r))
	if err != nil {
		h.fail(w, r, "split", err)
		return
	}

	if part != 0 {
		writePDF(w, parts[part-1])
		return
	}

	archive, err := zipOutputs(parts)
	if err != nil {
		h.fail(w, r, "split", apperrors.NewInternalError("Failed to package split result", err))
		return
	}
	writeAttachment(w, "application/zip", domain.Stem(file.Name)+".zip", archive)
}

// Compress handles POST /pdf/compress with "file"
func (h *PDFHandler) Compress(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, err := readUpload(r)
	if err != nil {
		h.fail(w, r, "compress", err)
		return
	}

	out, err := h.pdfService.Compress(r.Context(), file, h.words(r))
	if err != nil {
		h.fail(w, r, "compress", err)
		return
	}
	writePDF(w, out)
}

// Extract handles POST /pdf/extract with "file" and "page"
func (h *PDFHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, err := readUpload(r)
	if err != nil {
		h.fail(w, r, "extract", err)
		return
	}
	page, err := intField(r, "page", 1)
	if err != nil {
		h.fail(w, r, "extract", err)
		return
	}

	out, err := h.pdfService.Extract(r.Context(), file, page, h.words(r))
	if err != nil {
		h.fail(w, r, "extract", err)
		return
	}
	writePDF(w, out)
}

// Inspect handles POST /pdf/info and reports page count and geometry
func (h *PDFHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	file, err := readUpload(r)
	if err != nil {
		h.fail(w, r, "info", err)
		return
	}

	info, err := h.pdfService.Inspect(r.Context(), file)
	if err != nil {
		h.fail(w, r, "info", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// parseForm reads the multipart body, bounded by maxFileSize. It writes the
// error response itself and reports whether handling should continue.
func (h *PDFHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	// keep uploads in memory; nothing is spooled to disk below the body limit
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, "upload", apperrors.NewTooLargeError(
				fmt.Sprintf("Upload too large. Maximum request size is %d MB.", h.maxFileSize>>20), err))
			return false
		}
		h.fail(w, r, "upload", apperrors.NewValidationError("Expected a multipart/form-data upload", err))
		return false
	}
	return true
}

func (h *PDFHandler) words(r *http.Request) domain.NameWords {
	lang := h.localizer.Resolve(r.FormValue("lang"), r.Header.Get("Accept-Language"))
	return h.localizer.NameWords(lang)
}

func (h *PDFHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	requestID, _ := GetRequestIDFromContext(r)
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("PDF operation failed", err, "operation", op, "request_id", requestID)
	} else {
		h.logger.Warn("PDF operation rejected", "operation", op, "status", status, "reason", err.Error(), "request_id", requestID)
	}
	writeAppError(w, err)
}

// readUpload returns the single "file" part
func readUpload(r *http.Request) (domain.UploadedFile, error) {
	files, err := readUploads(r, fieldFile)
	if err != nil {
		return domain.UploadedFile{}, err
	}
	if len(files) == 0 {
		return domain.UploadedFile{}, apperrors.NewValidationError(domain.ErrNoFile.Error(), domain.ErrNoFile)
	}
	return files[0], nil
}

// readUploads loads every part of field, in upload order
func readUploads(r *http.Request, field string) ([]domain.UploadedFile, error) {
	if r.MultipartForm == nil {
		return nil, apperrors.NewValidationError(domain.ErrNoFile.Error(), domain.ErrNoFile)
	}
	headers := r.MultipartForm.File[field]
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readPart(fh *multipart.FileHeader) (domain.UploadedFile, error) {
	name := cleanFilename(fh.Filename)
	if !domain.HasPDFExtension(name) {
		return domain.UploadedFile{}, apperrors.NewUnsupportedMediaError(
			domain.ErrNotPDF.Error(), fmt.Errorf("%w: %s", domain.ErrNotPDF, name))
	}

	f, err := fh.Open()
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("Failed to open upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("Failed to read upload", err)
	}
	return domain.UploadedFile{Name: name, Data: data}, nil
}

// cleanFilename strips any client path components
func cleanFilename(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = filepath.Base(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "document.pdf"
	}
	return name
}

// intField parses an optional integer form value
func intField(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be an integer", name), err)
	}
	return v, nil
}

func zipOutputs(outputs []*domain.OutputFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, out := range outputs {
		entry, err := zw.Create(out.Name)
		if err != nil {
			return nil, err
		}
		if _, err := entry.Write(out.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
