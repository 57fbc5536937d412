// Package mcptools exposes the PDF operations as Model Context Protocol tools.
package mcptools

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/i18n"
	apperrors "pdf-toolkit/pkg/errors"
)

const resourceScheme = "pdf-toolkit"

// Deps are the collaborators every tool handler needs
type Deps struct {
	PDFService  domain.PDFService
	Localizer   *i18n.Localizer
	Logger      domain.Logger
	MaxFileSize int64
}

// Source is a PDF supplied either inline or as a local file path
type Source struct {
	RawData  []byte `json:"raw_data,omitempty" jsonschema:"PDF bytes, base64 encoded in JSON"`
	Path     string `json:"path,omitempty" jsonschema:"path of a PDF file readable by the server"`
	Filename string `json:"filename,omitempty" jsonschema:"name used to derive the output filename"`
}

// FileSummary describes one produced document
type FileSummary struct {
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count"`
	Size      int    `json:"size"`
	URI       string `json:"uri"`
}

// OperationResponse is the structured result of a document-producing tool
type OperationResponse struct {
	Operation string        `json:"operation"`
	Files     []FileSummary `json:"files"`
}

// load resolves src into an uploaded file
func (d Deps) load(src Source) (domain.UploadedFile, error) {
	name := src.Filename
	if name == "" && src.Path != "" {
		name = filepath.Base(src.Path)
	}
	if name == "" {
		name = "document.pdf"
	}
	if !domain.HasPDFExtension(name) {
		return domain.UploadedFile{}, apperrors.NewUnsupportedMediaError(
			domain.ErrNotPDF.Error(), fmt.Errorf("%w: %s", domain.ErrNotPDF, name))
	}

	var data []byte
	switch {
	case len(src.RawData) > 0:
		data = src.RawData
	case src.Path != "":
		info, err := os.Stat(src.Path)
		if err != nil {
			return domain.UploadedFile{}, apperrors.NewValidationError("Could not open "+src.Path, err)
		}
		if d.MaxFileSize > 0 && info.Size() > d.MaxFileSize {
			return domain.UploadedFile{}, apperrors.NewTooLargeError(
				fmt.Sprintf("File too large. Maximum size is %d MB.", d.MaxFileSize>>20), nil)
		}
		data, err = os.ReadFile(src.Path)
		if err != nil {
			return domain.UploadedFile{}, apperrors.NewValidationError("Could not read "+src.Path, err)
		}
	default:
		return domain.UploadedFile{}, apperrors.NewValidationError(domain.ErrNoFile.Error(), domain.ErrNoFile)
	}

	if d.MaxFileSize > 0 && int64(len(data)) > d.MaxFileSize {
		return domain.UploadedFile{}, apperrors.NewTooLargeError(
			fmt.Sprintf("File too large. Maximum size is %d MB.", d.MaxFileSize>>20), nil)
	}
	return domain.UploadedFile{Name: name, Data: data}, nil
}

func (d Deps) words(language string) domain.NameWords {
	return d.Localizer.NameWords(d.Localizer.Resolve(language, ""))
}

// fail logs err and converts it to the message returned to the client
func (d Deps) fail(tool string, err error) error {
	if apperrors.GetStatusCode(err) >= 500 {
		d.Logger.Error("Tool failed", err, "tool", tool)
	} else {
		d.Logger.Warn("Tool rejected input", "tool", tool, "reason", err.Error())
	}
	return errors.New(apperrors.UserMessage(err))
}

func resourceURI(name string) string {
	return resourceScheme + "://output/" + url.PathEscape(name)
}

// documentResult embeds every output as an application/pdf resource
func documentResult(op domain.Operation, summary string, outputs ...*domain.OutputFile) (*mcp.CallToolResult, *OperationResponse) {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: summary}},
	}
	response := &OperationResponse{Operation: string(op)}
	for _, out := range outputs {
		uri := resourceURI(out.Name)
		result.Content = append(result.Content, &mcp.EmbeddedResource{
			Resource: &mcp.ResourceContents{
				URI:      uri,
				MIMEType: domain.PDFMimeType,
				Blob:     out.Data,
			},
		})
		response.Files = append(response.Files, FileSummary{
			Filename:  out.Name,
			PageCount: out.PageCount,
			Size:      out.Size(),
			URI:       uri,
		})
	}
	return result, response
}
