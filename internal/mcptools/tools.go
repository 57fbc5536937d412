package mcptools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pdf-toolkit/internal/domain"
	apperrors "pdf-toolkit/pkg/errors"
)

type MergeQuery struct {
	Documents []Source `json:"documents" jsonschema:"two or more PDFs, merged in the given order"`
	Language  string   `json:"language,omitempty" jsonschema:"en or zh, selects the output filename words"`
}

type RotateQuery struct {
	Document Source `json:"document"`
	Angle    int    `json:"angle,omitempty" jsonschema:"clockwise rotation applied to every page: 90, 180 or 270 (default 90)"`
	Language string `json:"language,omitempty" jsonschema:"en or zh, selects the output filename words"`
}

type SplitQuery struct {
	Document Source `json:"document"`
	At       int    `json:"at,omitempty" jsonschema:"last page of the first part, between 1 and page count - 1 (default 1)"`
	Language string `json:"language,omitempty" jsonschema:"en or zh, selects the output filename words"`
}

type CompressQuery struct {
	Document Source `json:"document"`
	Language string `json:"language,omitempty" jsonschema:"en or zh, selects the output filename words"`
}

type ExtractQuery struct {
	Document Source `json:"document"`
	Page     int    `json:"page,omitempty" jsonschema:"1-based page number to extract (default 1)"`
	Language string `json:"language,omitempty" jsonschema:"en or zh, selects the output filename words"`
}

type InfoQuery struct {
	Document Source `json:"document"`
}

func tool[T any](name, description string) *mcp.Tool {
	inputschema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputschema,
	}
}

func MergeTool() *mcp.Tool {
	return tool[MergeQuery]("pdf-merge", "Merge two or more PDF files into one document, keeping every page in upload order")
}

func RotateTool() *mcp.Tool {
	return tool[RotateQuery]("pdf-rotate", "Rotate every page of a PDF clockwise by 90, 180 or 270 degrees")
}

func SplitTool() *mcp.Tool {
	return tool[SplitQuery]("pdf-split", "Split a PDF into two documents: pages 1..at and at+1..end")
}

func CompressTool() *mcp.Tool {
	return tool[CompressQuery]("pdf-compress", "Losslessly shrink a PDF by removing duplicate objects and packing object streams")
}

func ExtractTool() *mcp.Tool {
	return tool[ExtractQuery]("pdf-extract", "Copy a single page of a PDF into a new one-page document")
}

func InfoTool() *mcp.Tool {
	return tool[InfoQuery]("pdf-info", "Report the page count and page sizes of a PDF")
}

func MergeToolHandler(ctx context.Context, req *mcp.CallToolRequest, query MergeQuery, deps Deps) (*mcp.CallToolResult, *OperationResponse, error) {
	if len(query.Documents) < domain.MinMergeFiles {
		return nil, nil, deps.fail("pdf-merge", apperrors.NewValidationError(domain.ErrNotEnoughFiles.Error(), domain.ErrNotEnoughFiles))
	}
	files := make([]domain.UploadedFile, 0, len(query.Documents))
	for _, src := range query.Documents {
		f, err := deps.load(src)
		if err != nil {
			return nil, nil, deps.fail("pdf-merge", err)
		}
		files = append(files, f)
	}

	out, err := deps.PDFService.Merge(ctx, files, deps.words(query.Language))
	if err != nil {
		return nil, nil, deps.fail("pdf-merge", err)
	}
	result, response := documentResult(domain.OperationMerge,
		fmt.Sprintf("Merged %d files into %s (%d pages).", len(files), out.Name, out.PageCount), out)
	return result, response, nil
}

func RotateToolHandler(ctx context.Context, req *mcp.CallToolRequest, query RotateQuery, deps Deps) (*mcp.CallToolResult, *OperationResponse, error) {
	file, err := deps.load(query.Document)
	if err != nil {
		return nil, nil, deps.fail("pdf-rotate", err)
	}
	value := query.Angle
	if value == 0 {
		value = int(domain.Angle90)
	}
	angle, err := domain.ParseAngle(value)
	if err != nil {
		return nil, nil, deps.fail("pdf-rotate", apperrors.NewValidationError(domain.ErrInvalidAngle.Error(), err))
	}

	out, err := deps.PDFService.Rotate(ctx, file, angle, deps.words(query.Language))
	if err != nil {
		return nil, nil, deps.fail("pdf-rotate", err)
	}
	result, response := documentResult(domain.OperationRotate,
		fmt.Sprintf("Rotated %d pages by %d degrees into %s.", out.PageCount, angle, out.Name), out)
	return result, response, nil
}

func SplitToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SplitQuery, deps Deps) (*mcp.CallToolResult, *OperationResponse, error) {
	file, err := deps.load(query.Document)
	if err != nil {
		return nil, nil, deps.fail("pdf-split", err)
	}
	at := query.At
	if at == 0 {
		at = 1
	}

	parts, err := deps.PDFService.Split(ctx, file, at, deps.words(query.Language))
	if err != nil {
		return nil, nil, deps.fail("pdf-split", err)
	}
	result, response := documentResult(domain.OperationSplit,
		fmt.Sprintf("Split %s after page %d into %s (%d pages) and %s (%d pages).",
			file.Name, at, parts[0].Name, parts[0].PageCount, parts[1].Name, parts[1].PageCount),
		parts...)
	return result, response, nil
}

func CompressToolHandler(ctx context.Context, req *mcp.CallToolRequest, query CompressQuery, deps Deps) (*mcp.CallToolResult, *OperationResponse, error) {
	file, err := deps.load(query.Document)
	if err != nil {
		return nil, nil, deps.fail("pdf-compress", err)
	}

	out, err := deps.PDFService.Compress(ctx, file, deps.words(query.Language))
	if err != nil {
		return nil, nil, deps.fail("pdf-compress", err)
	}
	result, response := documentResult(domain.OperationCompress,
		fmt.Sprintf("Compressed %s from %d to %d bytes.", file.Name, len(file.Data), out.Size()), out)
	return result, response, nil
}

func ExtractToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ExtractQuery, deps Deps) (*mcp.CallToolResult, *OperationResponse, error) {
	file, err := deps.load(query.Document)
	if err != nil {
		return nil, nil, deps.fail("pdf-extract", err)
	}
	page := query.Page
	if page == 0 {
		page = 1
	}

	out, err := deps.PDFService.Extract(ctx, file, page, deps.words(query.Language))
	if err != nil {
		return nil, nil, deps.fail("pdf-extract", err)
	}
	result, response := documentResult(domain.OperationExtract,
		fmt.Sprintf("Extracted page %d of %s into %s.", page, file.Name, out.Name), out)
	return result, response, nil
}

func InfoToolHandler(ctx context.Context, req *mcp.CallToolRequest, query InfoQuery, deps Deps) (*mcp.CallToolResult, *domain.DocumentInfo, error) {
	file, err := deps.load(query.Document)
	if err != nil {
		return nil, nil, deps.fail("pdf-info", err)
	}

	info, err := deps.PDFService.Inspect(ctx, file)
	if err != nil {
		return nil, nil, deps.fail("pdf-info", err)
	}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s has %d pages.", info.Name, info.PageCount)},
		},
	}
	return result, info, nil
}
