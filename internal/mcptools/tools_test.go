package mcptools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/i18n"
	"pdf-toolkit/internal/pdftest"
	"pdf-toolkit/internal/service"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}

func testDeps() Deps {
	return Deps{
		PDFService:  service.NewPDFService("relaxed", nopLogger{}),
		Localizer:   i18n.NewLocalizer("en"),
		Logger:      nopLogger{},
		MaxFileSize: 1 << 20,
	}
}

func embeddedPDFs(t *testing.T, result *mcp.CallToolResult) []*mcp.ResourceContents {
	t.Helper()
	var out []*mcp.ResourceContents
	for _, c := range result.Content {
		if r, ok := c.(*mcp.EmbeddedResource); ok {
			assert.Equal(t, domain.PDFMimeType, r.Resource.MIMEType)
			out = append(out, r.Resource)
		}
	}
	return out
}

func TestMergeToolHandler(t *testing.T) {
	deps := testDeps()
	query := MergeQuery{Documents: []Source{
		{RawData: pdftest.Pages(2), Filename: "a.pdf"},
		{RawData: pdftest.Pages(1), Filename: "b.pdf"},
	}}

	result, response, err := MergeToolHandler(context.Background(), nil, query, deps)
	require.NoError(t, err)

	require.Len(t, response.Files, 1)
	assert.Equal(t, "merge", response.Operation)
	assert.Equal(t, "a_b_merged.pdf", response.Files[0].Filename)
	assert.Equal(t, 3, response.Files[0].PageCount)
	assert.Equal(t, "pdf-toolkit://output/a_b_merged.pdf", response.Files[0].URI)

	resources := embeddedPDFs(t, result)
	require.Len(t, resources, 1)
	assert.Equal(t, response.Files[0].URI, resources[0].URI)
	assert.Len(t, resources[0].Blob, response.Files[0].Size)
}

func TestMergeToolHandler_NeedsTwoDocuments(t *testing.T) {
	_, _, err := MergeToolHandler(context.Background(), nil, MergeQuery{Documents: []Source{
		{RawData: pdftest.Pages(1), Filename: "a.pdf"},
	}}, testDeps())

	require.Error(t, err)
	assert.Equal(t, domain.ErrNotEnoughFiles.Error(), err.Error())
}

func TestRotateToolHandler_DefaultsTo90(t *testing.T) {
	_, response, err := RotateToolHandler(context.Background(), nil, RotateQuery{
		Document: Source{RawData: pdftest.Pages(1), Filename: "scan.pdf"},
	}, testDeps())
	require.NoError(t, err)
	assert.Equal(t, "scan_rotated_90.pdf", response.Files[0].Filename)
}

func TestRotateToolHandler_InvalidAngle(t *testing.T) {
	_, _, err := RotateToolHandler(context.Background(), nil, RotateQuery{
		Document: Source{RawData: pdftest.Pages(1), Filename: "scan.pdf"},
		Angle:    45,
	}, testDeps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidAngle.Error())
}

func TestSplitToolHandler(t *testing.T) {
	result, response, err := SplitToolHandler(context.Background(), nil, SplitQuery{
		Document: Source{RawData: pdftest.Pages(4), Filename: "book.pdf"},
		At:       3,
		Language: "zh",
	}, testDeps())
	require.NoError(t, err)

	require.Len(t, response.Files, 2)
	assert.Equal(t, "book_第1部分.pdf", response.Files[0].Filename)
	assert.Equal(t, 3, response.Files[0].PageCount)
	assert.Equal(t, "book_第2部分.pdf", response.Files[1].Filename)
	assert.Equal(t, 1, response.Files[1].PageCount)
	assert.Len(t, embeddedPDFs(t, result), 2)
}

func TestSplitToolHandler_SinglePage(t *testing.T) {
	_, _, err := SplitToolHandler(context.Background(), nil, SplitQuery{
		Document: Source{RawData: pdftest.Pages(1), Filename: "one.pdf"},
	}, testDeps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSinglePage.Error())
}

func TestCompressToolHandler_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Pages(2), 0o600))

	_, response, err := CompressToolHandler(context.Background(), nil, CompressQuery{
		Document: Source{Path: path},
	}, testDeps())
	require.NoError(t, err)
	assert.Equal(t, "report_compressed.pdf", response.Files[0].Filename)
	assert.Equal(t, 2, response.Files[0].PageCount)
}

func TestExtractToolHandler(t *testing.T) {
	_, response, err := ExtractToolHandler(context.Background(), nil, ExtractQuery{
		Document: Source{RawData: pdftest.Pages(3), Filename: "deck.pdf"},
		Page:     2,
	}, testDeps())
	require.NoError(t, err)
	assert.Equal(t, "deck_page2.pdf", response.Files[0].Filename)
	assert.Equal(t, 1, response.Files[0].PageCount)
}

func TestInfoToolHandler(t *testing.T) {
	_, info, err := InfoToolHandler(context.Background(), nil, InfoQuery{
		Document: Source{RawData: pdftest.Pages(3), Filename: "deck.pdf"},
	}, testDeps())
	require.NoError(t, err)
	assert.Equal(t, 3, info.PageCount)
	assert.True(t, info.CanSplit)
	require.Len(t, info.Pages, 3)
	assert.Equal(t, float64(pdftest.WidthOf(2)), info.Pages[1].Width)
}

func TestLoad_Errors(t *testing.T) {
	deps := testDeps()
	tests := []struct {
		name string
		src  Source
	}{
		{"no data", Source{Filename: "a.pdf"}},
		{"wrong extension", Source{RawData: pdftest.Pages(1), Filename: "a.docx"}},
		{"missing path", Source{Path: filepath.Join(t.TempDir(), "missing.pdf")}},
		{"too large", Source{RawData: make([]byte, deps.MaxFileSize+1), Filename: "a.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deps.load(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestCreateServer(t *testing.T) {
	assert.NotNil(t, CreateServer(testDeps(), "test"))
}

func TestToolSchemas(t *testing.T) {
	for _, tool := range []*mcp.Tool{MergeTool(), RotateTool(), SplitTool(), CompressTool(), ExtractTool(), InfoTool()} {
		assert.NotNil(t, tool.InputSchema, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
}
