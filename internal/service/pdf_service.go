package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/filter"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdf-toolkit/internal/domain"
	apperrors "pdf-toolkit/pkg/errors"
)

var disableConfigDir sync.Once

// PDFService implements domain.PDFService on top of pdfcpu. Every call works
// on its own copy of the input bytes and its own pdfcpu configuration, so the
// service is safe for concurrent requests.
type PDFService struct {
	strict bool
	logger domain.Logger
}

// NewPDFService creates a PDF service. validationMode is "strict" or
// "relaxed"; anything else means relaxed.
func NewPDFService(validationMode string, logger domain.Logger) *PDFService {
	// pdfcpu would otherwise create a config directory under the user's home
	disableConfigDir.Do(api.DisableConfigDir)

	return &PDFService{
		strict: validationMode == "strict",
		logger: logger,
	}
}

func (s *PDFService) newConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if s.strict {
		conf.ValidationMode = model.ValidationStrict
	}
	return conf
}

// Merge appends the pages of every file, in order, into one document
func (s *PDFService) Merge(ctx context.Context, files []domain.UploadedFile, words domain.NameWords) (out *domain.OutputFile, err error) {
	defer recoverAsError("merge", &err)

	if len(files) < domain.MinMergeFiles {
		return nil, apperrors.NewValidationError(domain.ErrNotEnoughFiles.Error(), domain.ErrNotEnoughFiles)
	}

	readers := make([]io.ReadSeeker, 0, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		if err := checkFile(f); err != nil {
			return nil, err
		}
		readers = append(readers, bytes.NewReader(f.Data))
		names = append(names, f.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, s.newConf()); err != nil {
		return nil, apperrors.NewProcessingError("Could not merge PDFs", err)
	}

	out, err = s.output(words.MergedName(names), buf.Bytes())
	if err != nil {
		return nil, err
	}
	s.logger.Info("PDFs merged", "inputs", len(files), "output", out.Name, "pages", out.PageCount, "bytes", out.Size())
	return out, nil
}

// Rotate turns every page clockwise by angle
func (s *PDFService) Rotate(ctx context.Context, file domain.UploadedFile, angle domain.Angle, words domain.NameWords) (out *domain.OutputFile, err error) {
	defer recoverAsError("rotate", &err)

	if _, err := domain.ParseAngle(int(angle)); err != nil {
		return nil, apperrors.NewValidationError(domain.ErrInvalidAngle.Error(), err)
	}
	if err := checkFile(file); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// nil page selection means all pages
	if err := api.Rotate(bytes.NewReader(file.Data), &buf, int(angle), nil, s.newConf()); err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not rotate %s", file.Name), err)
	}

	out, err = s.output(words.RotatedName(file.Name, angle), buf.Bytes())
	if err != nil {
		return nil, err
	}
	s.logger.Info("PDF rotated", "input", file.Name, "angle", int(angle), "output", out.Name, "pages", out.PageCount)
	return out, nil
}

// Split partitions the document into pages [1, at] and [at+1, n]
func (s *PDFService) Split(ctx context.Context, file domain.UploadedFile, at int, words domain.NameWords) (parts []*domain.OutputFile, err error) {
	defer recoverAsError("split", &err)

	pdfCtx, err := s.readContext(ctx, file)
	if err != nil {
		return nil, err
	}

	total := pdfCtx.PageCount
	if err := domain.ValidateSplitPoint(at, total); err != nil {
		return nil, apperrors.NewValidationError(splitMessage(err), err)
	}

	ranges := [][]int{pageRange(1, at), pageRange(at+1, total)}
	parts = make([]*domain.OutputFile, 0, len(ranges))
	for i, pages := range ranges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		partCtx, err := pdfcpu.ExtractPages(pdfCtx, pages, false)
		if err != nil {
			return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not split %s", file.Name), err)
		}
		var buf bytes.Buffer
		if err := api.WriteContext(partCtx, &buf); err != nil {
			return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not split %s", file.Name), err)
		}
		parts = append(parts, &domain.OutputFile{
			Name:      words.PartName(file.Name, i+1),
			Data:      buf.Bytes(),
			PageCount: len(pages),
		})
	}

	s.logger.Info("PDF split", "input", file.Name, "at", at, "pages", total,
		"part1", parts[0].Name, "part2", parts[1].Name)
	return parts, nil
}

// Compress re-serializes the document losslessly: unreferenced and duplicate
// objects are dropped, every unfiltered stream is flate encoded and objects
// are packed into compressed object streams.
func (s *PDFService) Compress(ctx context.Context, file domain.UploadedFile, words domain.NameWords) (out *domain.OutputFile, err error) {
	defer recoverAsError("compress", &err)

	conf := s.newConf()
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true

	pdfCtx, err := s.readContextWith(ctx, file, conf)
	if err != nil {
		return nil, err
	}
	deflated, err := deflateStreams(pdfCtx)
	if err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not compress %s", file.Name), err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(pdfCtx, &buf); err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not compress %s", file.Name), err)
	}

	out, err = s.output(words.CompressedName(file.Name), buf.Bytes())
	if err != nil {
		return nil, err
	}
	s.logger.Info("PDF compressed", "input", file.Name, "before", len(file.Data), "after", out.Size(),
		"deflated_streams", deflated, "output", out.Name)
	return out, nil
}

// Extract copies a single page (1-based) into a new document
func (s *PDFService) Extract(ctx context.Context, file domain.UploadedFile, page int, words domain.NameWords) (out *domain.OutputFile, err error) {
	defer recoverAsError("extract", &err)

	pdfCtx, err := s.readContext(ctx, file)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePageNumber(page, pdfCtx.PageCount); err != nil {
		return nil, apperrors.NewValidationError(domain.ErrPageOutOfRange.Error(), err)
	}

	r, err := api.ExtractPage(pdfCtx, page)
	if err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not extract page %d", page), err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewInternalError("Failed to read extracted page", err)
	}

	out = &domain.OutputFile{
		Name:      words.PageName(file.Name, page),
		Data:      data,
		PageCount: 1,
	}
	s.logger.Info("PDF page extracted", "input", file.Name, "page", page, "output", out.Name)
	return out, nil
}

// Inspect reports the page count and per-page geometry
func (s *PDFService) Inspect(ctx context.Context, file domain.UploadedFile) (info *domain.DocumentInfo, err error) {
	defer recoverAsError("inspect", &err)

	pdfCtx, err := s.readContext(ctx, file)
	if err != nil {
		return nil, err
	}

	info = &domain.DocumentInfo{
		Name:      file.Name,
		PageCount: pdfCtx.PageCount,
		CanSplit:  pdfCtx.PageCount >= 2,
		Pages:     make([]domain.PageInfo, 0, pdfCtx.PageCount),
	}
	for i := 1; i <= pdfCtx.PageCount; i++ {
		_, _, inh, err := pdfCtx.PageDict(i, false)
		if err != nil {
			return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not read page %d", i), err)
		}
		p := domain.PageInfo{Number: i}
		if inh != nil {
			box := inh.CropBox
			if box == nil {
				box = inh.MediaBox
			}
			if box != nil {
				p.Width, p.Height = box.Width(), box.Height()
			}
			p.Rotation = normalizeRotation(inh.Rotate)
		}
		info.Pages = append(info.Pages, p)
	}
	return info, nil
}

func (s *PDFService) readContext(ctx context.Context, file domain.UploadedFile) (*model.Context, error) {
	return s.readContextWith(ctx, file, s.newConf())
}

func (s *PDFService) readContextWith(ctx context.Context, file domain.UploadedFile, conf *model.Configuration) (*model.Context, error) {
	if err := checkFile(file); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(file.Data), conf)
	if err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not read %s", file.Name), err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, apperrors.NewProcessingError(fmt.Sprintf("Could not count pages of %s", file.Name), err)
	}
	return pdfCtx, nil
}

// output wraps serialized bytes and counts their pages
func (s *PDFService) output(name string, data []byte) (*domain.OutputFile, error) {
	n, err := api.PageCount(bytes.NewReader(data), s.newConf())
	if err != nil {
		return nil, apperrors.NewInternalError("Produced an unreadable PDF", err)
	}
	return &domain.OutputFile{Name: name, Data: data, PageCount: n}, nil
}

// deflateStreams flate encodes every stream stored without a filter and
// reports how many were encoded.
func deflateStreams(pdfCtx *model.Context) (int, error) {
	n := 0
	for _, entry := range pdfCtx.XRefTable.Table {
		if entry == nil || entry.Free {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok || len(sd.FilterPipeline) > 0 {
			continue
		}
		sd.Content = sd.Raw
		sd.FilterPipeline = []types.PDFFilter{{Name: filter.Flate}}
		sd.InsertName("Filter", filter.Flate)
		if err := sd.Encode(); err != nil {
			return n, err
		}
		entry.Object = sd
		n++
	}
	return n, nil
}

func checkFile(f domain.UploadedFile) error {
	if len(f.Data) == 0 {
		return apperrors.NewValidationError(domain.ErrEmptyFile.Error(), fmt.Errorf("%w: %s", domain.ErrEmptyFile, f.Name))
	}
	return nil
}

func splitMessage(err error) string {
	if errors.Is(err, domain.ErrSinglePage) {
		return domain.ErrSinglePage.Error()
	}
	return domain.ErrSplitOutOfRange.Error()
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

func normalizeRotation(r int) int {
	r %= 360
	if r < 0 {
		r += 360
	}
	return r
}

// recoverAsError turns a panic inside pdfcpu into a processing error
func recoverAsError(op string, err *error) {
	if r := recover(); r != nil {
		*err = apperrors.NewProcessingError("Could not "+op+" PDF", fmt.Errorf("pdf engine panic: %v", r))
	}
}
