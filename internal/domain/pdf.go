package domain

import "fmt"

// Operation identifies one of the document tools offered by the service
type Operation string

const (
	OperationMerge    Operation = "merge"
	OperationRotate   Operation = "rotate"
	OperationSplit    Operation = "split"
	OperationCompress Operation = "compress"
	OperationExtract  Operation = "extract"
)

// Operations lists the tools in the order they are presented to users
var Operations = []Operation{
	OperationMerge,
	OperationRotate,
	OperationSplit,
	OperationCompress,
	OperationExtract,
}

// MinMergeFiles is the smallest number of uploads a merge accepts
const MinMergeFiles = 2

// PDFMimeType is the content type of every produced document
const PDFMimeType = "application/pdf"

// Angle is a clockwise page rotation in degrees
type Angle int

const (
	Angle90  Angle = 90
	Angle180 Angle = 180
	Angle270 Angle = 270
)

// Angles lists the supported rotations
var Angles = []Angle{Angle90, Angle180, Angle270}

// ParseAngle validates a rotation value
func ParseAngle(v int) (Angle, error) {
	for _, a := range Angles {
		if int(a) == v {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidAngle, v)
}

// UploadedFile is a PDF received from a user, held in memory for one request
type UploadedFile struct {
	Name string
	Data []byte
}

// OutputFile is a serialized result document ready for download
type OutputFile struct {
	Name      string `json:"filename"`
	Data      []byte `json:"-"`
	PageCount int    `json:"page_count"`
}

// Size returns the output length in bytes
func (f *OutputFile) Size() int {
	return len(f.Data)
}

// PageInfo describes the geometry of a single page
type PageInfo struct {
	Number   int     `json:"number"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation"`
}

// DocumentInfo summarizes an uploaded document
type DocumentInfo struct {
	Name      string     `json:"filename"`
	PageCount int        `json:"page_count"`
	CanSplit  bool       `json:"can_split"`
	Pages     []PageInfo `json:"pages"`
}

// ValidateSplitPoint checks 1 <= at <= pageCount-1
func ValidateSplitPoint(at, pageCount int) error {
	if pageCount < 2 {
		return ErrSinglePage
	}
	if at < 1 || at > pageCount-1 {
		return &RangeError{Err: ErrSplitOutOfRange, Value: at, Min: 1, Max: pageCount - 1}
	}
	return nil
}

// ValidatePageNumber checks 1 <= page <= pageCount
func ValidatePageNumber(page, pageCount int) error {
	if page < 1 || page > pageCount {
		return &RangeError{Err: ErrPageOutOfRange, Value: page, Min: 1, Max: pageCount}
	}
	return nil
}
