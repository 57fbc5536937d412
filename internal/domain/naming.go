package domain

import (
	"fmt"
	"strings"
)

const pdfExt = ".pdf"

// maxMergeNameParts caps how many input stems appear in a merged filename
const maxMergeNameParts = 3

// NameWords holds the words substituted into derived filenames.
// Rotated, Part and Page are format strings taking a single integer.
type NameWords struct {
	Merged     string
	Etc        string
	Rotated    string
	Part       string
	Compressed string
	Page       string
}

// EnglishWords is the default filename vocabulary
var EnglishWords = NameWords{
	Merged:     "merged",
	Etc:        "etc",
	Rotated:    "rotated_%d",
	Part:       "part%d",
	Compressed: "compressed",
	Page:       "page%d",
}

// Stem drops a trailing .pdf (any case) and replaces spaces with underscores
func Stem(name string) string {
	if strings.HasSuffix(strings.ToLower(name), pdfExt) {
		name = name[:len(name)-len(pdfExt)]
	}
	return strings.ReplaceAll(name, " ", "_")
}

// HasPDFExtension reports whether name ends in .pdf, ignoring case
func HasPDFExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), pdfExt)
}

// MergedName joins the stems of the first three inputs and appends the merge suffix
func (w NameWords) MergedName(names []string) string {
	stems := make([]string, 0, maxMergeNameParts)
	for i, n := range names {
		if i == maxMergeNameParts {
			break
		}
		stems = append(stems, Stem(n))
	}
	base := strings.Join(stems, "_")
	if len(names) > maxMergeNameParts {
		base += "_" + w.Etc
	}
	return base + "_" + w.Merged + pdfExt
}

func (w NameWords) RotatedName(name string, angle Angle) string {
	return Stem(name) + "_" + fmt.Sprintf(w.Rotated, int(angle)) + pdfExt
}

// PartName names one half of a split; part is 1 or 2
func (w NameWords) PartName(name string, part int) string {
	return Stem(name) + "_" + fmt.Sprintf(w.Part, part) + pdfExt
}

func (w NameWords) CompressedName(name string) string {
	return Stem(name) + "_" + w.Compressed + pdfExt
}

func (w NameWords) PageName(name string, page int) string {
	return Stem(name) + "_" + fmt.Sprintf(w.Page, page) + pdfExt
}
