// Package pdftest builds small PDF documents in memory for tests. Every page
// gets its own MediaBox width so callers can tell pages apart after they have
// been merged, split or extracted.
package pdftest

import (
	"bytes"
	"fmt"
)

// PageHeight is the MediaBox height of every generated page
const PageHeight = 792

// Page describes one generated page
type Page struct {
	Width  int
	Rotate int
}

// WidthOf returns the width given to page n (1-based) by Pages
func WidthOf(n int) int {
	return 100 + n
}

// Pages builds an n page document whose page i is WidthOf(i) points wide
func Pages(n int) []byte {
	return PagesFrom(1, n)
}

// PagesFrom builds n pages numbered from first, so two documents built with
// disjoint ranges have distinguishable pages
func PagesFrom(first, n int) []byte {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Width: WidthOf(first + i)}
	}
	return Build(pages...)
}

// Build writes a PDF 1.4 file with a single flat page tree
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	offsets := []int{}

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	// 1: catalog, 2: page tree, then a page and its content stream per page
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	var kids bytes.Buffer
	for i := range pages {
		fmt.Fprintf(&kids, "%d 0 R ", 3+2*i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids.String(), len(pages)))

	for i, p := range pages {
		rotate := ""
		if p.Rotate != 0 {
			rotate = fmt.Sprintf(" /Rotate %d", p.Rotate)
		}
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d]%s /Resources << >> /Contents %d 0 R >>",
			p.Width, PageHeight, rotate, 4+2*i))

		content := fmt.Sprintf("0 0 %d %d re f\n", p.Width/2, i+1)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}
