// Package docx writes minimal WordprocessingML documents: paragraphs of
// styled runs, optional left indent and level-0 bullets.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
)

const (
	ShadingClear = "clear"
	ColorAuto    = "auto"
)

// Shading is the run background. An empty Fill leaves the run uncolored.
type Shading struct {
	Type  string
	Color string
	Fill  string
}

// Run is a contiguous piece of text with one formatting. A Run with Break
// set renders a line break and ignores Text.
type Run struct {
	Text    string
	Break   bool
	Font    string
	Size    int // half-points
	Bold    bool
	Shading *Shading
}

type Paragraph struct {
	Runs []Run
	// IndentLeft is in twips (1/1440 inch).
	IndentLeft int
	Bullet     bool
}

type Document struct {
	Paragraphs []Paragraph
}

func (d *Document) Add(p ...Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p...)
}

// Bullets returns the bulleted paragraphs in document order.
func (d *Document) Bullets() []Paragraph {
	var out []Paragraph
	for _, p := range d.Paragraphs {
		if p.Bullet {
			out = append(out, p)
		}
	}
	return out
}

// Render writes the document as a .docx package to w.
func (d *Document) Render(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		body func(io.Writer) error
	}{
		{"[Content_Types].xml", staticPart(contentTypesXML)},
		{"_rels/.rels", staticPart(packageRelsXML)},
		{"word/_rels/document.xml.rels", staticPart(documentRelsXML)},
		{"word/numbering.xml", staticPart(numberingXML)},
		{"word/document.xml", d.writeBody},
	}

	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if err := part.body(fw); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

func staticPart(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func (d *Document) writeBody(w io.Writer) error {
	doc := xmlDocument{
		W: nsW,
		R: nsR,
		Body: xmlBody{
			SectPr: defaultSection(),
		},
	}
	for _, p := range d.Paragraphs {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, toXMLParagraph(p))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Flush()
}

func toXMLParagraph(p Paragraph) xmlParagraph {
	var xp xmlParagraph

	if p.Bullet || p.IndentLeft > 0 {
		xp.PPr = &xmlPPr{}
		if p.Bullet {
			xp.PPr.NumPr = &xmlNumPr{
				ILvl:  xmlVal{Val: "0"},
				NumID: xmlVal{Val: bulletNumID},
			}
		}
		if p.IndentLeft > 0 {
			xp.PPr.Ind = &xmlInd{Left: p.IndentLeft}
		}
	}

	for _, r := range p.Runs {
		xp.Runs = append(xp.Runs, toXMLRun(r))
	}
	return xp
}

func toXMLRun(r Run) xmlRun {
	var xr xmlRun

	if r.Font != "" || r.Size > 0 || r.Bold || r.Shading != nil {
		rpr := &xmlRPr{}
		if r.Font != "" {
			rpr.Fonts = &xmlFonts{ASCII: r.Font, HAnsi: r.Font, CS: r.Font}
		}
		if r.Bold {
			rpr.Bold = &xmlEmpty{}
		}
		if r.Size > 0 {
			sz := fmt.Sprint(r.Size)
			rpr.Size = &xmlVal{Val: sz}
			rpr.SizeCS = &xmlVal{Val: sz}
		}
		if r.Shading != nil {
			typ := r.Shading.Type
			if typ == "" {
				typ = ShadingClear
			}
			rpr.Shading = &xmlShd{Val: typ, Color: r.Shading.Color, Fill: r.Shading.Fill}
		}
		xr.RPr = rpr
	}

	if r.Break {
		xr.Break = &xmlEmpty{}
		return xr
	}
	xr.Text = &xmlText{Space: "preserve", Value: r.Text}
	return xr
}
