package docx

import "encoding/xml"

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	bulletNumID = "1"
)

// Element names carry the w: prefix literally; the root declares it.

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr      `xml:"w:sectPr"`
}

type xmlParagraph struct {
	PPr  *xmlPPr  `xml:"w:pPr,omitempty"`
	Runs []xmlRun `xml:"w:r"`
}

type xmlPPr struct {
	NumPr *xmlNumPr `xml:"w:numPr,omitempty"`
	Ind   *xmlInd   `xml:"w:ind,omitempty"`
}

type xmlNumPr struct {
	ILvl  xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlInd struct {
	Left int `xml:"w:left,attr"`
}

type xmlRun struct {
	RPr   *xmlRPr   `xml:"w:rPr,omitempty"`
	Break *xmlEmpty `xml:"w:br,omitempty"`
	Text  *xmlText  `xml:"w:t,omitempty"`
}

// xmlRPr fields follow the schema order of CT_RPr.
type xmlRPr struct {
	Fonts   *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold    *xmlEmpty `xml:"w:b,omitempty"`
	Size    *xmlVal   `xml:"w:sz,omitempty"`
	SizeCS  *xmlVal   `xml:"w:szCs,omitempty"`
	Shading *xmlShd   `xml:"w:shd,omitempty"`
}

type xmlFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

type xmlShd struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr,omitempty"`
	Fill  string `xml:"w:fill,attr,omitempty"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlEmpty struct{}

type xmlSectPr struct {
	PgSz  xmlPgSz  `xml:"w:pgSz"`
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// defaultSection is US Letter with one-inch margins.
func defaultSection() xmlSectPr {
	return xmlSectPr{
		PgSz:  xmlPgSz{W: 12240, H: 15840},
		PgMar: xmlPgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 708, Footer: 708},
	}
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const numberingXML = xml.Header + `<w:numbering xmlns:w="` + nsW + `">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="hybridMultilevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="bullet"/>` +
	`<w:lvlText w:val="` + "•" + `"/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="` + bulletNumID + `"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
