package converter

import (
	"strings"

	"github.com/nconklindev/exclar/internal/docx"
	"github.com/nconklindev/exclar/internal/types"
)

var markers = []string{"Exception:", "Clarification:"}

const (
	bodyFont    = "Arial Narrow"
	bodySize    = 20
	indentLeft  = 720
	highlight   = "FFFF00"
	titleText   = "Exception and Clarification"
	exceptLabel = "Exceptions:"
	clarifLabel = "Clarifications:"
)

// findMarker returns the byte bounds of the earliest marker in text, matched
// case-insensitively, or -1, -1.
func findMarker(text string) (int, int) {
	for i := 0; i < len(text); i++ {
		for _, m := range markers {
			end := i + len(m)
			if end <= len(text) && strings.EqualFold(text[i:end], m) {
				return i, end
			}
		}
	}
	return -1, -1
}

// ParseBullet splits a remark around its first marker. Without a marker the
// whole trimmed text becomes the header.
func ParseBullet(text string) types.BulletEntry {
	start, end := findMarker(text)
	if start < 0 {
		return types.BulletEntry{Header: strings.TrimSpace(text)}
	}

	return types.BulletEntry{
		Header:  strings.TrimSpace(text[:start]),
		Type:    strings.TrimSpace(strings.TrimSuffix(text[start:end], ":")),
		Message: strings.TrimSpace(text[end:]),
	}
}

// ParseBullets applies ParseBullet to each text.
func ParseBullets(texts []string) []types.BulletEntry {
	entries := make([]types.BulletEntry, 0, len(texts))
	for _, t := range texts {
		entries = append(entries, ParseBullet(t))
	}
	return entries
}

func bodyRun(text string) docx.Run {
	return docx.Run{
		Text:    text,
		Font:    bodyFont,
		Size:    bodySize,
		Shading: &docx.Shading{Type: docx.ShadingClear, Color: docx.ColorAuto},
	}
}

func highlightedRun(text string, bold bool) docx.Run {
	return docx.Run{
		Text:    text,
		Font:    bodyFont,
		Size:    bodySize,
		Bold:    bold,
		Shading: &docx.Shading{Type: docx.ShadingClear, Color: docx.ColorAuto, Fill: highlight},
	}
}

// FormatBullet renders an entry as a bullet: the header, a line break, then
// "type: message".
func FormatBullet(e types.BulletEntry) docx.Paragraph {
	return docx.Paragraph{
		Bullet: true,
		Runs: []docx.Run{
			bodyRun(e.Header),
			{Break: true},
			bodyRun(e.Type + ": " + e.Message),
		},
	}
}

func labelParagraph(text string, bold bool) docx.Paragraph {
	return docx.Paragraph{
		IndentLeft: indentLeft,
		Runs:       []docx.Run{highlightedRun(text, bold)},
	}
}

// BuildDocument lays out the title, both labels and their bullets.
func BuildDocument(c *types.Classified) *docx.Document {
	doc := &docx.Document{}

	doc.Add(labelParagraph(titleText, true))

	doc.Add(labelParagraph(exceptLabel, false))
	for _, e := range c.Exceptions {
		doc.Add(FormatBullet(e))
	}

	doc.Add(labelParagraph(clarifLabel, false))
	for _, e := range c.Clarifications {
		doc.Add(FormatBullet(e))
	}

	return doc
}
