package converter

import (
	"testing"

	"github.com/nconklindev/exclar/internal/docx"
	"github.com/nconklindev/exclar/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBullet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.BulletEntry
	}{
		{"Exception with header", "Intro. Exception: disk full", types.BulletEntry{Header: "Intro.", Type: "Exception", Message: "disk full"}},
		{"Clarification with header", "Note Clarification: needs review", types.BulletEntry{Header: "Note", Type: "Clarification", Message: "needs review"}},
		{"No marker", "just a note", types.BulletEntry{Header: "just a note"}},
		{"No marker trims", "  exception pending  ", types.BulletEntry{Header: "exception pending"}},
		{"Upper case marker keeps casing", "EXCEPTION: x", types.BulletEntry{Type: "EXCEPTION", Message: "x"}},
		{"Lower case marker", "exception: x", types.BulletEntry{Type: "exception", Message: "x"}},
		{"Earliest marker wins", "Exception: a Clarification: b", types.BulletEntry{Type: "Exception", Message: "a Clarification: b"}},
		{"Clarification first", "Item 4 clarification: see Exception: 2", types.BulletEntry{Header: "Item 4", Type: "clarification", Message: "see Exception: 2"}},
		{"Empty message", "Pump Exception:", types.BulletEntry{Header: "Pump", Type: "Exception"}},
		{"No space after colon", "Valve Exception:leaks", types.BulletEntry{Header: "Valve", Type: "Exception", Message: "leaks"}},
		{"Keyword without colon", "Exception noted", types.BulletEntry{Header: "Exception noted"}},
		{"Multiline header", "Line 1\nLine 2 Exception: x", types.BulletEntry{Header: "Line 1\nLine 2", Type: "Exception", Message: "x"}},
		{"Non-ASCII header", "Überprüfung – Clarification: ok", types.BulletEntry{Header: "Überprüfung –", Type: "Clarification", Message: "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBullet(tt.input))
		})
	}
}

func TestFormatBullet(t *testing.T) {
	p := FormatBullet(types.BulletEntry{Header: "Intro.", Type: "Exception", Message: "disk full"})

	assert.True(t, p.Bullet)
	require.Len(t, p.Runs, 3)
	assert.Equal(t, "Intro.", p.Runs[0].Text)
	assert.True(t, p.Runs[1].Break)
	assert.Equal(t, "Exception: disk full", p.Runs[2].Text)

	for _, i := range []int{0, 2} {
		r := p.Runs[i]
		assert.Equal(t, "Arial Narrow", r.Font)
		assert.Equal(t, 20, r.Size)
		assert.False(t, r.Bold)
		require.NotNil(t, r.Shading)
		assert.Equal(t, docx.ShadingClear, r.Shading.Type)
		assert.Equal(t, docx.ColorAuto, r.Shading.Color)
		assert.Empty(t, r.Shading.Fill)
	}
}

func TestFormatBullet_NoMarker(t *testing.T) {
	p := FormatBullet(ParseBullet("just a note"))
	assert.Equal(t, "just a note", p.Runs[0].Text)
	assert.Equal(t, ": ", p.Runs[2].Text)
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(&types.Classified{
		Exceptions: []types.BulletEntry{
			{Type: "Exception", Message: "leak"},
			{Type: "Exception", Message: "rust"},
		},
		Clarifications: []types.BulletEntry{
			{Type: "Clarification", Message: "scope"},
		},
	})

	var texts []string
	for _, p := range doc.Paragraphs {
		if p.Bullet {
			texts = append(texts, p.Runs[2].Text)
			continue
		}
		assert.Equal(t, 720, p.IndentLeft)
		require.Len(t, p.Runs, 1)
		require.NotNil(t, p.Runs[0].Shading)
		assert.Equal(t, "FFFF00", p.Runs[0].Shading.Fill)
		texts = append(texts, p.Runs[0].Text)
	}

	assert.Equal(t, []string{
		"Exception and Clarification",
		"Exceptions:",
		"Exception: leak",
		"Exception: rust",
		"Clarifications:",
		"Clarification: scope",
	}, texts)

	assert.True(t, doc.Paragraphs[0].Runs[0].Bold)
	assert.False(t, doc.Paragraphs[1].Runs[0].Bold)
	assert.Len(t, doc.Bullets(), 3)
}

func TestBuildDocument_Empty(t *testing.T) {
	doc := BuildDocument(&types.Classified{})
	assert.Len(t, doc.Paragraphs, 3)
	assert.Empty(t, doc.Bullets())
}
