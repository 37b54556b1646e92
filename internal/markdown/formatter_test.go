package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePromotesSectionHeadings(t *testing.T) {
	f := New()

	out := f.Normalize("Overview:\nSome intro text")

	assert.True(t, strings.HasPrefix(out, "## Overview"), "expected section heading, got %q", out)
}

func TestNormalizeLeavesTimesAlone(t *testing.T) {
	f := New()

	out := f.Normalize("The train departs at 10:30 from platform 2")

	assert.NotContains(t, out, "##")
	assert.Contains(t, out, "10:30")
}

func TestNormalizeRewritesUnicodeBullets(t *testing.T) {
	f := New()

	out := f.Normalize("• first point\n● second point\n○ third point")

	assert.Contains(t, out, "* first point")
	assert.Contains(t, out, "* second point")
	assert.Contains(t, out, "* third point")
	assert.NotContains(t, out, "•")
}

func TestNormalizeCollapsesWindowsLineEndings(t *testing.T) {
	f := New()

	out := f.Normalize("line one\r\nline two")

	assert.NotContains(t, out, "\r")
}

func TestNormalizeDropsEmptyParagraphs(t *testing.T) {
	f := New()

	out := f.Normalize("first paragraph\n\n\n\nsecond paragraph")

	assert.Contains(t, out, "first paragraph")
	assert.Contains(t, out, "second paragraph")
	assert.Equal(t, "first paragraph\n\n\nsecond paragraph\n", out)
}

func TestNormalizeKeepsParagraphIndentation(t *testing.T) {
	f := New()

	out := f.Normalize("intro paragraph\n\n    indented code line")

	assert.Contains(t, out, "    indented code line")
}

func TestToHTMLIndentedCodeBlock(t *testing.T) {
	f := New()

	html, err := f.ToHTML("intro paragraph\n\n    indented code line")

	assert.NoError(t, err)
	assert.Contains(t, html, "<code>")
	assert.Contains(t, html, "indented code line")
}

func TestToHTMLRendersHeadingsAndLists(t *testing.T) {
	f := New()

	html, err := f.ToHTML("Overview:\nA short summary\n\n• one\n• two")

	assert.NoError(t, err)
	assert.Contains(t, html, "<h2>")
	assert.Contains(t, html, "<li>")
}

func TestToHTMLEmptyInput(t *testing.T) {
	f := New()

	html, err := f.ToHTML("")

	assert.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(html))
}

func TestToHTMLHardWraps(t *testing.T) {
	f := New()

	html, err := f.ToHTML("* item one\n* item two")

	assert.NoError(t, err)
	assert.Contains(t, html, "<ul>")
	assert.Contains(t, html, "item one")
}
