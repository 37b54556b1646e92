// Package markdown normalizes model output into markdown and renders it to
// HTML.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	// A line that is only a capitalized label ending with a colon becomes a
	// section heading, keeping the colon and trailing spacing.
	sectionHeading = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z\s]+):(\s*)`)

	// A label at the start of a line becomes a subheading with the colon
	// dropped, unless a digit follows (times like "10:30" stay untouched).
	subHeading = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z\s]+):(\d?)`)

	// Unicode bullets are rewritten as markdown list markers.
	unicodeBullet = regexp.MustCompile(`(?m)^[•●○]\s*`)
)

// Formatter converts raw model text into rendered HTML.
type Formatter struct {
	md goldmark.Markdown
}

// New creates a Formatter with GitHub-flavored markdown and hard line breaks,
// matching how the reference frontend renders summaries.
func New() *Formatter {
	return &Formatter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Normalize applies the heading, bullet, and paragraph-spacing rewrites to raw
// model text without rendering it.
func (f *Formatter) Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")

	text = sectionHeading.ReplaceAllString(text, "## $1$2")

	// Lines already promoted above start with '#' so they cannot match again.
	text = subHeading.ReplaceAllStringFunc(text, func(match string) string {
		groups := subHeading.FindStringSubmatch(match)
		if groups[2] != "" {
			return match
		}
		return "### " + groups[1]
	})

	text = unicodeBullet.ReplaceAllString(text, "* ")

	// Paragraphs pass through untouched apart from the appended newline, so
	// leading indentation (code blocks) survives.
	paragraphs := strings.Split(text, "\n\n")
	formatted := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "#") && !strings.HasPrefix(p, "*") && !strings.HasPrefix(p, "-") {
			p += "\n"
		}
		formatted = append(formatted, p)
	}

	return strings.Join(formatted, "\n\n")
}

// ToHTML normalizes raw model text and renders it to HTML.
func (f *Formatter) ToHTML(raw string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(f.Normalize(raw)), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}
