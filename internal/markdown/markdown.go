// Package markdown turns post bodies into HTML for the templates.
package markdown

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
)

// Post bodies mix markdown with raw HTML such as <img> tags, so the
// renderer runs with raw HTML passthrough. Only the admin writes posts.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithParserOptions(
		parser.WithAttribute(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
		gmhtml.WithXHTML(),
		gmhtml.WithUnsafe(),
	),
)

var doubleBreak = regexp.MustCompile(`<br\s*/?>\s*<br\s*/?>`)

// Render converts text to HTML. Single newlines become <br />, a pair of
// line breaks is split into a new paragraph, and output that does not
// start with a tag is wrapped in <p>.
func Render(text string) template.HTML {
	if text == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := converter.Convert([]byte(text), &buf); err != nil {
		logger.Warn("Markdown conversion failed", "error", err)
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}

	out := doubleBreak.ReplaceAllString(buf.String(), "</p><p>")
	if !strings.HasPrefix(out, "<") {
		out = "<p>" + out + "</p>"
	}
	return template.HTML(out)
}
