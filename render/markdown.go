package render

import (
	"chat-export/moderation"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

const markdownExtensions = blackfriday.CommonExtensions | blackfriday.HardLineBreak

// MarkdownFormatter turns message content into sanitized HTML.
type MarkdownFormatter struct {
	policy   *bluemonday.Policy
	redactor *moderation.Redactor
}

func NewMarkdownFormatter(redactor *moderation.Redactor) MarkdownFormatter {
	return MarkdownFormatter{policy: bluemonday.UGCPolicy(), redactor: redactor}
}

// Format redacts before parsing so that a masked word cannot leak through a
// link target or an attribute.
func (f MarkdownFormatter) Format(content string) template.HTML {
	if content == "" {
		return ""
	}
	raw := blackfriday.Run([]byte(f.redactor.Redact(content)), blackfriday.WithExtensions(markdownExtensions))
	return template.HTML(f.policy.SanitizeBytes(raw))
}
