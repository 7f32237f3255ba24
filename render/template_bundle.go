// Package render provides the default renderer of exported documents: a
// bundle of HTML templates for the preamble, the message groups and the
// postamble.
package render

import (
	"chat-export/domain"
	"chat-export/domain/mimetypes"
	"chat-export/errors"
	"chat-export/moderation"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
)

const (
	preambleTemplate     = "preamble"
	messageGroupTemplate = "message-group"
	postambleTemplate    = "postamble"
)

var themes = []string{"Dark", "Light"}

//go:embed templates/*.gohtml
var templatesFS embed.FS

// parseTemplates is resolved once per process, bundles clone the result.
var parseTemplates = sync.OnceValues(func() (*template.Template, error) {
	return template.New("bundle").
		Funcs(templateFuncs(NewMarkdownFormatter(nil))).
		ParseFS(templatesFS, "templates/*.gohtml")
})

// TemplateBundle renders the export contexts into HTML.
type TemplateBundle struct {
	templates *template.Template
	log       *slog.Logger
}

type BundleOption func(*bundleOptions)

type bundleOptions struct {
	redactor *moderation.Redactor
}

// WithRedactor masks the redactor's words in every rendered content.
func WithRedactor(redactor *moderation.Redactor) BundleOption {
	return func(o *bundleOptions) {
		o.redactor = redactor
	}
}

func NewTemplateBundle(log *slog.Logger, opts ...BundleOption) (*TemplateBundle, error) {
	var o bundleOptions
	for _, opt := range opts {
		opt(&o)
	}
	parsed, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	cloned, err := parsed.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone templates: %w", err)
	}
	return &TemplateBundle{
		templates: cloned.Funcs(templateFuncs(NewMarkdownFormatter(o.redactor))),
		log:       log,
	}, nil
}

func (b *TemplateBundle) RenderPreamble(ctx context.Context, layout domain.LayoutContext) (string, error) {
	if err := checkTheme(layout.ThemeName); err != nil {
		return "", err
	}
	return b.execute(ctx, preambleTemplate, layout)
}

func (b *TemplateBundle) RenderMessageGroup(ctx context.Context, group domain.GroupContext) (string, error) {
	return b.execute(ctx, messageGroupTemplate, group)
}

func (b *TemplateBundle) RenderPostamble(ctx context.Context, layout domain.LayoutContext) (string, error) {
	return b.execute(ctx, postambleTemplate, layout)
}

func (b *TemplateBundle) execute(ctx context.Context, name string, data any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := b.templates.ExecuteTemplate(&sb, name, data); err != nil {
		b.log.Error("Template execution failed", "template", name, "error", err)
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return sb.String(), nil
}

func checkTheme(name string) error {
	for _, theme := range themes {
		if theme == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errors.ErrUnknownTheme, name)
}

func templateFuncs(formatter MarkdownFormatter) template.FuncMap {
	return template.FuncMap{
		"markdown":       formatter.Format,
		"bytes":          humanBytes,
		"attachmentKind": attachmentKind,
	}
}

func humanBytes(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

func attachmentKind(a domain.Attachment) string {
	switch m := mimetypes.Resolve(a.ContentType, a.FileName); {
	case mimetypes.IsImage(m):
		return "image"
	case mimetypes.IsVideo(m):
		return "video"
	case mimetypes.IsAudio(m):
		return "audio"
	default:
		return "file"
	}
}
