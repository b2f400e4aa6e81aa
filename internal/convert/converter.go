// Package convert turns a parsed DOCX document tree into a
// Markdown/HTML-hybrid text: cascading style resolution, list numbering,
// table grid reconstruction, and footnote/endnote/comment references.
package convert

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
	"github.com/roboco-io/docx2markdown/internal/ir"
	"github.com/roboco-io/docx2markdown/internal/render"
)

// ErrMissingReference marks a footnote, endnote, or comment reference
// whose body does not exist in the document. Only strict mode surfaces
// it; relaxed mode records the reference with an empty body.
var ErrMissingReference = errors.New("missing reference")

// Options controls conversion behavior.
type Options struct {
	// PreserveWhitespace keeps leading/trailing paragraph whitespace.
	PreserveWhitespace bool
	// HTMLUnderline renders underlined runs as <u>…</u>.
	HTMLUnderline bool
	// HTMLStrikethrough renders strikes as <s>…</s> instead of ~~…~~.
	HTMLStrikethrough bool
	// StrictReferences fails the conversion when a reference has no body.
	StrictReferences bool
	// Images selects how embedded media is emitted.
	Images images.Mode
	// ImagesDir receives extracted files when Images is ModeSaveToDir.
	ImagesDir string
}

// DefaultOptions returns the conversion defaults: inline base64 images,
// HTML underline, markdown strikethrough, relaxed references.
func DefaultOptions() Options {
	return Options{
		HTMLUnderline: true,
		Images:        images.ModeInline,
	}
}

// Converter orchestrates one or more document conversions.
type Converter struct {
	opts Options
	log  *zap.Logger
}

// New creates a converter. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{opts: opts, log: log}
}

// ConvertFile converts a DOCX file on disk to markdown.
func (c *Converter) ConvertFile(path string) (string, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()
	return c.Convert(doc)
}

// ConvertBytes converts an in-memory DOCX package to markdown.
func (c *Converter) ConvertBytes(data []byte) (string, error) {
	doc, err := docx.OpenBytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	return c.Convert(doc)
}

// Convert converts a parsed document to markdown.
func (c *Converter) Convert(doc *docx.Document) (string, error) {
	out, err := c.Extract(doc)
	if err != nil {
		return "", err
	}
	var md render.Markdown
	return md.Render(out)
}

// Extract runs the conversion pipeline and returns the block tree and
// collected references instead of rendered markdown.
func (c *Converter) Extract(doc *docx.Document) (*ir.Document, error) {
	extractor, err := c.newExtractor(doc)
	if err != nil {
		return nil, err
	}

	ctx := newContext(doc, extractor, c.opts, c.log)
	out := ir.NewDocument()
	if err := convertBody(doc.Body, ctx, out); err != nil {
		return nil, err
	}
	out.References = ctx.References()

	missing := ctx.TakeMissingReferences()
	if len(missing) > 0 {
		if c.opts.StrictReferences {
			var agg error
			for _, ref := range missing {
				agg = multierr.Append(agg, fmt.Errorf("%w: %s", ErrMissingReference, ref))
			}
			return nil, agg
		}
		c.log.Warn("참조 본문을 찾을 수 없어 빈 각주로 대체합니다",
			zap.Strings("references", missing))
	}

	return out, nil
}

func (c *Converter) newExtractor(doc *docx.Document) (*images.Extractor, error) {
	switch c.opts.Images {
	case images.ModeSaveToDir:
		return images.NewSaveToDir(doc, c.opts.ImagesDir)
	case images.ModeSkip:
		return images.NewSkip(), nil
	default:
		return images.NewInline(doc), nil
	}
}

// convertBody walks top-level body content in document order. SDT blocks
// flatten into their children; body-level bookmarks become anchor blocks.
func convertBody(items []docx.BodyItem, ctx *Context, out *ir.Document) error {
	for _, item := range items {
		switch {
		case item.Paragraph != nil:
			text, err := ConvertParagraph(item.Paragraph, ctx)
			if err != nil {
				return err
			}
			if text != "" {
				out.AddParagraph(text)
			}
		case item.Table != nil:
			html, err := ConvertTable(item.Table, ctx)
			if err != nil {
				return err
			}
			out.AddTable(html)
		case item.SDT != nil:
			if err := convertBody(item.SDT.Content, ctx, out); err != nil {
				return err
			}
		case item.Bookmark != nil:
			if item.Bookmark.Name != "" {
				out.AddHTML(fmt.Sprintf("<a id=\"%s\"></a>", render.EscapeHTMLAttr(item.Bookmark.Name)))
			}
		}
	}
	return nil
}
