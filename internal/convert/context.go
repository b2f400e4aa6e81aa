package convert

import (
	"strings"

	"go.uber.org/zap"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
)

// Context carries the shared state of one conversion pass: relationship
// targets, the numbering and style resolvers, the image extractor, and
// the reference registry for footnotes, endnotes, and comments.
type Context struct {
	rels      map[string]string
	numbering *NumberingEngine
	styles    *StyleResolver
	images    *images.Extractor
	opts      Options
	log       *zap.Logger

	footnotes     []string
	footnoteIndex map[int]int
	footnoteText  map[int]string

	endnotes     []string
	endnoteIndex map[int]int
	endnoteText  map[int]string

	comments     []commentEntry
	seenComments map[string]struct{}
	commentText  map[string]string

	missingRefs []string
}

type commentEntry struct {
	id   string
	text string
}

func newContext(doc *docx.Document, extractor *images.Extractor, opts Options, log *zap.Logger) *Context {
	ctx := &Context{
		rels:          doc.Rels,
		numbering:     NewNumberingEngine(doc.Numbering),
		styles:        NewStyleResolver(doc.Styles),
		images:        extractor,
		opts:          opts,
		log:           log,
		footnoteIndex: make(map[int]int),
		footnoteText:  make(map[int]string),
		endnoteIndex:  make(map[int]int),
		endnoteText:   make(map[int]string),
		seenComments:  make(map[string]struct{}),
		commentText:   make(map[string]string),
	}
	for _, note := range doc.Footnotes {
		ctx.footnoteText[note.ID] = noteText(note.Paragraphs)
	}
	for _, note := range doc.Endnotes {
		ctx.endnoteText[note.ID] = noteText(note.Paragraphs)
	}
	for _, comment := range doc.Comments {
		ctx.commentText[comment.ID] = noteText(comment.Paragraphs)
	}
	return ctx
}

// noteText flattens a note or comment body into a single line. Footnote
// definitions sit on one output line each, so paragraph structure inside
// the note collapses to spaces.
func noteText(paragraphs []*docx.Paragraph) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		parts = append(parts, p.PlainText())
	}
	return strings.Join(parts, " ")
}

// RelationshipTarget resolves a relationship id to its target, typically
// a hyperlink URL or an image path inside the package.
func (c *Context) RelationshipTarget(id string) (string, bool) {
	target, ok := c.rels[id]
	return target, ok
}

func (c *Context) preserveWhitespace() bool { return c.opts.PreserveWhitespace }
func (c *Context) htmlUnderline() bool      { return c.opts.HTMLUnderline }
func (c *Context) htmlStrikethrough() bool  { return c.opts.HTMLStrikethrough }
