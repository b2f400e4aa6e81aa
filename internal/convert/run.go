package convert

import (
	"fmt"
	"strings"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/render"
)

// blockSeparator is emitted for page breaks. It must sit in its own
// unformatted segment so that inline wrappers never span the rule.
const blockSeparator = "\n\n---\n\n"

// segment is a stretch of paragraph text with uniform formatting.
// Anchor segments are zero-width: name is set and text stays empty.
type segment struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	strike    bool
	inserted  bool
	deleted   bool
	anchor    string
}

// mergeable reports whether two adjacent segments carry identical
// formatting. Flag equality is the sole merge condition; anchors never
// merge.
func (s segment) mergeable(o segment) bool {
	return s.anchor == "" && o.anchor == "" &&
		s.bold == o.bold && s.italic == o.italic &&
		s.underline == o.underline && s.strike == o.strike &&
		s.inserted == o.inserted && s.deleted == o.deleted
}

// fieldStack tracks nested field codes. Each entry is pushed at a field
// begin and flips to true at the field's separate; content is suppressed
// while any open field is still in its instruction half.
type fieldStack struct {
	entries []bool
}

func (f *fieldStack) begin() {
	f.entries = append(f.entries, false)
}

func (f *fieldStack) separate() {
	if n := len(f.entries); n > 0 {
		f.entries[n-1] = true
	}
}

// end pops the innermost field. An unmatched end is a no-op.
func (f *fieldStack) end() {
	if n := len(f.entries); n > 0 {
		f.entries = f.entries[:n-1]
	}
}

func (f *fieldStack) suppressed() bool {
	for _, visible := range f.entries {
		if !visible {
			return true
		}
	}
	return false
}

// runFlags resolves a run's effective character formatting.
func runFlags(run *docx.Run, ctx *Context, paraStyleID string) CharProps {
	runStyleID := ""
	if run.Props != nil {
		runStyleID = run.Props.StyleID
	}
	return ctx.styles.ResolveRun(run.Props, runStyleID, paraStyleID)
}

// runSegments converts one run into formatted segments. Field characters
// always update the stack; everything else is dropped while the stack is
// inside an instruction half. A page break flushes the pending text so
// the separator lands in its own plain segment.
func runSegments(run *docx.Run, ctx *Context, paraStyleID string, fields *fieldStack, inserted, deleted bool) ([]segment, error) {
	props := runFlags(run, ctx, paraStyleID)
	base := segment{
		bold:      props.Bold,
		italic:    props.Italic,
		underline: props.Underline,
		strike:    props.Strike,
		inserted:  inserted,
		deleted:   deleted,
	}

	var segs []segment
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			s := base
			s.text = text.String()
			segs = append(segs, s)
			text.Reset()
		}
	}

	for _, item := range run.Content {
		if item.Kind == docx.RunFieldChar {
			switch item.FieldChar {
			case "begin":
				fields.begin()
			case "separate":
				fields.separate()
			case "end":
				fields.end()
			}
			continue
		}
		if item.Kind == docx.RunInstrText || fields.suppressed() {
			continue
		}

		switch item.Kind {
		case docx.RunText, docx.RunDelText, docx.RunSym:
			text.WriteString(item.Text)
		case docx.RunTab:
			text.WriteByte('\t')
		case docx.RunBreak:
			switch item.BreakType {
			case "page":
				flush()
				segs = append(segs, segment{text: blockSeparator})
			case "column":
				text.WriteString("\n\n")
			default:
				text.WriteByte('\n')
			}
		case docx.RunDrawing:
			target, ok := ctx.RelationshipTarget(item.RelID)
			if !ok {
				continue
			}
			img, err := ctx.images.Extract(target)
			if err != nil {
				return nil, err
			}
			text.WriteString(img)
		case docx.RunFootnoteRef:
			text.WriteString(ctx.RegisterFootnote(item.NoteID))
		case docx.RunEndnoteRef:
			text.WriteString(ctx.RegisterEndnote(item.NoteID))
		case docx.RunCommentRef:
			text.WriteString(ctx.RegisterComment(item.CommentID))
		}
	}
	flush()

	return segs, nil
}

// renderSegment serializes one segment. Wrappers apply inner to outer:
// deletion strike, insertion, underline, strike, then bold/italic.
func renderSegment(s segment, ctx *Context) string {
	if s.anchor != "" {
		return fmt.Sprintf("<a id=\"%s\"></a>", render.EscapeHTMLAttr(s.anchor))
	}

	text := s.text
	if s.deleted {
		text = wrapStrike(text, ctx)
	}
	if s.inserted {
		text = "<ins>" + text + "</ins>"
	}
	if s.underline && ctx.htmlUnderline() {
		text = "<u>" + text + "</u>"
	}
	if s.strike {
		text = wrapStrike(text, ctx)
	}
	switch {
	case s.bold && s.italic:
		text = "***" + text + "***"
	case s.bold:
		text = "**" + text + "**"
	case s.italic:
		text = "*" + text + "*"
	}
	return text
}

func wrapStrike(text string, ctx *Context) string {
	if ctx.htmlStrikethrough() {
		return "<s>" + text + "</s>"
	}
	return "~~" + text + "~~"
}
