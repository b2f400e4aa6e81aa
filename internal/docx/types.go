package docx

// BodyItem is one ordered element of the document body (or of a table cell
// or SDT content, which reuse the same shape).
type BodyItem struct {
	Paragraph *Paragraph
	Table     *Table
	SDT       *SDT
	Bookmark  *Bookmark
}

// SDT is a structured document tag (content controls, generated TOCs).
// Only its content matters for conversion.
type SDT struct {
	Content []BodyItem
}

// Bookmark is a w:bookmarkStart with a usable name.
type Bookmark struct {
	Name string
}

// Paragraph is a w:p element with its properties and ordered content.
type Paragraph struct {
	Props   *ParaProps
	Content []ParaItem
}

// ParaItem is one ordered child of a paragraph.
type ParaItem struct {
	Run       *Run
	Hyperlink *Hyperlink
	Bookmark  *Bookmark
	SDT       *SDT
	Inserted  *TrackedRuns
	Deleted   *TrackedRuns
}

// TrackedRuns wraps the runs of a w:ins or w:del tracked change.
type TrackedRuns struct {
	Runs []*Run
}

// Hyperlink is a w:hyperlink; the target is resolved through the
// relationship id, or Anchor for in-document links.
type Hyperlink struct {
	RelID  string
	Anchor string
	Runs   []*Run
}

// ParaProps is the subset of w:pPr the converter consumes.
type ParaProps struct {
	StyleID       string
	Numbering     *NumberingRef
	Justification string
}

// NumberingRef binds a paragraph to a numbering instance and level.
type NumberingRef struct {
	NumID int
	Level int
}

// Run is a w:r element.
type Run struct {
	Props   *RunProps
	Content []RunItem
}

// RunProps is the subset of w:rPr the converter consumes. Nil fields are
// "unset" and inherit during style resolution.
type RunProps struct {
	StyleID   string
	Bold      *OnOff
	Italic    *OnOff
	Strike    *OnOff
	Underline *string
}

// OnOff models OOXML on/off properties, where the bare element means true
// and w:val may negate it.
type OnOff struct {
	Val *bool
}

// Enabled reports the effective boolean value of the property.
func (o *OnOff) Enabled() bool {
	if o == nil {
		return false
	}
	if o.Val == nil {
		return true
	}
	return *o.Val
}

// RunItemKind discriminates the ordered content items of a run.
type RunItemKind int

const (
	RunText RunItemKind = iota
	RunDelText
	RunTab
	RunBreak
	RunDrawing
	RunFieldChar
	RunInstrText
	RunFootnoteRef
	RunEndnoteRef
	RunCommentRef
	RunSym
)

// RunItem is one ordered content item of a run. Which fields are
// meaningful depends on Kind.
type RunItem struct {
	Kind      RunItemKind
	Text      string // RunText, RunDelText, RunInstrText, RunSym
	BreakType string // RunBreak: "page", "column" or ""
	FieldChar string // RunFieldChar: "begin", "separate", "end"
	RelID     string // RunDrawing: relationship id of the embedded image
	NoteID    int    // RunFootnoteRef, RunEndnoteRef
	CommentID string // RunCommentRef
}

// Table is a w:tbl element.
type Table struct {
	Rows []*TableRow
}

// TableRow is a w:tr element.
type TableRow struct {
	Cells []*TableCell
}

// TableCell is a w:tc element. VMerge is nil when the cell has no w:vMerge
// element; a non-nil value holds the w:val attribute ("restart",
// "continue", or empty, which also means continue).
type TableCell struct {
	GridSpan int
	VMerge   *string
	Content  []BodyItem
}

// VMergeRestarts reports whether this cell starts a new vertical span.
func (c *TableCell) VMergeRestarts() bool {
	return c.VMerge != nil && *c.VMerge == "restart"
}

// VMergeContinues reports whether this cell continues the cell above it.
func (c *TableCell) VMergeContinues() bool {
	return c.VMerge != nil && *c.VMerge != "restart"
}

// Style is one named style record from word/styles.xml.
type Style struct {
	ID      string
	BasedOn string
	Char    *RunProps
	Para    *ParaProps
}

// Styles holds the document defaults and the style records by id.
type Styles struct {
	DefaultChar *RunProps
	DefaultPara *ParaProps
	ByID        map[string]*Style
}

// Level is one level definition of an abstract numbering.
type Level struct {
	Index  int
	Start  int
	Format string
	Text   string
}

// LevelKey addresses a per-instance level override.
type LevelKey struct {
	NumID int
	Level int
}

// Numbering holds the parsed content of word/numbering.xml.
type Numbering struct {
	// Abstract maps abstractNumId to its level definitions, sorted by index.
	Abstract map[int][]Level
	// Instances maps document-visible numId to abstractNumId.
	Instances map[int]int
	// Overrides maps (numId, level) to a startOverride value.
	Overrides map[LevelKey]int
}

// Note is one footnote or endnote definition.
type Note struct {
	ID         int
	Paragraphs []*Paragraph
}

// Comment is one comment definition. Comment ids stay strings because the
// output marker reuses them verbatim.
type Comment struct {
	ID         string
	Paragraphs []*Paragraph
}

// PlainText returns the unformatted text of the paragraph, for note and
// comment bodies.
func (p *Paragraph) PlainText() string {
	var out []byte
	for _, item := range p.Content {
		for _, run := range item.runs() {
			for _, rc := range run.Content {
				switch rc.Kind {
				case RunText, RunDelText, RunSym:
					out = append(out, rc.Text...)
				case RunTab:
					out = append(out, '\t')
				}
			}
		}
	}
	return string(out)
}

// runs returns the runs carried by a paragraph item, unwrapping tracked
// changes and hyperlinks.
func (it *ParaItem) runs() []*Run {
	switch {
	case it.Run != nil:
		return []*Run{it.Run}
	case it.Hyperlink != nil:
		return it.Hyperlink.Runs
	case it.Inserted != nil:
		return it.Inserted.Runs
	case it.Deleted != nil:
		return it.Deleted.Runs
	}
	return nil
}
