// Package ir defines the intermediate representation produced by the
// converter: an ordered list of rendered blocks plus the collected
// reference definitions. It is the input for the final renderer and for
// the extract command's JSON output.
package ir

// BlockType represents the type of content block.
type BlockType string

const (
	BlockTypeParagraph BlockType = "paragraph"
	BlockTypeTable     BlockType = "table"
	BlockTypeHTML      BlockType = "html"
)

// Block represents one rendered content block in document order.
type Block struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

// Comment is one collected comment definition. The id is the source
// identifier, not a renumbered sequence.
type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// References bundles the reference definitions collected during
// traversal, in first-seen order.
type References struct {
	Footnotes []string  `json:"footnotes,omitempty"`
	Endnotes  []string  `json:"endnotes,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
}

// IsEmpty returns true if no references were collected.
func (r *References) IsEmpty() bool {
	return len(r.Footnotes) == 0 && len(r.Endnotes) == 0 && len(r.Comments) == 0
}

// Document is the converter output.
type Document struct {
	Blocks     []Block    `json:"blocks"`
	References References `json:"references"`
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Blocks: make([]Block, 0)}
}

// AddParagraph appends a rendered paragraph block.
func (d *Document) AddParagraph(text string) {
	d.Blocks = append(d.Blocks, Block{Type: BlockTypeParagraph, Text: text})
}

// AddTable appends a rendered table HTML block.
func (d *Document) AddTable(html string) {
	d.Blocks = append(d.Blocks, Block{Type: BlockTypeTable, Text: html})
}

// AddHTML appends a raw HTML block.
func (d *Document) AddHTML(html string) {
	d.Blocks = append(d.Blocks, Block{Type: BlockTypeHTML, Text: html})
}
