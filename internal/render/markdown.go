// Package render turns the converter's document AST into final Markdown
// text.
package render

import (
	"fmt"
	"strings"

	"github.com/roboco-io/docx2markdown/internal/ir"
)

// Renderer produces output text from a document AST.
type Renderer interface {
	Render(doc *ir.Document) (string, error)
}

// Markdown renders blocks separated by blank lines and appends the
// collected references as a trailing definition list.
type Markdown struct{}

// Render implements Renderer.
func (Markdown) Render(doc *ir.Document) (string, error) {
	var sb strings.Builder

	for _, block := range doc.Blocks {
		if block.Text == "" {
			continue
		}
		sb.WriteString(block.Text)
		sb.WriteString("\n\n")
	}

	refs := &doc.References
	if !refs.IsEmpty() {
		sb.WriteString("---\n\n")
		for i, note := range refs.Footnotes {
			fmt.Fprintf(&sb, "[^%d]: %s\n", i+1, note)
		}
		for i, note := range refs.Endnotes {
			fmt.Fprintf(&sb, "[^en%d]: %s\n", i+1, note)
		}
		for _, comment := range refs.Comments {
			fmt.Fprintf(&sb, "[^c%s]: %s\n", comment.ID, comment.Text)
		}
	}

	return sb.String(), nil
}
