package convert

import (
	"fmt"

	"github.com/roboco-io/docx2markdown/internal/ir"
)

// RegisterFootnote records a footnote reference and returns its inline
// marker. The first reference to an id assigns the next 1-based index;
// later references to the same id reuse it. A reference without a body
// registers an empty definition and a missing-reference diagnostic.
func (c *Context) RegisterFootnote(id int) string {
	if idx, ok := c.footnoteIndex[id]; ok {
		return fmt.Sprintf("[^%d]", idx)
	}

	text, ok := c.footnoteText[id]
	if !ok {
		c.missingRefs = append(c.missingRefs, fmt.Sprintf("footnote:%d", id))
	}

	c.footnotes = append(c.footnotes, text)
	idx := len(c.footnotes)
	c.footnoteIndex[id] = idx
	return fmt.Sprintf("[^%d]", idx)
}

// RegisterEndnote records an endnote reference and returns its inline
// marker. Endnotes number independently of footnotes.
func (c *Context) RegisterEndnote(id int) string {
	if idx, ok := c.endnoteIndex[id]; ok {
		return fmt.Sprintf("[^en%d]", idx)
	}

	text, ok := c.endnoteText[id]
	if !ok {
		c.missingRefs = append(c.missingRefs, fmt.Sprintf("endnote:%d", id))
	}

	c.endnotes = append(c.endnotes, text)
	idx := len(c.endnotes)
	c.endnoteIndex[id] = idx
	return fmt.Sprintf("[^en%d]", idx)
}

// RegisterComment records a comment reference and returns its inline
// marker. Comment markers carry the source id rather than a sequential
// index, so duplicates only need dedup, not renumbering.
func (c *Context) RegisterComment(id string) string {
	if _, seen := c.seenComments[id]; !seen {
		text, ok := c.commentText[id]
		if !ok {
			c.missingRefs = append(c.missingRefs, fmt.Sprintf("comment:%s", id))
		}
		c.comments = append(c.comments, commentEntry{id: id, text: text})
		c.seenComments[id] = struct{}{}
	}
	return fmt.Sprintf("[^c%s]", id)
}

// References snapshots the registered definitions for the renderer.
func (c *Context) References() ir.References {
	refs := ir.References{
		Footnotes: append([]string(nil), c.footnotes...),
		Endnotes:  append([]string(nil), c.endnotes...),
	}
	for _, entry := range c.comments {
		refs.Comments = append(refs.Comments, ir.Comment{ID: entry.id, Text: entry.text})
	}
	return refs
}

// TakeMissingReferences drains the accumulated missing-reference
// diagnostics, each formatted as "kind:id".
func (c *Context) TakeMissingReferences() []string {
	missing := c.missingRefs
	c.missingRefs = nil
	return missing
}
