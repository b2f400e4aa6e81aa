// Package docx reads the OOXML WordprocessingML container and exposes the
// typed document tree the converter consumes.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Document is a parsed DOCX package.
type Document struct {
	zr     *zip.Reader
	closer io.Closer

	Body      []BodyItem
	Styles    *Styles
	Numbering *Numbering
	Footnotes []Note
	Endnotes  []Note
	Comments  []Comment
	// Rels maps relationship ids from word/_rels/document.xml.rels to
	// their targets (hyperlink URLs, media paths).
	Rels map[string]string
}

// Open reads a DOCX package from disk.
func Open(path string) (*Document, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX container: %w", err)
	}
	doc, err := newDocument(&rc.Reader, rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return doc, nil
}

// OpenBytes reads a DOCX package from memory.
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX container: %w", err)
	}
	return newDocument(zr, nil)
}

func newDocument(zr *zip.Reader, closer io.Closer) (*Document, error) {
	d := &Document{
		zr:     zr,
		closer: closer,
		Rels:   make(map[string]string),
	}

	data, err := d.part("word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read word/document.xml: %w", err)
	}
	root, err := parsePart(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word/document.xml: %w", err)
	}
	d.Body = parseBody(root)

	// Optional parts contribute nothing when absent.
	if data, err := d.part("word/styles.xml"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Styles = parseStyles(root)
		}
	}
	if data, err := d.part("word/numbering.xml"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Numbering = parseNumbering(root)
		}
	}
	if data, err := d.part("word/footnotes.xml"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Footnotes = parseNotes(root, "footnote")
		}
	}
	if data, err := d.part("word/endnotes.xml"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Endnotes = parseNotes(root, "endnote")
		}
	}
	if data, err := d.part("word/comments.xml"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Comments = parseComments(root)
		}
	}
	if data, err := d.part("word/_rels/document.xml.rels"); err == nil {
		if root, err := parsePart(data); err == nil {
			d.Rels = parseRelationships(root)
		}
	}

	return d, nil
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// part reads a named package part.
func (d *Document) part(name string) ([]byte, error) {
	for _, f := range d.zr.File {
		if strings.EqualFold(f.Name, name) {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part not found: %s", name)
}

// ReadMedia reads an embedded media file. Relationship targets are
// relative to word/, so "media/image1.png" resolves to
// "word/media/image1.png".
func (d *Document) ReadMedia(target string) ([]byte, error) {
	candidates := []string{target}
	if !strings.HasPrefix(target, "word/") {
		candidates = append([]string{"word/" + target}, candidates...)
	}
	for _, name := range candidates {
		if data, err := d.part(name); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("media not found: %s", target)
}

// parsePart parses one XML part and returns its root element.
func parsePart(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML part")
	}
	return root, nil
}

// attr returns an attribute value by local name, ignoring the namespace
// prefix. Word parts use the w: and r: prefixes inconsistently across
// producers.
func attr(el *etree.Element, name string) string {
	for _, a := range el.Attr {
		if a.Key == name {
			return a.Value
		}
	}
	return ""
}

// child returns the first child element with the given local name.
func child(el *etree.Element, tag string) *etree.Element {
	for _, ch := range el.ChildElements() {
		if ch.Tag == tag {
			return ch
		}
	}
	return nil
}

// childVal returns the w:val attribute of the named child, if present.
func childVal(el *etree.Element, tag string) string {
	if ch := child(el, tag); ch != nil {
		return attr(ch, "val")
	}
	return ""
}

// findDescendant does a depth-first search for the first descendant with
// the given local name.
func findDescendant(el *etree.Element, tag string) *etree.Element {
	for _, ch := range el.ChildElements() {
		if ch.Tag == tag {
			return ch
		}
		if found := findDescendant(ch, tag); found != nil {
			return found
		}
	}
	return nil
}

// parseRelationships reads a .rels part into an id -> target map.
func parseRelationships(root *etree.Element) map[string]string {
	rels := make(map[string]string)
	for _, ch := range root.ChildElements() {
		if ch.Tag != "Relationship" {
			continue
		}
		id := attr(ch, "Id")
		target := attr(ch, "Target")
		if id != "" && target != "" {
			rels[id] = target
		}
	}
	return rels
}
