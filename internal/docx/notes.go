package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// parseNotes reads word/footnotes.xml or word/endnotes.xml. Separator and
// continuation pseudo-notes parse like any other; they carry negative ids
// and are never referenced from the body.
func parseNotes(root *etree.Element, tag string) []Note {
	var notes []Note
	for _, ch := range root.ChildElements() {
		if ch.Tag != tag {
			continue
		}
		id, err := strconv.Atoi(attr(ch, "id"))
		if err != nil {
			continue
		}
		notes = append(notes, Note{ID: id, Paragraphs: noteParagraphs(ch)})
	}
	return notes
}

// parseComments reads word/comments.xml. Comment ids stay strings because
// the converter emits them verbatim in markers.
func parseComments(root *etree.Element) []Comment {
	var comments []Comment
	for _, ch := range root.ChildElements() {
		if ch.Tag != "comment" {
			continue
		}
		id := attr(ch, "id")
		if id == "" {
			continue
		}
		comments = append(comments, Comment{ID: id, Paragraphs: noteParagraphs(ch)})
	}
	return comments
}

func noteParagraphs(el *etree.Element) []*Paragraph {
	var paragraphs []*Paragraph
	for _, ch := range el.ChildElements() {
		if ch.Tag == "p" {
			paragraphs = append(paragraphs, parseParagraph(ch))
		}
	}
	return paragraphs
}
