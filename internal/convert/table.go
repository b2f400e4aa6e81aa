package convert

import (
	"strings"

	"github.com/roboco-io/docx2markdown/internal/docx"
)

// ConvertTable renders a table as HTML with merges resolved into
// rowspan/colspan attributes.
func ConvertTable(tbl *docx.Table, ctx *Context) (string, error) {
	grid, err := buildGrid(tbl, func(cell *docx.TableCell) (string, error) {
		return convertCell(cell, ctx)
	})
	if err != nil {
		return "", err
	}
	return renderGrid(grid), nil
}

// convertCell renders a cell body. Paragraphs inside a cell sit on one
// HTML line, separated by <br/>; nested tables render in place.
func convertCell(cell *docx.TableCell, ctx *Context) (string, error) {
	var sb strings.Builder
	for _, item := range cell.Content {
		switch {
		case item.Paragraph != nil:
			text, err := ConvertParagraph(item.Paragraph, ctx)
			if err != nil {
				return "", err
			}
			if text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("<br/>")
			}
			sb.WriteString(text)
		case item.Table != nil:
			nested, err := ConvertTable(item.Table, ctx)
			if err != nil {
				return "", err
			}
			sb.WriteString(nested)
		}
	}
	return sb.String(), nil
}
