package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// parseBody extracts the ordered body items from the document root.
func parseBody(root *etree.Element) []BodyItem {
	body := child(root, "body")
	if body == nil {
		return nil
	}
	return parseBodyItems(body)
}

// parseBodyItems walks ordered block-level children. The same shape covers
// the document body, table cells, and SDT content.
func parseBodyItems(el *etree.Element) []BodyItem {
	var items []BodyItem
	for _, ch := range el.ChildElements() {
		switch ch.Tag {
		case "p":
			items = append(items, BodyItem{Paragraph: parseParagraph(ch)})
		case "tbl":
			items = append(items, BodyItem{Table: parseTable(ch)})
		case "sdt":
			if content := child(ch, "sdtContent"); content != nil {
				items = append(items, BodyItem{SDT: &SDT{Content: parseBodyItems(content)}})
			}
		case "bookmarkStart":
			if name := attr(ch, "name"); name != "" {
				items = append(items, BodyItem{Bookmark: &Bookmark{Name: name}})
			}
		}
	}
	return items
}

func parseParagraph(el *etree.Element) *Paragraph {
	p := &Paragraph{}
	for _, ch := range el.ChildElements() {
		switch ch.Tag {
		case "pPr":
			p.Props = parseParaProps(ch)
		case "r":
			p.Content = append(p.Content, ParaItem{Run: parseRun(ch)})
		case "hyperlink":
			p.Content = append(p.Content, ParaItem{Hyperlink: parseHyperlink(ch)})
		case "ins":
			p.Content = append(p.Content, ParaItem{Inserted: &TrackedRuns{Runs: parseWrappedRuns(ch)}})
		case "del":
			p.Content = append(p.Content, ParaItem{Deleted: &TrackedRuns{Runs: parseWrappedRuns(ch)}})
		case "bookmarkStart":
			if name := attr(ch, "name"); name != "" {
				p.Content = append(p.Content, ParaItem{Bookmark: &Bookmark{Name: name}})
			}
		case "sdt":
			if content := child(ch, "sdtContent"); content != nil {
				p.Content = append(p.Content, ParaItem{SDT: &SDT{Content: parseBodyItems(content)}})
			}
		}
	}
	return p
}

func parseParaProps(el *etree.Element) *ParaProps {
	props := &ParaProps{
		StyleID:       childVal(el, "pStyle"),
		Justification: childVal(el, "jc"),
	}
	if numPr := child(el, "numPr"); numPr != nil {
		numID, okID := intVal(numPr, "numId")
		level, _ := intVal(numPr, "ilvl")
		if okID {
			props.Numbering = &NumberingRef{NumID: numID, Level: level}
		}
	}
	return props
}

func parseWrappedRuns(el *etree.Element) []*Run {
	var runs []*Run
	for _, ch := range el.ChildElements() {
		if ch.Tag == "r" {
			runs = append(runs, parseRun(ch))
		}
	}
	return runs
}

func parseHyperlink(el *etree.Element) *Hyperlink {
	return &Hyperlink{
		RelID:  attr(el, "id"),
		Anchor: attr(el, "anchor"),
		Runs:   parseWrappedRuns(el),
	}
}

func parseRun(el *etree.Element) *Run {
	run := &Run{}
	for _, ch := range el.ChildElements() {
		switch ch.Tag {
		case "rPr":
			run.Props = parseRunProps(ch)
		case "t":
			run.Content = append(run.Content, RunItem{Kind: RunText, Text: ch.Text()})
		case "delText":
			run.Content = append(run.Content, RunItem{Kind: RunDelText, Text: ch.Text()})
		case "tab":
			run.Content = append(run.Content, RunItem{Kind: RunTab})
		case "br":
			run.Content = append(run.Content, RunItem{Kind: RunBreak, BreakType: attr(ch, "type")})
		case "cr":
			run.Content = append(run.Content, RunItem{Kind: RunBreak})
		case "fldChar":
			run.Content = append(run.Content, RunItem{Kind: RunFieldChar, FieldChar: attr(ch, "fldCharType")})
		case "instrText":
			run.Content = append(run.Content, RunItem{Kind: RunInstrText, Text: ch.Text()})
		case "drawing":
			if relID := drawingRelID(ch); relID != "" {
				run.Content = append(run.Content, RunItem{Kind: RunDrawing, RelID: relID})
			}
		case "pict":
			if relID := pictRelID(ch); relID != "" {
				run.Content = append(run.Content, RunItem{Kind: RunDrawing, RelID: relID})
			}
		case "sym":
			if text := symText(ch); text != "" {
				run.Content = append(run.Content, RunItem{Kind: RunSym, Text: text})
			}
		case "footnoteReference":
			if id, err := strconv.Atoi(attr(ch, "id")); err == nil {
				run.Content = append(run.Content, RunItem{Kind: RunFootnoteRef, NoteID: id})
			}
		case "endnoteReference":
			if id, err := strconv.Atoi(attr(ch, "id")); err == nil {
				run.Content = append(run.Content, RunItem{Kind: RunEndnoteRef, NoteID: id})
			}
		case "commentReference":
			if id := attr(ch, "id"); id != "" {
				run.Content = append(run.Content, RunItem{Kind: RunCommentRef, CommentID: id})
			}
		}
	}
	return run
}

func parseRunProps(el *etree.Element) *RunProps {
	props := &RunProps{StyleID: childVal(el, "rStyle")}
	props.Bold = parseOnOff(child(el, "b"))
	props.Italic = parseOnOff(child(el, "i"))
	props.Strike = parseOnOff(child(el, "strike"))
	if u := child(el, "u"); u != nil {
		val := attr(u, "val")
		props.Underline = &val
	}
	return props
}

func parseOnOff(el *etree.Element) *OnOff {
	if el == nil {
		return nil
	}
	switch attr(el, "val") {
	case "":
		return &OnOff{}
	case "0", "false", "off":
		f := false
		return &OnOff{Val: &f}
	default:
		t := true
		return &OnOff{Val: &t}
	}
}

// drawingRelID finds the a:blip r:embed relationship of a DrawingML image.
func drawingRelID(el *etree.Element) string {
	if blip := findDescendant(el, "blip"); blip != nil {
		if embed := attr(blip, "embed"); embed != "" {
			return embed
		}
		return attr(blip, "link")
	}
	return ""
}

// pictRelID finds the v:imagedata r:id relationship of a VML image.
func pictRelID(el *etree.Element) string {
	if data := findDescendant(el, "imagedata"); data != nil {
		return attr(data, "id")
	}
	return ""
}

// symText decodes the hex character code of a w:sym element.
func symText(el *etree.Element) string {
	code, err := strconv.ParseUint(attr(el, "char"), 16, 32)
	if err != nil {
		return ""
	}
	r := rune(code)
	// Symbol fonts map into the private use area; fold back to BMP.
	if r >= 0xF000 && r <= 0xF0FF {
		r -= 0xF000
	}
	return string(r)
}

func parseTable(el *etree.Element) *Table {
	tbl := &Table{}
	for _, ch := range el.ChildElements() {
		if ch.Tag != "tr" {
			continue
		}
		row := &TableRow{}
		for _, tc := range ch.ChildElements() {
			if tc.Tag != "tc" {
				continue
			}
			row.Cells = append(row.Cells, parseTableCell(tc))
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

func parseTableCell(el *etree.Element) *TableCell {
	cell := &TableCell{GridSpan: 1}
	if tcPr := child(el, "tcPr"); tcPr != nil {
		if span, ok := intVal(tcPr, "gridSpan"); ok && span > 1 {
			cell.GridSpan = span
		}
		if vm := child(tcPr, "vMerge"); vm != nil {
			val := attr(vm, "val")
			cell.VMerge = &val
		}
	}
	cell.Content = parseBodyItems(el)
	return cell
}

// intVal reads a named child's w:val attribute as an integer.
func intVal(el *etree.Element, tag string) (int, bool) {
	v := childVal(el, tag)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
