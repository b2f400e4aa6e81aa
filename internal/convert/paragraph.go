package convert

import (
	"fmt"
	"strings"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/render"
)

// ConvertParagraph renders one paragraph as a markdown block. Empty
// paragraphs collapse to "" and are dropped by the caller.
func ConvertParagraph(para *docx.Paragraph, ctx *Context) (string, error) {
	fields := &fieldStack{}
	segs, err := collectSegments(para, ctx, paraStyleID(para), fields)
	if err != nil {
		return "", err
	}
	merged := mergeSegments(segs)

	anchors, text := segmentsToMarkdown(merged, ctx)

	if strings.TrimSpace(text) == "" {
		// A paragraph that carried only anchors still needs its targets.
		return strings.Join(anchors, ""), nil
	}

	wrapped, err := wrapParagraph(para, text, ctx)
	if err != nil {
		return "", err
	}
	if len(anchors) > 0 && wrapped != "" {
		return strings.Join(anchors, "") + "\n" + wrapped, nil
	}
	return wrapped, nil
}

func paraStyleID(para *docx.Paragraph) string {
	if para.Props != nil {
		return para.Props.StyleID
	}
	return ""
}

// collectSegments walks paragraph content in document order, threading
// the field-code stack through every run so that fields opened in one
// run suppress text in the next.
func collectSegments(para *docx.Paragraph, ctx *Context, styleID string, fields *fieldStack) ([]segment, error) {
	var segs []segment

	for _, item := range para.Content {
		switch {
		case item.Run != nil:
			runSegs, err := runSegments(item.Run, ctx, styleID, fields, false, false)
			if err != nil {
				return nil, err
			}
			segs = append(segs, runSegs...)

		case item.Inserted != nil:
			trackedSegs, err := trackedSegments(item.Inserted, ctx, styleID, fields, true, false)
			if err != nil {
				return nil, err
			}
			segs = append(segs, trackedSegs...)

		case item.Deleted != nil:
			trackedSegs, err := trackedSegments(item.Deleted, ctx, styleID, fields, false, true)
			if err != nil {
				return nil, err
			}
			segs = append(segs, trackedSegs...)

		case item.Hyperlink != nil:
			link, err := convertHyperlink(item.Hyperlink, ctx, styleID)
			if err != nil {
				return nil, err
			}
			if link != "" {
				segs = append(segs, segment{text: link})
			}

		case item.Bookmark != nil:
			if item.Bookmark.Name != "" {
				segs = append(segs, segment{anchor: item.Bookmark.Name})
			}

		case item.SDT != nil:
			sdtSegs, err := sdtSegments(item.SDT, ctx, fields)
			if err != nil {
				return nil, err
			}
			segs = append(segs, sdtSegs...)
		}
	}

	return segs, nil
}

func trackedSegments(tracked *docx.TrackedRuns, ctx *Context, styleID string, fields *fieldStack, inserted, deleted bool) ([]segment, error) {
	var segs []segment
	for _, run := range tracked.Runs {
		runSegs, err := runSegments(run, ctx, styleID, fields, inserted, deleted)
		if err != nil {
			return nil, err
		}
		segs = append(segs, runSegs...)
	}
	return segs, nil
}

// sdtSegments flattens an inline structured document tag (TOC wrappers
// and the like) into the surrounding paragraph's segment stream.
func sdtSegments(sdt *docx.SDT, ctx *Context, fields *fieldStack) ([]segment, error) {
	var segs []segment
	for _, item := range sdt.Content {
		switch {
		case item.Paragraph != nil:
			inner, err := collectSegments(item.Paragraph, ctx, paraStyleID(item.Paragraph), fields)
			if err != nil {
				return nil, err
			}
			segs = append(segs, inner...)
		case item.Bookmark != nil:
			if item.Bookmark.Name != "" {
				segs = append(segs, segment{anchor: item.Bookmark.Name})
			}
		}
	}
	return segs, nil
}

// mergeSegments concatenates adjacent segments with identical flags.
func mergeSegments(segs []segment) []segment {
	var merged []segment
	for _, seg := range segs {
		if n := len(merged); n > 0 && merged[n-1].mergeable(seg) {
			merged[n-1].text += seg.text
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// segmentsToMarkdown renders merged segments. Anchors that precede any
// visible text are hoisted out so the caller can place them on the line
// above the paragraph, where scroll-to-anchor lands cleanly above
// heading and list prefixes. Anchors after visible text render inline.
func segmentsToMarkdown(segs []segment, ctx *Context) (anchors []string, text string) {
	var sb strings.Builder
	leading := true
	for _, seg := range segs {
		if seg.anchor != "" && leading {
			anchors = append(anchors, renderSegment(seg, ctx))
			continue
		}
		if strings.TrimSpace(seg.text) != "" || seg.anchor != "" {
			leading = false
		}
		sb.WriteString(renderSegment(seg, ctx))
	}
	return anchors, sb.String()
}

// convertHyperlink renders a hyperlink as a plain markdown link. Field
// codes inside the link are filtered with a stack local to the link.
func convertHyperlink(link *docx.Hyperlink, ctx *Context, styleID string) (string, error) {
	fields := &fieldStack{}
	var segs []segment
	for _, run := range link.Runs {
		runSegs, err := runSegments(run, ctx, styleID, fields, false, false)
		if err != nil {
			return "", err
		}
		segs = append(segs, runSegs...)
	}

	var sb strings.Builder
	for _, seg := range mergeSegments(segs) {
		sb.WriteString(renderSegment(seg, ctx))
	}
	text := sb.String()

	url := "#"
	if link.RelID != "" {
		if target, ok := ctx.RelationshipTarget(link.RelID); ok {
			url = target
		}
	} else if link.Anchor != "" {
		url = "#" + link.Anchor
	}

	if text == "" {
		return url, nil
	}
	return fmt.Sprintf("[%s](%s)", render.EscapeLinkText(text), render.EscapeLinkDestination(url)), nil
}

// wrapParagraph applies heading, list, and alignment formatting around
// the assembled paragraph text.
func wrapParagraph(para *docx.Paragraph, text string, ctx *Context) (string, error) {
	resolved := ctx.styles.ResolveParagraph(para.Props, paraStyleID(para))

	prefix := ""
	isHeading := false

	if level, ok := ParseHeadingStyle(resolved.StyleID); ok {
		// A heading with no visible text is a leftover field shell.
		if strings.TrimSpace(text) == "" {
			return "", nil
		}
		prefix = strings.Repeat("#", level) + " "
		isHeading = true
	}

	if num := resolved.Numbering; num != nil {
		marker := ctx.numbering.NextMarker(num.NumID, num.Level)

		// Article-style markers carry section structure, so the
		// paragraph becomes a heading with the marker folded in.
		if !isHeading && isArticleMarker(marker) {
			prefix = "## "
			isHeading = true
		}

		if isHeading {
			prefix += marker + " "
		} else {
			indent := ctx.numbering.IndentLevel(num.NumID, num.Level)
			// Two levels of two-space indent would read as a code
			// block, so indentation is capped at one level.
			if indent > 1 {
				indent = 1
			}
			prefix += strings.Repeat("  ", indent) + marker + " "
		}
	}

	body := text
	if !ctx.preserveWhitespace() {
		body = strings.TrimSpace(body)
	}
	final := prefix + body

	if !isHeading {
		switch resolved.Justification {
		case "center":
			return fmt.Sprintf("<div style=\"text-align: center;\">%s</div>", final), nil
		case "right":
			return fmt.Sprintf("<div style=\"text-align: right;\">%s</div>", final), nil
		}
	}
	return final, nil
}
