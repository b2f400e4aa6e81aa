package convert

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
)

func testContext(doc *docx.Document, opts Options) *Context {
	return newContext(doc, images.NewSkip(), opts, zap.NewNop())
}

func textRun(text string) *docx.Run {
	return &docx.Run{Content: []docx.RunItem{{Kind: docx.RunText, Text: text}}}
}

func textPara(text string) *docx.Paragraph {
	return &docx.Paragraph{Content: []docx.ParaItem{{Run: textRun(text)}}}
}

func plainCell(text string) *docx.TableCell {
	return &docx.TableCell{Content: []docx.BodyItem{{Paragraph: textPara(text)}}}
}

func mergedCell(val string) *docx.TableCell {
	return &docx.TableCell{VMerge: &val}
}

func TestConvertTable_Simple(t *testing.T) {
	tbl := &docx.Table{Rows: []*docx.TableRow{
		{Cells: []*docx.TableCell{plainCell("A"), plainCell("B")}},
		{Cells: []*docx.TableCell{plainCell("C"), plainCell("D")}},
	}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<table>\n" +
		"  <tr>\n    <td>A</td>\n    <td>B</td>\n  </tr>\n" +
		"  <tr>\n    <td>C</td>\n    <td>D</td>\n  </tr>\n" +
		"</table>"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvertTable_Colspan(t *testing.T) {
	wide := plainCell("WIDE")
	wide.GridSpan = 2
	tbl := &docx.Table{Rows: []*docx.TableRow{
		{Cells: []*docx.TableCell{wide}},
		{Cells: []*docx.TableCell{plainCell("A"), plainCell("B")}},
	}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<td colspan="2">WIDE</td>`) {
		t.Errorf("expected colspan cell, got:\n%s", got)
	}
}

func TestConvertTable_RowspanAccumulates(t *testing.T) {
	restart := plainCell("TALL")
	restartVal := "restart"
	restart.VMerge = &restartVal

	tbl := &docx.Table{Rows: []*docx.TableRow{
		{Cells: []*docx.TableCell{restart, plainCell("R1")}},
		{Cells: []*docx.TableCell{mergedCell("continue"), plainCell("R2")}},
		{Cells: []*docx.TableCell{mergedCell(""), plainCell("R3")}},
	}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<td rowspan="3">TALL</td>`) {
		t.Errorf("expected rowspan=3 master cell, got:\n%s", got)
	}
	if strings.Count(got, "<td") != 4 {
		t.Errorf("merged slots must not render: got:\n%s", got)
	}
}

func TestConvertTable_CombinedSpans(t *testing.T) {
	// A 2x2 block cell: gridSpan 2 on the restart row, continuation below.
	top := plainCell("TOP")
	top.GridSpan = 2
	restartVal := "restart"
	top.VMerge = &restartVal

	cont := mergedCell("continue")
	cont.GridSpan = 2

	tbl := &docx.Table{Rows: []*docx.TableRow{
		{Cells: []*docx.TableCell{top, plainCell("R")}},
		{Cells: []*docx.TableCell{cont, plainCell("L")}},
	}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<td rowspan="2" colspan="2">TOP</td>`) {
		t.Errorf("expected combined-span master, got:\n%s", got)
	}
	if !strings.Contains(got, "<td>L</td>") {
		t.Errorf("expected plain cell after the merged block, got:\n%s", got)
	}
}

func TestConvertTable_MultiParagraphCell(t *testing.T) {
	cell := &docx.TableCell{Content: []docx.BodyItem{
		{Paragraph: textPara("첫째")},
		{Paragraph: textPara("둘째")},
	}}
	tbl := &docx.Table{Rows: []*docx.TableRow{{Cells: []*docx.TableCell{cell}}}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "첫째<br/>둘째") {
		t.Errorf("expected <br/> between cell paragraphs, got:\n%s", got)
	}
}

func TestConvertTable_NestedTable(t *testing.T) {
	inner := &docx.Table{Rows: []*docx.TableRow{{Cells: []*docx.TableCell{plainCell("안")}}}}
	outerCell := &docx.TableCell{Content: []docx.BodyItem{{Table: inner}}}
	tbl := &docx.Table{Rows: []*docx.TableRow{{Cells: []*docx.TableCell{outerCell}}}}
	ctx := testContext(&docx.Document{}, DefaultOptions())

	got, err := ConvertTable(tbl, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(got, "<table>") != 2 {
		t.Errorf("expected nested table markup, got:\n%s", got)
	}
}
