package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/roboco-io/docx2markdown/internal/docx"
	"github.com/roboco-io/docx2markdown/internal/images"
	"github.com/roboco-io/docx2markdown/internal/ir"
)

func skipOptions() Options {
	opts := DefaultOptions()
	opts.Images = images.ModeSkip
	return opts
}

func TestConvert_Document(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Paragraph: &docx.Paragraph{
				Props:   &docx.ParaProps{StyleID: "Heading1"},
				Content: []docx.ParaItem{{Run: textRun("계약서")}},
			}},
			{Paragraph: textPara("본문 내용입니다.")},
			{Table: &docx.Table{Rows: []*docx.TableRow{
				{Cells: []*docx.TableCell{plainCell("항목"), plainCell("값")}},
			}}},
		},
	}

	got, err := New(skipOptions(), nil).Convert(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# 계약서\n\n본문 내용입니다.\n\n" +
		"<table>\n  <tr>\n    <td>항목</td>\n    <td>값</td>\n  </tr>\n</table>\n\n"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvert_EmptyParagraphsDropped(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Paragraph: textPara("첫 문단")},
			{Paragraph: &docx.Paragraph{}},
			{Paragraph: textPara("   ")},
			{Paragraph: textPara("둘째 문단")},
		},
	}

	got, err := New(skipOptions(), nil).Convert(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "첫 문단\n\n둘째 문단\n\n" {
		t.Errorf("expected empty paragraphs dropped, got %q", got)
	}
}

func TestConvert_ReferenceDefinitions(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Paragraph: para(runItem(&docx.Run{Content: []docx.RunItem{
				{Kind: docx.RunText, Text: "본문"},
				{Kind: docx.RunFootnoteRef, NoteID: 1},
				{Kind: docx.RunCommentRef, CommentID: "7"},
			}}))},
		},
		Footnotes: []docx.Note{{ID: 1, Paragraphs: []*docx.Paragraph{textPara("각주 본문")}}},
		Comments:  []docx.Comment{{ID: "7", Paragraphs: []*docx.Paragraph{textPara("의견")}}},
	}

	got, err := New(skipOptions(), nil).Convert(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "본문[^1][^c7]") {
		t.Errorf("expected inline markers, got:\n%s", got)
	}
	if !strings.Contains(got, "---\n\n[^1]: 각주 본문\n[^c7]: 의견\n") {
		t.Errorf("expected trailing definitions, got:\n%s", got)
	}
}

func TestConvert_MissingReferenceRelaxed(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Paragraph: para(runItem(&docx.Run{Content: []docx.RunItem{
				{Kind: docx.RunFootnoteRef, NoteID: 99},
				{Kind: docx.RunText, Text: " 본문"},
			}}))},
		},
	}

	got, err := New(skipOptions(), nil).Convert(doc)
	if err != nil {
		t.Fatalf("relaxed mode must not fail: %v", err)
	}
	if !strings.Contains(got, "[^1] 본문") {
		t.Errorf("expected marker with empty definition, got:\n%s", got)
	}
	if !strings.Contains(got, "[^1]: \n") {
		t.Errorf("expected empty definition line, got:\n%s", got)
	}
}

func TestConvert_MissingReferenceStrict(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Paragraph: para(runItem(&docx.Run{Content: []docx.RunItem{
				{Kind: docx.RunFootnoteRef, NoteID: 99},
				{Kind: docx.RunCommentRef, CommentID: "x"},
			}}))},
		},
	}

	opts := skipOptions()
	opts.StrictReferences = true
	_, err := New(opts, nil).Convert(doc)
	if err == nil {
		t.Fatal("expected an error for missing references")
	}
	if !errors.Is(err, ErrMissingReference) {
		t.Errorf("expected ErrMissingReference, got %v", err)
	}
	if !strings.Contains(err.Error(), "footnote:99") || !strings.Contains(err.Error(), "comment:x") {
		t.Errorf("expected both diagnostics in the error, got %v", err)
	}
}

func TestExtract_BlockTypes(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{Bookmark: &docx.Bookmark{Name: "top"}},
			{Paragraph: textPara("문단")},
			{Table: &docx.Table{Rows: []*docx.TableRow{
				{Cells: []*docx.TableCell{plainCell("셀")}},
			}}},
		},
	}

	out, err := New(skipOptions(), nil).Extract(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(out.Blocks))
	}
	wantTypes := []ir.BlockType{ir.BlockTypeHTML, ir.BlockTypeParagraph, ir.BlockTypeTable}
	for i, wantType := range wantTypes {
		if out.Blocks[i].Type != wantType {
			t.Errorf("block %d: expected type %s, got %s", i, wantType, out.Blocks[i].Type)
		}
	}
	if out.Blocks[0].Text != "<a id=\"top\"></a>" {
		t.Errorf("expected anchor block, got %q", out.Blocks[0].Text)
	}
}

func TestConvert_SDTFlattens(t *testing.T) {
	doc := &docx.Document{
		Body: []docx.BodyItem{
			{SDT: &docx.SDT{Content: []docx.BodyItem{
				{Paragraph: textPara("목차 제목")},
				{Paragraph: textPara("1. 서론")},
			}}},
		},
	}

	got, err := New(skipOptions(), nil).Convert(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "목차 제목\n\n1. 서론\n\n" {
		t.Errorf("expected SDT children as top-level blocks, got %q", got)
	}
}
