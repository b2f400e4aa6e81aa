package convert

import (
	"testing"

	"github.com/roboco-io/docx2markdown/internal/docx"
)

func onOff(v bool) *docx.OnOff {
	return &docx.OnOff{Val: &v}
}

func TestResolveRun_Priority(t *testing.T) {
	underline := "single"
	styles := &docx.Styles{
		DefaultChar: &docx.RunProps{Bold: onOff(true), Italic: onOff(true)},
		ByID: map[string]*docx.Style{
			"Emphasis": {
				ID:   "Emphasis",
				Char: &docx.RunProps{Bold: onOff(false), Underline: &underline},
			},
		},
	}
	resolver := NewStyleResolver(styles)

	// Defaults alone.
	got := resolver.ResolveRun(nil, "", "")
	if !got.Bold || !got.Italic || got.Underline {
		t.Errorf("defaults: expected bold+italic, got %+v", got)
	}

	// Run style overrides the default bold, adds underline, leaves italic.
	got = resolver.ResolveRun(nil, "Emphasis", "")
	if got.Bold || !got.Italic || !got.Underline {
		t.Errorf("run style: expected italic+underline without bold, got %+v", got)
	}

	// Direct formatting wins over everything.
	got = resolver.ResolveRun(&docx.RunProps{Bold: onOff(true)}, "Emphasis", "")
	if !got.Bold || !got.Underline {
		t.Errorf("direct: expected bold restored, got %+v", got)
	}
}

func TestResolveRun_ParagraphStyleBelowRunStyle(t *testing.T) {
	styles := &docx.Styles{
		ByID: map[string]*docx.Style{
			"Quote":  {ID: "Quote", Char: &docx.RunProps{Italic: onOff(true), Bold: onOff(true)}},
			"Strong": {ID: "Strong", Char: &docx.RunProps{Bold: onOff(false)}},
		},
	}
	resolver := NewStyleResolver(styles)

	got := resolver.ResolveRun(nil, "Strong", "Quote")
	if got.Bold {
		t.Errorf("run style must override paragraph style, got %+v", got)
	}
	if !got.Italic {
		t.Errorf("paragraph style italic must survive, got %+v", got)
	}
}

func TestResolveRun_BasedOnChain(t *testing.T) {
	styles := &docx.Styles{
		ByID: map[string]*docx.Style{
			"Base":  {ID: "Base", Char: &docx.RunProps{Bold: onOff(true), Strike: onOff(true)}},
			"Child": {ID: "Child", BasedOn: "Base", Char: &docx.RunProps{Strike: onOff(false)}},
		},
	}
	resolver := NewStyleResolver(styles)

	got := resolver.ResolveRun(nil, "Child", "")
	if !got.Bold {
		t.Errorf("inherited bold lost: %+v", got)
	}
	if got.Strike {
		t.Errorf("child must override inherited strike: %+v", got)
	}
}

func TestResolveRun_BasedOnCycle(t *testing.T) {
	styles := &docx.Styles{
		ByID: map[string]*docx.Style{
			"A": {ID: "A", BasedOn: "B", Char: &docx.RunProps{Bold: onOff(true)}},
			"B": {ID: "B", BasedOn: "A", Char: &docx.RunProps{Italic: onOff(true)}},
		},
	}
	resolver := NewStyleResolver(styles)

	got := resolver.ResolveRun(nil, "A", "")
	if !got.Bold || !got.Italic {
		t.Errorf("cycle must still merge both styles once, got %+v", got)
	}
}

func TestResolveRun_UnknownStyleIgnored(t *testing.T) {
	resolver := NewStyleResolver(nil)

	got := resolver.ResolveRun(&docx.RunProps{Italic: onOff(true)}, "NoSuch", "AlsoNoSuch")
	if got.Bold || !got.Italic {
		t.Errorf("unknown styles resolve to direct formatting only, got %+v", got)
	}
}

func TestResolveParagraph_StyleCarriedNumbering(t *testing.T) {
	styles := &docx.Styles{
		ByID: map[string]*docx.Style{
			"ListItem": {
				ID:   "ListItem",
				Para: &docx.ParaProps{Numbering: &docx.NumberingRef{NumID: 5, Level: 0}},
			},
		},
	}
	resolver := NewStyleResolver(styles)

	got := resolver.ResolveParagraph(&docx.ParaProps{StyleID: "ListItem"}, "ListItem")
	if got.Numbering == nil || got.Numbering.NumID != 5 {
		t.Fatalf("expected numbering from style, got %+v", got.Numbering)
	}

	// Direct numbering wins over the style's.
	direct := &docx.ParaProps{
		StyleID:   "ListItem",
		Numbering: &docx.NumberingRef{NumID: 9, Level: 1},
	}
	got = resolver.ResolveParagraph(direct, "ListItem")
	if got.Numbering.NumID != 9 || got.Numbering.Level != 1 {
		t.Errorf("direct numbering must win, got %+v", got.Numbering)
	}
}

func TestParseHeadingStyle(t *testing.T) {
	tests := []struct {
		style string
		level int
		ok    bool
	}{
		{"Heading1", 1, true},
		{"heading 3", 3, true},
		{"Heading9", 9, true},
		{"Title", 1, true},
		{"Subtitle", 2, true},
		{"Heading0", 0, false},
		{"HeadingX", 0, false},
		{"Normal", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		level, ok := ParseHeadingStyle(tc.style)
		if ok != tc.ok || (ok && level != tc.level) {
			t.Errorf("ParseHeadingStyle(%q): expected (%d, %v), got (%d, %v)",
				tc.style, tc.level, tc.ok, level, ok)
		}
	}
}

func TestIsArticleMarker(t *testing.T) {
	tests := []struct {
		marker string
		want   bool
	}{
		{"제1조", true},
		{"제 12 조", true},
		{"제1항", false},
		{"1조", false},
		{"부칙 제1조", false},
	}

	for _, tc := range tests {
		if got := isArticleMarker(tc.marker); got != tc.want {
			t.Errorf("isArticleMarker(%q): expected %v, got %v", tc.marker, tc.want, got)
		}
	}
}
