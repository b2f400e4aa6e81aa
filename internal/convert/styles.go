package convert

import "github.com/roboco-io/docx2markdown/internal/docx"

// CharProps is the fully merged character formatting for a run.
type CharProps struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// ParaProps is the fully merged paragraph formatting.
type ParaProps struct {
	StyleID       string
	Numbering     *docx.NumberingRef
	Justification string
}

// StyleResolver merges formatting across document defaults, style
// inheritance chains, and direct formatting.
//
// Priority, lowest first: document defaults, paragraph style chain
// (root to leaf), run style chain, direct formatting. Each tracked field
// is atomic: an overlay replaces it only when the overlay actually sets
// it. Unknown style ids terminate the chain silently; resolution never
// fails.
type StyleResolver struct {
	defaultChar *docx.RunProps
	defaultPara *docx.ParaProps
	byID        map[string]*docx.Style
}

// NewStyleResolver builds a resolver over the parsed style records.
// A nil Styles yields a resolver where only direct formatting applies.
func NewStyleResolver(styles *docx.Styles) *StyleResolver {
	r := &StyleResolver{byID: make(map[string]*docx.Style)}
	if styles != nil {
		r.defaultChar = styles.DefaultChar
		r.defaultPara = styles.DefaultPara
		r.byID = styles.ByID
	}
	return r
}

// ResolveRun returns the effective character properties for a run.
func (r *StyleResolver) ResolveRun(direct *docx.RunProps, runStyleID, paraStyleID string) CharProps {
	var merged docx.RunProps

	mergeChar(&merged, r.defaultChar)
	for _, style := range r.chain(paraStyleID) {
		mergeChar(&merged, style.Char)
	}
	for _, style := range r.chain(runStyleID) {
		mergeChar(&merged, style.Char)
	}
	mergeChar(&merged, direct)

	return CharProps{
		Bold:      merged.Bold.Enabled(),
		Italic:    merged.Italic.Enabled(),
		Underline: merged.Underline != nil,
		Strike:    merged.Strike.Enabled(),
	}
}

// ResolveParagraph returns the effective paragraph properties.
func (r *StyleResolver) ResolveParagraph(direct *docx.ParaProps, paraStyleID string) ParaProps {
	var merged ParaProps

	mergePara(&merged, r.defaultPara)
	for _, style := range r.chain(paraStyleID) {
		mergePara(&merged, style.Para)
	}
	mergePara(&merged, direct)

	return merged
}

// chain collects a style's base chain ordered root first, so that later
// merges override earlier ones. A visited set terminates basedOn cycles.
func (r *StyleResolver) chain(styleID string) []*docx.Style {
	var chain []*docx.Style
	visited := make(map[string]bool)

	for id := styleID; id != "" && !visited[id]; {
		style, ok := r.byID[id]
		if !ok {
			break
		}
		visited[id] = true
		chain = append(chain, style)
		id = style.BasedOn
	}

	// Reverse to root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func mergeChar(target *docx.RunProps, overlay *docx.RunProps) {
	if overlay == nil {
		return
	}
	if overlay.Bold != nil {
		target.Bold = overlay.Bold
	}
	if overlay.Italic != nil {
		target.Italic = overlay.Italic
	}
	if overlay.Strike != nil {
		target.Strike = overlay.Strike
	}
	if overlay.Underline != nil {
		target.Underline = overlay.Underline
	}
}

func mergePara(target *ParaProps, overlay *docx.ParaProps) {
	if overlay == nil {
		return
	}
	if overlay.StyleID != "" {
		target.StyleID = overlay.StyleID
	}
	if overlay.Numbering != nil {
		target.Numbering = overlay.Numbering
	}
	if overlay.Justification != "" {
		target.Justification = overlay.Justification
	}
}
