package docx

import "github.com/beevik/etree"

// parseStyles reads word/styles.xml: document defaults plus the named
// style records with their basedOn links.
func parseStyles(root *etree.Element) *Styles {
	styles := &Styles{ByID: make(map[string]*Style)}

	if defaults := child(root, "docDefaults"); defaults != nil {
		if rd := child(defaults, "rPrDefault"); rd != nil {
			if rPr := child(rd, "rPr"); rPr != nil {
				styles.DefaultChar = parseRunProps(rPr)
			}
		}
		if pd := child(defaults, "pPrDefault"); pd != nil {
			if pPr := child(pd, "pPr"); pPr != nil {
				styles.DefaultPara = parseParaProps(pPr)
			}
		}
	}

	for _, ch := range root.ChildElements() {
		if ch.Tag != "style" {
			continue
		}
		id := attr(ch, "styleId")
		if id == "" {
			continue
		}
		style := &Style{
			ID:      id,
			BasedOn: childVal(ch, "basedOn"),
		}
		if rPr := child(ch, "rPr"); rPr != nil {
			style.Char = parseRunProps(rPr)
		}
		if pPr := child(ch, "pPr"); pPr != nil {
			style.Para = parseParaProps(pPr)
		}
		styles.ByID[id] = style
	}

	return styles
}
