package docx

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// parseNumbering reads word/numbering.xml: abstract level definitions,
// instance bindings, and per-instance start overrides.
func parseNumbering(root *etree.Element) *Numbering {
	numbering := &Numbering{
		Abstract:  make(map[int][]Level),
		Instances: make(map[int]int),
		Overrides: make(map[LevelKey]int),
	}

	for _, ch := range root.ChildElements() {
		switch ch.Tag {
		case "abstractNum":
			absID, err := strconv.Atoi(attr(ch, "abstractNumId"))
			if err != nil {
				continue
			}
			var levels []Level
			for _, lvl := range ch.ChildElements() {
				if lvl.Tag != "lvl" {
					continue
				}
				level := Level{
					Start:  1,
					Format: "decimal",
				}
				level.Index, _ = strconv.Atoi(attr(lvl, "ilvl"))
				if start, ok := intVal(lvl, "start"); ok {
					level.Start = start
				}
				if format := childVal(lvl, "numFmt"); format != "" {
					level.Format = format
				}
				level.Text = childVal(lvl, "lvlText")
				levels = append(levels, level)
			}
			sort.Slice(levels, func(i, j int) bool { return levels[i].Index < levels[j].Index })
			numbering.Abstract[absID] = levels

		case "num":
			numID, err := strconv.Atoi(attr(ch, "numId"))
			if err != nil {
				continue
			}
			if absID, ok := intVal(ch, "abstractNumId"); ok {
				numbering.Instances[numID] = absID
			}
			for _, ov := range ch.ChildElements() {
				if ov.Tag != "lvlOverride" {
					continue
				}
				level, err := strconv.Atoi(attr(ov, "ilvl"))
				if err != nil {
					continue
				}
				if start, ok := intVal(ov, "startOverride"); ok {
					numbering.Overrides[LevelKey{NumID: numID, Level: level}] = start
				}
			}
		}
	}

	return numbering
}
