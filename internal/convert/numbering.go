package convert

import (
	"fmt"
	"strings"

	"github.com/roboco-io/docx2markdown/internal/docx"
)

// maxLevels is the number of list levels WordprocessingML defines.
const maxLevels = 10

// NumberingEngine renders list markers and tracks per-list counters.
//
// Counters are keyed by abstract numbering id, not instance id, so that
// several instances bound to the same abstract definition continue one
// shared sequence. A counter value of 0 means the level has not been
// rendered yet. Start-value overrides are keyed by instance id, since
// they are document-specific edits of a particular list.
type NumberingEngine struct {
	instances   map[int]int
	abstract    map[int][]docx.Level
	overrides   map[docx.LevelKey]int
	counters    map[int][]int
	levelShifts map[int]int
}

// NewNumberingEngine builds an engine from the parsed numbering part.
// A nil Numbering yields an engine that renders bare bullets.
func NewNumberingEngine(numbering *docx.Numbering) *NumberingEngine {
	e := &NumberingEngine{
		instances:   make(map[int]int),
		abstract:    make(map[int][]docx.Level),
		overrides:   make(map[docx.LevelKey]int),
		counters:    make(map[int][]int),
		levelShifts: make(map[int]int),
	}
	if numbering == nil {
		return e
	}

	e.instances = numbering.Instances
	e.abstract = numbering.Abstract
	e.overrides = numbering.Overrides

	// A level template shaped like a Korean article heading (제%1조)
	// marks the base indentation level for the whole abstract list:
	// articles wrap everything below them, so deeper levels indent
	// relative to the article, not to level zero.
	for absID, levels := range e.abstract {
		for _, lvl := range levels {
			if isArticleTemplate(lvl.Text) {
				if _, ok := e.levelShifts[absID]; !ok {
					e.levelShifts[absID] = lvl.Index
				}
			}
		}
	}
	return e
}

func isArticleTemplate(text string) bool {
	return strings.Contains(text, "제") && strings.Contains(text, "조") && strings.Contains(text, "%")
}

// IndentLevel returns the indentation level for a list item, shifted by
// the abstract list's inferred base level and floored at zero. The value
// is uncapped; rendering-safety clamping is the caller's concern.
func (e *NumberingEngine) IndentLevel(numID, level int) int {
	indent := level
	if absID, ok := e.instances[numID]; ok {
		if base, ok := e.levelShifts[absID]; ok {
			indent -= base
		}
	}
	if indent < 0 {
		indent = 0
	}
	return indent
}

// NextMarker renders the marker for the next item of the given list and
// level, advancing the counters. Advancing a level resets every deeper
// level back to uninitialized.
func (e *NumberingEngine) NextMarker(numID, level int) string {
	absID, ok := e.instances[numID]
	if !ok {
		return "-"
	}
	levels, ok := e.abstract[absID]
	if !ok {
		return "-"
	}

	counters, ok := e.counters[absID]
	if !ok {
		counters = make([]int, maxLevels)
		e.counters[absID] = counters
	}

	def := findLevel(levels, level)
	if def == nil {
		return "-"
	}

	if level >= len(counters) {
		grown := make([]int, level+1)
		copy(grown, counters)
		counters = grown
		e.counters[absID] = counters
	}

	if counters[level] == 0 {
		start := def.Start
		if override, ok := e.overrides[docx.LevelKey{NumID: numID, Level: level}]; ok {
			start = override
		}
		counters[level] = start
	} else {
		counters[level]++
	}

	for i := level + 1; i < len(counters); i++ {
		counters[i] = 0
	}

	if def.Text != "" {
		return expandTemplate(def.Text, counters, levels)
	}

	raw := formatNumber(def.Format, counters[level])
	switch def.Format {
	case "decimal", "lowerLetter", "upperLetter", "lowerRoman", "upperRoman":
		return raw + "."
	default:
		return raw
	}
}

// findLevel locates a level definition, falling back to the first
// defined level when the requested one is missing.
func findLevel(levels []docx.Level, level int) *docx.Level {
	for i := range levels {
		if levels[i].Index == level {
			return &levels[i]
		}
	}
	if len(levels) > 0 {
		return &levels[0]
	}
	return nil
}

// expandTemplate substitutes %1..%9 placeholders with the corresponding
// level counters, each formatted per that level's number format. A zero
// counter displays as 1: a template may reference a deeper level that was
// never explicitly visited.
func expandTemplate(template string, counters []int, levels []docx.Level) string {
	marker := template
	for i, count := range counters {
		placeholder := fmt.Sprintf("%%%d", i+1)
		if !strings.Contains(marker, placeholder) {
			continue
		}
		format := "decimal"
		if def := levelAt(levels, i); def != nil {
			format = def.Format
		}
		val := count
		if val == 0 {
			val = 1
		}
		marker = strings.ReplaceAll(marker, placeholder, formatNumber(format, val))
	}
	return marker
}

func levelAt(levels []docx.Level, index int) *docx.Level {
	for i := range levels {
		if levels[i].Index == index {
			return &levels[i]
		}
	}
	return nil
}

// formatNumber renders a counter value in the given OOXML number format.
// Values a format cannot represent fall back to plain decimal.
func formatNumber(format string, val int) string {
	switch format {
	case "bullet", "none":
		return "-"
	case "decimal":
		return fmt.Sprintf("%d", val)
	case "lowerLetter":
		if val >= 1 && val <= 26 {
			return string(rune('a' + val - 1))
		}
		return fmt.Sprintf("%d", val)
	case "upperLetter":
		if val >= 1 && val <= 26 {
			return string(rune('A' + val - 1))
		}
		return fmt.Sprintf("%d", val)
	case "lowerRoman":
		return strings.ToLower(toRoman(val))
	case "upperRoman":
		return toRoman(val)
	case "koreanCounting", "korean", "ganada":
		return fromTable(ganadaTable[:], val)
	case "geonodeo":
		return fromTable(geonodeoTable[:], val)
	case "chosung":
		return fromTable(chosungTable[:], val)
	case "decimalEnclosedCircle":
		return circledNumber(val)
	default:
		return fmt.Sprintf("%d", val)
	}
}

// Korean counting alphabets are finite lookup tables, 1-indexed.
var (
	ganadaTable = [14]rune{
		'가', '나', '다', '라', '마', '바', '사', '아', '자', '차', '카', '타', '파', '하',
	}
	geonodeoTable = [14]rune{
		'거', '너', '더', '러', '머', '버', '서', '어', '저', '처', '커', '터', '퍼', '허',
	}
	chosungTable = [14]rune{
		'ㄱ', 'ㄴ', 'ㄷ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅅ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

func fromTable(table []rune, val int) string {
	if val >= 1 && val <= len(table) {
		return string(table[val-1])
	}
	return fmt.Sprintf("%d", val)
}

// circledNumber maps 1-20 to U+2460..U+2473 and 21-50 to the extended
// U+3251..U+32BF range.
func circledNumber(val int) string {
	switch {
	case val >= 1 && val <= 20:
		return string(rune(0x245F + val))
	case val >= 21 && val <= 50:
		return string(rune(0x3250 + val - 20))
	default:
		return fmt.Sprintf("%d", val)
	}
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// toRoman renders a positive integer as a Roman numeral using the
// subtractive-pair table; non-positive values return the raw integer.
func toRoman(num int) string {
	if num <= 0 {
		return fmt.Sprintf("%d", num)
	}
	var sb strings.Builder
	for _, entry := range romanTable {
		for num >= entry.value {
			sb.WriteString(entry.symbol)
			num -= entry.value
		}
	}
	return sb.String()
}
