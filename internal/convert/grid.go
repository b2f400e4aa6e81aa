package convert

import (
	"fmt"
	"strings"

	"github.com/roboco-io/docx2markdown/internal/docx"
)

// cellKind classifies a logical grid slot after span resolution.
type cellKind int

const (
	// cellEmpty is a slot no cell reached; it renders as a blank <td>.
	cellEmpty cellKind = iota
	// cellOccupied is the top-left slot of a real cell.
	cellOccupied
	// cellMergedLeft is covered by an occupied cell to its left.
	cellMergedLeft
	// cellMergedUp is covered by an occupied cell above it.
	cellMergedUp
)

// gridCell is one logical slot of the reconstructed table grid.
type gridCell struct {
	kind    cellKind
	content string
	rowspan int
	colspan int
}

// buildGrid resolves a table's horizontal and vertical merges into a
// rectangular grid of logical slots. renderCell produces the markdown
// body for each cell that actually occupies its slot; vertically merged
// continuation cells are never rendered.
func buildGrid(tbl *docx.Table, renderCell func(*docx.TableCell) (string, error)) ([][]gridCell, error) {
	grid := make([][]gridCell, 0, len(tbl.Rows))

	for rowIdx, row := range tbl.Rows {
		grid = append(grid, nil)
		col := 0
		for _, cell := range row.Cells {

			// Skip slots already claimed by spans from earlier cells.
			for col < len(grid[rowIdx]) && grid[rowIdx][col].kind != cellEmpty {
				col++
			}

			span := cell.GridSpan
			if span < 1 {
				span = 1
			}

			if cell.VMergeContinues() {
				incrementRowspan(grid, rowIdx, col)
				for i := 0; i < span; i++ {
					setGridCell(grid, rowIdx, col+i, gridCell{kind: cellMergedUp})
				}
				col += span
				continue
			}

			content, err := renderCell(cell)
			if err != nil {
				return nil, err
			}
			setGridCell(grid, rowIdx, col, gridCell{
				kind:    cellOccupied,
				content: content,
				rowspan: 1,
				colspan: span,
			})
			for i := 1; i < span; i++ {
				setGridCell(grid, rowIdx, col+i, gridCell{kind: cellMergedLeft})
			}
			col += span
		}
	}

	return grid, nil
}

// setGridCell places a cell at (row, col), padding the row with empty
// slots as needed.
func setGridCell(grid [][]gridCell, row, col int, cell gridCell) {
	for len(grid[row]) <= col {
		grid[row] = append(grid[row], gridCell{kind: cellEmpty})
	}
	grid[row][col] = cell
}

// incrementRowspan finds the occupied master cell covering (row, col)
// from above and extends its rowspan by one. The search walks upward
// through continuation rows, then left across horizontally merged slots
// to the master whose span covers the target column.
func incrementRowspan(grid [][]gridCell, row, col int) {
	for r := row - 1; r >= 0; r-- {
		if col >= len(grid[r]) {
			return
		}
		switch grid[r][col].kind {
		case cellMergedUp:
			continue
		case cellOccupied:
			grid[r][col].rowspan++
			return
		case cellMergedLeft:
			for c := col - 1; c >= 0; c-- {
				if grid[r][c].kind == cellOccupied {
					if c+grid[r][c].colspan > col {
						grid[r][c].rowspan++
					}
					return
				}
			}
			return
		default:
			return
		}
	}
}

// renderGrid serializes a resolved grid as an HTML table. Merged slots
// emit nothing; their master carries the rowspan/colspan attributes.
func renderGrid(grid [][]gridCell) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for _, row := range grid {
		sb.WriteString("  <tr>\n")
		for _, cell := range row {
			switch cell.kind {
			case cellOccupied:
				sb.WriteString("    <td")
				if cell.rowspan > 1 {
					fmt.Fprintf(&sb, " rowspan=\"%d\"", cell.rowspan)
				}
				if cell.colspan > 1 {
					fmt.Fprintf(&sb, " colspan=\"%d\"", cell.colspan)
				}
				sb.WriteString(">")
				sb.WriteString(cell.content)
				sb.WriteString("</td>\n")
			case cellEmpty:
				sb.WriteString("    <td></td>\n")
			}
		}
		sb.WriteString("  </tr>\n")
	}
	sb.WriteString("</table>")
	return sb.String()
}
