package core

import (
	"fmt"
	"strings"
)

// ASCII markers used by RenderASCII.
const (
	ASCIIWater = '~'
	ASCIIMiss  = 'o'
	ASCIIHit   = 'X'
)

// RenderASCII draws the grid as plain text.
// The first line holds column letters; each following line starts with the
// 1-based row number. Unshot ship cells show their initial only when reveal
// is set, otherwise they look like water.
func RenderASCII(g *Grid, reveal bool) string {
	var sb strings.Builder
	labelW := len(fmt.Sprint(g.Rows))

	sb.WriteString(strings.Repeat(" ", labelW))
	for c := 0; c < g.Cols; c++ {
		sb.WriteByte(' ')
		sb.WriteString(ColumnLabel(c))
	}

	for r := 0; r < g.Rows; r++ {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%*d", labelW, r+1)
		for c := 0; c < g.Cols; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(cellRune(g.Get(C(r, c)), reveal))
		}
	}
	return sb.String()
}

func cellRune(cell Cell, reveal bool) rune {
	switch {
	case cell.IsHit:
		return ASCIIHit
	case cell.IsMissed:
		return ASCIIMiss
	case cell.Occupied && reveal:
		return cell.Ship.Initial()
	default:
		return ASCIIWater
	}
}

// ColumnLabel returns the header label for a column: "A".."Z", then
// 1-based numbers for wider boards.
func ColumnLabel(col int) string {
	if col < 26 {
		return string(rune('A' + col))
	}
	return fmt.Sprint(col + 1)
}
