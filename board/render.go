package board

import (
	"bufio"
	"io"
	"unicode"

	"github.com/tonobo/floodsnake/grid"
)

var snakeIDList = []rune("abcdefghjkl")

// Render writes the board as text, one row per line: '.' empty, '*' food,
// 'M'/'m' the player's head/body and 'A'/'a', 'B'/'b'... the enemies. Cells in
// highlight that are otherwise empty print as 'o'.
func (b *Board) Render(w io.Writer, highlight ...grid.Point) error {
	cells := make([][]rune, b.Height)
	for y := range cells {
		cells[y] = make([]rune, b.Width)
		for x := range cells[y] {
			cells[y][x] = '.'
		}
	}
	set := func(p grid.Point, r rune) {
		if !b.IsOutside(p) {
			cells[p.Y][p.X] = r
		}
	}
	for _, p := range highlight {
		set(p, 'o')
	}
	for _, p := range b.Food {
		set(p, '*')
	}
	paint := func(s *Snake, r rune) {
		// tail first so that stacked segments keep the head visible
		for i := len(s.Body) - 1; i >= 0; i-- {
			set(s.Body[i], r)
		}
		set(s.Head, unicode.ToUpper(r))
	}
	for i, enemy := range b.Enemies {
		paint(enemy, snakeIDList[i%len(snakeIDList)])
	}
	paint(b.Player, 'm')

	bw := bufio.NewWriter(w)
	for _, row := range cells {
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
