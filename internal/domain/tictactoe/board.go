package tictactoe

import (
	"fmt"
	"strings"

	errs "infinite_ttt/internal/errors"
)

const BoardCells = 9

type Board [BoardCells]Mark

// Lines are checked in this order: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func ParseBoard(cells []string) (Board, error) {
	var b Board
	if len(cells) != BoardCells {
		return b, fmt.Errorf("%w: expected %d cells, got %d", errs.ErrInvalidBoard, BoardCells, len(cells))
	}
	for i, c := range cells {
		m, err := ParseMark(c)
		if err != nil {
			return b, fmt.Errorf("cell %d: %w", i, err)
		}
		b[i] = m
	}
	return b, nil
}

func (b Board) Strings() []string {
	out := make([]string, BoardCells)
	for i, m := range b {
		out[i] = string(m)
	}
	return out
}

func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}

func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardCells)
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Winner reports the first completed line, if any.
func (b Board) Winner() (Mark, [3]int, bool) {
	for _, line := range Lines {
		m := b[line[0]]
		if m != Empty && b[line[1]] == m && b[line[2]] == m {
			return m, line, true
		}
	}
	return Empty, [3]int{}, false
}

func (b Board) Outcome() Outcome {
	w, _, ok := b.Winner()
	if !ok {
		return InProgress
	}
	if w == X {
		return XWins
	}
	return OWins
}

// String renders the board as nine characters, '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardCells)
	for _, c := range b {
		if c == Empty {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(string(c))
	}
	return sb.String()
}
