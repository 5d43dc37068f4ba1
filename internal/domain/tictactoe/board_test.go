package tictactoe

import (
	"errors"
	"testing"

	errs "infinite_ttt/internal/errors"
)

func TestWinnerDetectsEveryLine(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for _, line := range Lines {
			var b Board
			for _, idx := range line {
				b[idx] = mark
			}
			got, gotLine, ok := b.Winner()
			if !ok {
				t.Fatalf("line %v of %s not detected", line, mark)
			}
			if got != mark || gotLine != line {
				t.Fatalf("expected %s on %v, got %s on %v", mark, line, got, gotLine)
			}
		}
	}
}

func TestWinnerIgnoresMixedLines(t *testing.T) {
	b := Board{
		X, O, X,
		X, O, O,
		O, X, Empty,
	}
	if _, _, ok := b.Winner(); ok {
		t.Fatalf("expected no winner on %s", b)
	}
	if b.Outcome() != InProgress {
		t.Fatalf("expected in progress, got %s", b.Outcome())
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{"row X", Board{X, X, X, O, O, Empty, Empty, Empty, Empty}, XWins},
		{"column O", Board{X, O, Empty, X, O, Empty, Empty, O, Empty}, OWins},
		{"anti diagonal O", Board{X, X, O, Empty, O, Empty, O, Empty, X}, OWins},
		{"empty", Board{}, InProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Outcome(); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard([]string{"X", "", "O", "", "", "", "", "", ""})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if b.String() != "X.O......" {
		t.Fatalf("unexpected board %s", b)
	}

	if _, err := ParseBoard([]string{"X"}); !errors.Is(err, errs.ErrInvalidBoard) {
		t.Fatalf("expected ErrInvalidBoard for short board, got %v", err)
	}
	if _, err := ParseBoard([]string{"x", "", "", "", "", "", "", "", ""}); !errors.Is(err, errs.ErrInvalidBoard) {
		t.Fatalf("expected ErrInvalidBoard for lowercase mark, got %v", err)
	}
}

func TestEmptyCellsAscending(t *testing.T) {
	b := Board{X, Empty, O, Empty, Empty, X, O, Empty, Empty}
	got := b.EmptyCells()
	want := []int{1, 3, 4, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
