package tictactoe

import (
	"errors"
	"testing"

	errs "infinite_ttt/internal/errors"
)

func mustState(t *testing.T, cells []string, xq, oq []int, side string) GameState {
	t.Helper()
	s, err := FromSnapshot(cells, xq, oq, side)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	return s
}

func TestPlayEvictsOldestWhenQueueFull(t *testing.T) {
	s := mustState(t,
		[]string{"X", "O", "X", "", "O", "", "X", "", ""},
		[]int{0, 2, 6}, []int{4, 1}, "X")

	if got := s.NextEviction(); got != 0 {
		t.Fatalf("expected eviction of 0, got %d", got)
	}

	next, err := s.Play(8)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if next.Board[0] != Empty {
		t.Fatalf("oldest X mark was not removed: %s", next.Board)
	}
	if next.Board[8] != X {
		t.Fatalf("new mark missing: %s", next.Board)
	}
	if got := next.XQueue.Slice(); len(got) != 3 || got[0] != 2 || got[1] != 6 || got[2] != 8 {
		t.Fatalf("unexpected queue %v", got)
	}
	if next.SideToMove != O {
		t.Fatalf("expected O to move, got %s", next.SideToMove)
	}
	if s.Board[0] != X || s.XQueue.Len() != 3 || s.XQueue.Oldest() != 0 {
		t.Fatalf("receiver was mutated: %s %v", s.Board, s.XQueue.Slice())
	}
}

func TestPlayWithoutEviction(t *testing.T) {
	s := mustState(t, []string{"X", "", "", "", "", "", "", "", ""}, []int{0}, nil, "O")
	if s.NextEviction() != -1 {
		t.Fatalf("expected no eviction")
	}
	next, err := s.Play(4)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if next.Board[4] != O || next.OQueue.Len() != 1 || next.Board.Count(X) != 1 {
		t.Fatalf("unexpected state %s", next.Board)
	}
}

func TestPlayRejectsIllegalCells(t *testing.T) {
	s := mustState(t, []string{"X", "", "", "", "", "", "", "", ""}, []int{0}, nil, "O")
	for _, idx := range []int{0, -1, 9} {
		if _, err := s.Play(idx); !errors.Is(err, errs.ErrIllegalMove) {
			t.Fatalf("expected ErrIllegalMove for %d, got %v", idx, err)
		}
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	moves := []int{4, 0, 8, 2, 1, 7, 6, 3, 5, 0, 2}

	s := NewGame()
	for _, m := range moves {
		var err error
		if s, err = s.Play(m); err != nil {
			t.Fatalf("play %d: %v", m, err)
		}
	}

	// Replay the same moves by hand with plain slices.
	var board Board
	queues := map[Mark][]int{}
	side := X
	for _, m := range moves {
		q := queues[side]
		if len(q) == QueueCap {
			board[q[0]] = Empty
			q = q[1:]
		}
		queues[side] = append(append([]int{}, q...), m)
		board[m] = side
		side = side.Opponent()
	}

	if s.Board != board {
		t.Fatalf("boards differ: %s vs %s", s.Board, board)
	}
	if s.XQueue.String() != (mustQueue(t, queues[X])).String() || s.OQueue.String() != (mustQueue(t, queues[O])).String() {
		t.Fatalf("queues differ: %s/%s vs %v/%v", s.XQueue, s.OQueue, queues[X], queues[O])
	}
	if s.SideToMove != side {
		t.Fatalf("expected %s to move, got %s", side, s.SideToMove)
	}
	if s.Board.Count(X) != s.XQueue.Len() || s.Board.Count(O) != s.OQueue.Len() {
		t.Fatalf("queue/board counts diverged: %s", s.Board)
	}
}

func mustQueue(t *testing.T, idx []int) MoveQueue {
	t.Helper()
	q, err := NewMoveQueue(idx)
	if err != nil {
		t.Fatalf("NewMoveQueue: %v", err)
	}
	return q
}

func TestFromSnapshotValidation(t *testing.T) {
	empty := []string{"", "", "", "", "", "", "", "", ""}
	tests := []struct {
		name   string
		cells  []string
		xq, oq []int
		side   string
		want   error
	}{
		{"short board", []string{"", ""}, nil, nil, "", errs.ErrInvalidBoard},
		{"unknown mark", []string{"Z", "", "", "", "", "", "", "", ""}, nil, nil, "", errs.ErrInvalidBoard},
		{"queue too long", empty, []int{0, 1, 2, 3}, nil, "", errs.ErrInvalidQueue},
		{"index out of range", empty, []int{9}, nil, "", errs.ErrInvalidQueue},
		{"duplicate index", []string{"X", "", "", "", "", "", "", "", ""}, []int{0, 0}, nil, "", errs.ErrInvalidQueue},
		{"count mismatch", []string{"X", "X", "", "", "", "", "", "", ""}, []int{0}, nil, "", errs.ErrInvalidQueue},
		{"queued cell holds other mark", []string{"O", "", "", "", "X", "", "", "", ""}, []int{0}, []int{4}, "", errs.ErrInvalidQueue},
		{"bad side", empty, nil, nil, "Z", errs.ErrInvalidSide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSnapshot(tt.cells, tt.xq, tt.oq, tt.side)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFromSnapshotDefaultsToO(t *testing.T) {
	s := mustState(t, []string{"", "", "", "", "", "", "", "", ""}, nil, nil, "")
	if s.SideToMove != O {
		t.Fatalf("expected O, got %s", s.SideToMove)
	}
}

func TestMoveQueuePush(t *testing.T) {
	q := mustQueue(t, []int{1, 2})
	if ev := q.Push(3); ev != -1 {
		t.Fatalf("unexpected eviction %d", ev)
	}
	if ev := q.Push(4); ev != 1 {
		t.Fatalf("expected eviction of 1, got %d", ev)
	}
	if q.Len() != QueueCap || q.String() != "2,3,4" {
		t.Fatalf("unexpected queue %s", q)
	}
	c := q
	c.Push(5)
	if q.String() != "2,3,4" {
		t.Fatalf("copy shares storage: %s", q)
	}
}
