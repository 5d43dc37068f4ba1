package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	errs "infinite_ttt/internal/errors"
)

// QueueCap is the number of live marks a side may hold.
const QueueCap = 3

// MoveQueue holds a side's live marks, oldest first. It is a plain value:
// copies never share storage.
type MoveQueue struct {
	cells [QueueCap]int
	n     int
}

func NewMoveQueue(indices []int) (MoveQueue, error) {
	var q MoveQueue
	if len(indices) > QueueCap {
		return q, fmt.Errorf("%w: %d entries, at most %d allowed", errs.ErrInvalidQueue, len(indices), QueueCap)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= BoardCells {
			return q, fmt.Errorf("%w: index %d out of range", errs.ErrInvalidQueue, idx)
		}
		if q.Contains(idx) {
			return q, fmt.Errorf("%w: index %d repeated", errs.ErrInvalidQueue, idx)
		}
		q.cells[q.n] = idx
		q.n++
	}
	return q, nil
}

func (q MoveQueue) Len() int { return q.n }

func (q MoveQueue) Full() bool { return q.n == QueueCap }

// Oldest returns the mark that would be evicted next, or -1 for an empty queue.
func (q MoveQueue) Oldest() int {
	if q.n == 0 {
		return -1
	}
	return q.cells[0]
}

func (q MoveQueue) Contains(idx int) bool {
	for i := 0; i < q.n; i++ {
		if q.cells[i] == idx {
			return true
		}
	}
	return false
}

func (q MoveQueue) Slice() []int {
	out := make([]int, q.n)
	copy(out, q.cells[:q.n])
	return out
}

// Push appends idx and returns the evicted index, or -1 when nothing was evicted.
func (q *MoveQueue) Push(idx int) int {
	evicted := -1
	if q.n == QueueCap {
		evicted = q.cells[0]
		copy(q.cells[:], q.cells[1:])
		q.n--
	}
	q.cells[q.n] = idx
	q.n++
	return evicted
}

func (q MoveQueue) String() string {
	parts := make([]string, q.n)
	for i := 0; i < q.n; i++ {
		parts[i] = strconv.Itoa(q.cells[i])
	}
	return strings.Join(parts, ",")
}
