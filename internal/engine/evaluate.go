package engine

import "infinite_ttt/internal/domain/tictactoe"

func (s *search) leaf(state tictactoe.GameState) int {
	if !s.heuristic {
		return 0
	}
	return openTwos(state.Board, s.maximizer)
}

// openTwos compares lines holding two of a side's marks and an empty cell.
// The result stays within [-1, 1] so it never outranks a found win (the
// slowest win inside MaxSearchDepth still scores 2).
func openTwos(b tictactoe.Board, side tictactoe.Mark) int {
	diff := 0
	for _, line := range tictactoe.Lines {
		var own, opp, empty int
		for _, idx := range line {
			switch b[idx] {
			case side:
				own++
			case tictactoe.Empty:
				empty++
			default:
				opp++
			}
		}
		if empty != 1 {
			continue
		}
		if own == 2 {
			diff++
		} else if opp == 2 {
			diff--
		}
	}
	return max(-1, min(1, diff))
}
