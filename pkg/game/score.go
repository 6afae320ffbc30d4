package game

import "fmt"

var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore returns the points awarded for clearing lines rows with a single
// lock. A piece spans at most four rows, so more is a broken invariant.
func LineScore(lines int) int {
	if lines < 0 || lines >= len(lineScores) {
		panic(fmt.Sprintf("game: cannot score %d lines in one lock", lines))
	}

	return lineScores[lines]
}
