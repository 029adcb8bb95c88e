package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

A live cell with fewer than two or more than three live neighbors dies, a live cell with two or
three survives, and a dead cell with exactly three comes alive.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState is ApplyConwayRules over the 0/1 cell encoding used by the grid buffer.
func NextState(neighbors int, cell uint8) uint8 {
	if ApplyConwayRules(neighbors, cell == 1) {
		return 1
	}
	return 0
}
