package rules

/*
IsAlive applies Conway's Game of Life rule to a single cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with
exactly 3, every other cell is dead in the next generation.
*/
func IsAlive(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
