package model

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.addPattern(row, col, [][]bool{
		{true, true},
		{true, true},
	})
}

// AddBlinker adds a horizontal 3-cell oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.addPattern(row, col, [][]bool{
		{true, true, true},
	})
}

// AddGlider adds a glider heading down and to the right
func (g *Grid) AddGlider(row, col int) {
	g.addPattern(row, col, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// addPattern copies pattern onto the grid; cells falling off the edge are dropped.
func (g *Grid) addPattern(row, col int, pattern [][]bool) {
	for dr, line := range pattern {
		for dc, alive := range line {
			g.Set(row+dr, col+dc, alive)
		}
	}
}
