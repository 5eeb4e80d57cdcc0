package gridastar

func mustGrid(width, height int) *Grid {
	grid, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return grid
}

func mustNode(grid *Grid, x, y int) *Node {
	node, err := grid.GetNode(x, y)
	if err != nil {
		panic(err)
	}
	return node
}

func mustBlock(grid *Grid, cells ...Point) {
	for _, cell := range cells {
		if err := grid.SetObstacle(mustNode(grid, cell.X, cell.Y), true); err != nil {
			panic(err)
		}
	}
}

func points(nodes []*Node) []Point {
	if nodes == nil {
		return nil
	}
	out := make([]Point, len(nodes))
	for i, node := range nodes {
		out[i] = node.Point()
	}
	return out
}

// stepsAreAdjacent reports whether every consecutive pair in path is one
// orthogonal step apart, or one diagonal step when diagonals are allowed.
func stepsAreAdjacent(path []*Node, diagonals bool) bool {
	for i := 1; i < len(path); i++ {
		previous, next := path[i-1], path[i]
		if previous.IsNeighbor(next) {
			continue
		}
		dx, dy := next.X()-previous.X(), next.Y()-previous.Y()
		if diagonals && (dx == 1 || dx == -1) && (dy == 1 || dy == -1) {
			continue
		}
		return false
	}
	return true
}
