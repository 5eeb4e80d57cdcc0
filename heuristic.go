package gridastar

import "math"

// CostScale turns Euclidean distances into integer costs.
const CostScale = 10

// Distance is the straight-line distance between two nodes, scaled by
// CostScale and rounded to the nearest integer. It is both the heuristic
// estimate and the edge cost, so one orthogonal step costs 10 and one
// diagonal step costs 14.
func Distance(a, b *Node) int {
	xDiff := float64(a.point.X - b.point.X)
	yDiff := float64(a.point.Y - b.point.Y)
	return int(math.Round(math.Hypot(xDiff, yDiff) * CostScale))
}
