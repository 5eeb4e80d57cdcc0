package gridastar

import (
	"fmt"
	"math"
	"slices"
)

// Infinity is the gScore of a node that no search has reached.
const Infinity = math.MaxInt

// Point is a cell coordinate on a grid.
type Point struct {
	X int
	Y int
}

// Node is a single grid cell.
// Nodes are owned by their Grid; callers only ever hold pointers into the
// grid's arena, and a node's coordinates never change after construction.
type Node struct {
	point Point
	// index is the node's position in the arena and its identity for
	// frontier and closed set membership.
	index int

	gScore int
	hScore int
	fScore int

	// cameFrom is a traversal link only, never an ownership relation.
	cameFrom *Node
	obstacle bool

	// neighbors holds orthogonal adjacency and is append-only.
	neighbors []*Node
}

func (node *Node) init(x, y, index int) {
	node.point = Point{X: x, Y: y}
	node.index = index
	node.resetSearchState()
}

// X returns the node's column.
func (node *Node) X() int { return node.point.X }

// Y returns the node's row.
func (node *Node) Y() int { return node.point.Y }

// Point returns the node's coordinates.
func (node *Node) Point() Point { return node.point }

// GScore is the best known cost from the start of the last search.
func (node *Node) GScore() int { return node.gScore }

// HScore is the heuristic estimate to the goal of the last search.
func (node *Node) HScore() int { return node.hScore }

// FScore is GScore + HScore, or Infinity while GScore is Infinity.
func (node *Node) FScore() int { return node.fScore }

// CameFrom returns the predecessor on the best known path, or nil.
func (node *Node) CameFrom() *Node { return node.cameFrom }

// IsObstacle reports whether the cell is blocked. See Grid.SetObstacle.
func (node *Node) IsObstacle() bool { return node.obstacle }

// Neighbors returns a copy of the node's orthogonal adjacency.
func (node *Node) Neighbors() []*Node { return slices.Clone(node.neighbors) }

// IsNeighbor reports whether other is orthogonally adjacent to node.
func (node *Node) IsNeighbor(other *Node) bool {
	return slices.Contains(node.neighbors, other)
}

func (node *Node) String() string {
	return fmt.Sprintf("(%d,%d)", node.point.X, node.point.Y)
}

func (node *Node) addNeighbor(other *Node) {
	node.neighbors = append(node.neighbors, other)
}

func (node *Node) setGScore(gScore int) {
	node.gScore = gScore
	node.updateFScore()
}

func (node *Node) setHScore(hScore int) {
	node.hScore = hScore
	node.updateFScore()
}

func (node *Node) updateFScore() {
	if node.gScore == Infinity {
		node.fScore = Infinity
		return
	}
	node.fScore = node.gScore + node.hScore
}

func (node *Node) resetSearchState() {
	node.gScore = Infinity
	node.hScore = 0
	node.cameFrom = nil
	node.updateFScore()
}

func (node *Node) hasSearchState() bool {
	return node.gScore != Infinity || node.hScore != 0 || node.cameFrom != nil
}
