package gridastar

import (
	"iter"

	"github.com/pkg/errors"
)

// Grid is a fixed-size 2-D arena of nodes with orthogonal adjacency.
// A Grid is not safe for concurrent use; callers that share one must
// serialize access themselves.
type Grid struct {
	width  int
	height int
	nodes  []Node
}

var diagonalOffsets = [...]Point{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1}}

// NewGrid allocates a width x height grid. Each node is linked to its left
// and top neighbor, and they back to it, as it is created.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}

	grid := &Grid{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			node := grid.at(x, y)
			node.init(x, y, grid.indexOf(x, y))

			if x != 0 {
				left := grid.at(x-1, y)
				node.addNeighbor(left)
				left.addNeighbor(node)
			}
			if y != 0 {
				top := grid.at(x, y-1)
				node.addNeighbor(top)
				top.addNeighbor(node)
			}
		}
	}
	return grid, nil
}

// Width and Height return the grid's dimensions in cells.
func (grid *Grid) Width() int  { return grid.width }
func (grid *Grid) Height() int { return grid.height }

// GetNode returns the node at (x, y).
func (grid *Grid) GetNode(x, y int) (*Node, error) {
	if !grid.inBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfRange, "(%d,%d) on %dx%d grid", x, y, grid.width, grid.height)
	}
	return grid.at(x, y), nil
}

// Contains reports whether node lives in this grid's arena.
func (grid *Grid) Contains(node *Node) bool {
	if node == nil || node.index < 0 || node.index >= len(grid.nodes) {
		return false
	}
	return &grid.nodes[node.index] == node
}

// SetObstacle flags or unflags node as an obstacle. Search state is left as is.
func (grid *Grid) SetObstacle(node *Node, obstacle bool) error {
	if err := grid.checkOwned(node); err != nil {
		return err
	}
	node.obstacle = obstacle
	return nil
}

type resetOptions struct {
	clearObstacle bool
}

// ResetOption widens what a reset restores.
type ResetOption func(*resetOptions)

// ClearObstacle makes a reset also drop obstacle flags.
func ClearObstacle() ResetOption {
	return func(options *resetOptions) { options.clearObstacle = true }
}

// ResetNode restores node to its unsearched state. Adjacency is never touched.
func (grid *Grid) ResetNode(node *Node, options ...ResetOption) error {
	if err := grid.checkOwned(node); err != nil {
		return err
	}
	resetWith(node, collectResetOptions(options))
	return nil
}

// ResetGrid restores every node that carries search state, which covers the
// closed set and frontier of the last search.
func (grid *Grid) ResetGrid(options ...ResetOption) {
	resolved := collectResetOptions(options)
	for index := range grid.nodes {
		node := &grid.nodes[index]
		if node.hasSearchState() || (resolved.clearObstacle && node.obstacle) {
			resetWith(node, resolved)
		}
	}
}

// All yields every node in row-major order.
func (grid *Grid) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for index := range grid.nodes {
			if !yield(&grid.nodes[index]) {
				return
			}
		}
	}
}

// Obstacles returns every obstacle node in row-major order.
func (grid *Grid) Obstacles() []*Node {
	var obstacles []*Node
	for node := range grid.All() {
		if node.obstacle {
			obstacles = append(obstacles, node)
		}
	}
	return obstacles
}

// diagonalsOf returns the up to four in-bounds diagonal cells around node.
func (grid *Grid) diagonalsOf(node *Node) []*Node {
	diagonals := make([]*Node, 0, len(diagonalOffsets))
	for _, offset := range diagonalOffsets {
		x, y := node.point.X+offset.X, node.point.Y+offset.Y
		if grid.inBounds(x, y) {
			diagonals = append(diagonals, grid.at(x, y))
		}
	}
	return diagonals
}

// inBounds uses strict upper bounds; x == width is already off the grid.
func (grid *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < grid.width && y >= 0 && y < grid.height
}

func (grid *Grid) indexOf(x, y int) int { return y*grid.width + x }

func (grid *Grid) at(x, y int) *Node { return &grid.nodes[grid.indexOf(x, y)] }

func (grid *Grid) checkOwned(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if !grid.Contains(node) {
		return errors.Wrapf(ErrForeignNode, "node %v", node)
	}
	return nil
}

func collectResetOptions(options []ResetOption) resetOptions {
	var resolved resetOptions
	for _, option := range options {
		option(&resolved)
	}
	return resolved
}

func resetWith(node *Node, options resetOptions) {
	node.resetSearchState()
	if options.clearObstacle {
		node.obstacle = false
	}
}
