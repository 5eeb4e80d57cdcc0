package gridastar

import (
	"slices"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridastar/internal"
)

// Result contains the outcome of a search.
type Result struct {
	// Path runs from start to goal inclusive; nil when no path was found.
	Path []*Node
	// Closed lists the nodes expanded by this search, in expansion order.
	Closed        []*Node
	Cost          int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger *zap.Logger
	// MaxExpansions stops the search with ErrExpansionLimit once reached.
	// Zero means unlimited.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger that receives search progress at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExpansions caps how many nodes the search may expand.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// Search runs A* from start to goal and returns once the goal is reached or
// the frontier is exhausted. Diagonal cells are considered only when
// allowDiagonals is set. Search state left by earlier searches is cleared
// first, so results depend only on the obstacle layout.
func (grid *Grid) Search(
	start *Node,
	goal *Node,
	allowDiagonals bool,
	options ...Option,
) (Result, error) {
	run, err := grid.newSearchRun(start, goal, allowDiagonals, options)
	if err != nil {
		return Result{}, err
	}
	for !run.done {
		if err := run.step(); err != nil {
			return run.result(), err
		}
	}
	return run.result(), nil
}

// searchRun is the state of one search. The frontier and closed set belong
// to the run and are never shared between searches.
type searchRun struct {
	grid           *Grid
	start          *Node
	goal           *Node
	allowDiagonals bool
	options        Options

	openSet     *frontier
	closedSet   mapset.Set
	closedOrder []*Node

	current       *Node
	steps         int
	expandedNodes int
	path          []*Node
	done          bool
	found         bool
}

func (grid *Grid) newSearchRun(
	start *Node,
	goal *Node,
	allowDiagonals bool,
	options []Option,
) (*searchRun, error) {
	// --- Validate endpoints ---
	if err := grid.checkEndpoint("start", start); err != nil {
		return nil, err
	}
	if err := grid.checkEndpoint("goal", goal); err != nil {
		return nil, err
	}

	// --- Apply options ---
	searchOptions := Options{Logger: zap.NewNop()}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = zap.NewNop()
	}

	// --- Initialize state ---
	grid.ResetGrid()
	start.setGScore(0)
	start.setHScore(Distance(start, goal))

	run := &searchRun{
		grid:           grid,
		start:          start,
		goal:           goal,
		allowDiagonals: allowDiagonals,
		options:        searchOptions,
		openSet:        newFrontier(),
		closedSet:      mapset.NewThreadUnsafeSet(),
	}
	run.options.Logger.Debug("search started",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("diagonals", allowDiagonals))

	if start == goal {
		run.finish(start)
		return run, nil
	}
	run.openSet.push(start)
	return run, nil
}

func (grid *Grid) checkEndpoint(name string, endpoint *Node) error {
	if endpoint == nil {
		return errors.Wrapf(ErrMissingEndpoint, "%s not set", name)
	}
	if !grid.Contains(endpoint) {
		return errors.Wrapf(ErrForeignNode, "%s %v", name, endpoint)
	}
	if endpoint.obstacle {
		return errors.Wrapf(ErrObstacleEndpoint, "%s %v", name, endpoint)
	}
	return nil
}

// step expands at most one node.
func (run *searchRun) step() error {
	if run.done {
		return nil
	}
	if run.openSet.Len() == 0 {
		run.done = true
		run.options.Logger.Debug("no path found", zap.Int("expanded", run.expandedNodes))
		return nil
	}

	run.steps++
	current := run.openSet.pop()
	run.current = current

	// Goal check
	if current == run.goal {
		run.finish(current)
		return nil
	}

	// The goal pop is not an expansion.
	if run.options.MaxExpansions > 0 && run.expandedNodes >= run.options.MaxExpansions {
		run.done = true
		return errors.Wrapf(ErrExpansionLimit, "after %d expansions", run.expandedNodes)
	}

	run.closedSet.Add(current.index)
	run.closedOrder = append(run.closedOrder, current)
	run.expandedNodes++

	for _, neighbor := range current.neighbors {
		run.relax(current, neighbor)
	}
	if run.allowDiagonals {
		for _, diagonal := range run.grid.diagonalsOf(current) {
			run.relax(current, diagonal)
		}
	}
	return nil
}

func (run *searchRun) relax(current, candidate *Node) {
	if run.closedSet.Contains(candidate.index) || candidate.obstacle {
		return
	}
	if proposeRelaxation(current, candidate).apply(run.goal) {
		run.openSet.push(candidate)
	}
}

func (run *searchRun) finish(goal *Node) {
	run.current = goal
	run.path = reconstructPath(goal, len(run.grid.nodes))
	run.done = true
	run.found = true
	run.options.Logger.Debug("path found",
		zap.Int("length", len(run.path)),
		zap.Int("cost", goal.gScore),
		zap.Int("expanded", run.expandedNodes))
}

func (run *searchRun) result() Result {
	result := Result{
		Closed:        slices.Clone(run.closedOrder),
		ExpandedNodes: run.expandedNodes,
		Found:         run.found,
	}
	if run.found {
		result.Path = slices.Clone(run.path)
		result.Cost = run.goal.gScore
	}
	return result
}

// reconstructPath walks cameFrom links back from goal. No path on a grid can
// hold more nodes than the grid does, which bounds a corrupted chain.
func reconstructPath(goal *Node, maxLength int) []*Node {
	return internal.Backtrack(goal, func(node *Node) (*Node, bool) {
		return node.cameFrom, node.cameFrom != nil
	}, maxLength)
}
