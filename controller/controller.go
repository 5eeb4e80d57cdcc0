// Package controller holds the session state around one grid: the chosen
// start and goal, and the outcome of the last search. Every method is
// serialized, so a Controller may be shared by concurrent request handlers.
package controller

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridastar"
)

var (
	ErrStartNotSet = errors.Wrap(gridastar.ErrMissingEndpoint, "start not set")
	ErrGoalNotSet  = errors.Wrap(gridastar.ErrMissingEndpoint, "goal not set")
	// ErrEndpointCell rejects turning the start or goal cell into an obstacle.
	ErrEndpointCell = errors.New("cell is the start or goal")
	// ErrTraceInvalidated is returned by a trace whose grid state was
	// replaced by a later search, reset or clear.
	ErrTraceInvalidated = errors.New("trace invalidated by a newer grid operation")
)

// Options configures a Controller.
type Options struct {
	Logger    *zap.Logger
	Diagonals bool
}

type Option func(*Options)

func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithDiagonals sets whether searches may move diagonally.
func WithDiagonals(allowDiagonals bool) Option {
	return func(options *Options) { options.Diagonals = allowDiagonals }
}

// Controller is one editing session over a grid.
type Controller struct {
	mutex  sync.Mutex
	grid   *gridastar.Grid
	logger *zap.Logger

	allowDiagonals bool
	start          *gridastar.Node
	goal           *gridastar.Node

	path        []*gridastar.Node
	closedNodes []*gridastar.Node
	// generation changes whenever node search state is rewritten.
	generation int
}

// New starts a session on grid with no endpoints set.
func New(grid *gridastar.Grid, options ...Option) *Controller {
	controllerOptions := Options{Logger: zap.NewNop()}
	for _, option := range options {
		option(&controllerOptions)
	}
	if controllerOptions.Logger == nil {
		controllerOptions.Logger = zap.NewNop()
	}
	return &Controller{
		grid:           grid,
		logger:         controllerOptions.Logger,
		allowDiagonals: controllerOptions.Diagonals,
	}
}

// Apply performs action on the cell at (x, y).
func (c *Controller) Apply(action Action, x, y int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	node, err := c.grid.GetNode(x, y)
	if err != nil {
		return err
	}

	switch action {
	case PlaceStart:
		err = c.setStart(node)
	case PlaceGoal:
		err = c.setGoal(node)
	case PlaceObstacle:
		if node == c.start || node == c.goal {
			err = errors.Wrapf(ErrEndpointCell, "node %v", node)
			break
		}
		err = c.grid.SetObstacle(node, true)
	case Remove:
		if node == c.start {
			c.start = nil
		}
		if node == c.goal {
			c.goal = nil
		}
		err = c.grid.ResetNode(node, gridastar.ClearObstacle())
	default:
		err = errors.Wrapf(ErrUnknownAction, "%d", int(action))
	}

	if err != nil {
		c.logger.Debug("grid action rejected", zap.Stringer("action", action), zap.Stringer("node", node), zap.Error(err))
		return err
	}
	// Any edit outdates the recorded result and running traces.
	c.forgetSearch()
	c.logger.Debug("grid action applied", zap.Stringer("action", action), zap.Stringer("node", node))
	return nil
}

func (c *Controller) SetStart(node *gridastar.Node) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.setStart(node); err != nil {
		return err
	}
	c.forgetSearch()
	return nil
}

func (c *Controller) SetGoal(node *gridastar.Node) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if err := c.setGoal(node); err != nil {
		return err
	}
	c.forgetSearch()
	return nil
}

func (c *Controller) setStart(node *gridastar.Node) error {
	if err := c.checkEndpoint(node); err != nil {
		return err
	}
	c.start = node
	return nil
}

func (c *Controller) setGoal(node *gridastar.Node) error {
	if err := c.checkEndpoint(node); err != nil {
		return err
	}
	c.goal = node
	return nil
}

func (c *Controller) checkEndpoint(node *gridastar.Node) error {
	if node == nil {
		return gridastar.ErrNilNode
	}
	if !c.grid.Contains(node) {
		return errors.Wrapf(gridastar.ErrForeignNode, "node %v", node)
	}
	if node.IsObstacle() {
		return errors.Wrapf(gridastar.ErrObstacleEndpoint, "node %v", node)
	}
	return nil
}

func (c *Controller) Start() *gridastar.Node {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.start
}

func (c *Controller) Goal() *gridastar.Node {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.goal
}

func (c *Controller) SetDiagonals(allowDiagonals bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.allowDiagonals = allowDiagonals
}

func (c *Controller) Diagonals() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.allowDiagonals
}

// Search runs A* between the session's start and goal. A missing endpoint
// returns ErrStartNotSet or ErrGoalNotSet; an unreachable goal returns a
// Result with Found unset and no error.
func (c *Controller) Search() (gridastar.Result, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkSessionEndpoints(); err != nil {
		return gridastar.Result{}, err
	}

	c.generation++
	result, err := c.grid.Search(c.start, c.goal, c.allowDiagonals, gridastar.WithLogger(c.logger))
	if err != nil {
		c.logger.Warn("search failed", zap.Error(err))
		return result, err
	}
	c.record(result)
	return result, nil
}

func (c *Controller) checkSessionEndpoints() error {
	if c.start == nil {
		return ErrStartNotSet
	}
	if c.goal == nil {
		return ErrGoalNotSet
	}
	return nil
}

func (c *Controller) record(result gridastar.Result) {
	c.path = result.Path
	c.closedNodes = result.Closed
	c.logger.Info("search finished",
		zap.Bool("found", result.Found),
		zap.Int("length", len(result.Path)),
		zap.Int("cost", result.Cost),
		zap.Int("expanded", result.ExpandedNodes))
}

// Path returns the last search's path, or nil if it found none.
func (c *Controller) Path() []*gridastar.Node {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.path
}

// ClosedNodes returns the nodes the last search expanded.
func (c *Controller) ClosedNodes() []*gridastar.Node {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.closedNodes
}

// Reset clears the last search's trace. Obstacles, start and goal stay.
func (c *Controller) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.grid.ResetGrid()
	c.forgetSearch()
	c.logger.Debug("grid reset")
}

// Clear returns the grid to a blank state: no trace, obstacles or endpoints.
func (c *Controller) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.grid.ResetGrid(gridastar.ClearObstacle())
	c.start = nil
	c.goal = nil
	c.forgetSearch()
	c.logger.Debug("grid cleared")
}

func (c *Controller) forgetSearch() {
	c.path = nil
	c.closedNodes = nil
	c.generation++
}
