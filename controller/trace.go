package controller

import (
	"github.com/pdrpinto/gridastar"
)

// Trace steps a search under the controller's lock, one expansion per call.
// When the search finishes its outcome becomes the session's last result,
// exactly as if Search had been called.
type Trace struct {
	controller *Controller
	stepper    *gridastar.Stepper
	generation int
	recorded   bool
}

// NewTrace starts a stepped search between the session's start and goal.
func (c *Controller) NewTrace() (*Trace, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := c.checkSessionEndpoints(); err != nil {
		return nil, err
	}

	c.generation++
	c.path = nil
	c.closedNodes = nil
	stepper, err := c.grid.NewStepper(c.start, c.goal, c.allowDiagonals, gridastar.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	return &Trace{controller: c, stepper: stepper, generation: c.generation}, nil
}

// Step advances the traced search. It fails with ErrTraceInvalidated once
// another search, reset or clear has rewritten the grid's search state.
func (trace *Trace) Step() (gridastar.Snapshot, error) {
	c := trace.controller
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.generation != trace.generation {
		return gridastar.Snapshot{}, ErrTraceInvalidated
	}

	snapshot, err := trace.stepper.Step()
	if err != nil {
		return snapshot, err
	}
	if snapshot.Done && !trace.recorded {
		trace.recorded = true
		if result, ok := trace.stepper.Result(); ok {
			c.record(result)
		}
	}
	return snapshot, nil
}
