package gridastar

import "slices"

// Snapshot exposes the per-iteration state of the search.
type Snapshot struct {
	Current   *Node
	Open      []*Node
	Closed    []*Node
	Done      bool
	Found     bool
	Path      []*Node
	StepIndex int
}

// Stepper advances a search one expansion at a time, for trace
// visualisation. It runs exactly the algorithm Search does.
type Stepper struct {
	run *searchRun
	err error
}

// NewStepper prepares a search with the same preconditions as Search.
// Nothing is expanded until the first Step.
func (grid *Grid) NewStepper(
	start *Node,
	goal *Node,
	allowDiagonals bool,
	options ...Option,
) (*Stepper, error) {
	run, err := grid.newSearchRun(start, goal, allowDiagonals, options)
	if err != nil {
		return nil, err
	}
	return &Stepper{run: run}, nil
}

// Step expands the next node and returns a snapshot. Once the search is
// done, Step keeps returning the final snapshot.
func (s *Stepper) Step() (Snapshot, error) {
	if s.err != nil {
		return s.snapshot(), s.err
	}
	if err := s.run.step(); err != nil {
		s.err = err
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.run.done }

// Result returns the search outcome once Done.
func (s *Stepper) Result() (Result, bool) {
	if !s.run.done {
		return Result{}, false
	}
	return s.run.result(), true
}

func (s *Stepper) snapshot() Snapshot {
	snapshot := Snapshot{
		Current:   s.run.current,
		Open:      s.run.openSet.nodes(),
		Closed:    slices.Clone(s.run.closedOrder),
		Done:      s.run.done,
		Found:     s.run.found,
		StepIndex: s.run.steps,
	}
	if s.run.found {
		snapshot.Path = slices.Clone(s.run.path)
	}
	return snapshot
}
