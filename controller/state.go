package controller

import (
	"github.com/pdrpinto/gridastar"
)

// State is a consistent read-back of the session for drawing.
type State struct {
	Width     int
	Height    int
	Diagonals bool
	Obstacles []gridastar.Point
	Start     *gridastar.Point
	Goal      *gridastar.Point
	Path      []gridastar.Point
	Closed    []gridastar.Point
}

func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return State{
		Width:     c.grid.Width(),
		Height:    c.grid.Height(),
		Diagonals: c.allowDiagonals,
		Obstacles: Points(c.grid.Obstacles()),
		Start:     pointOf(c.start),
		Goal:      pointOf(c.goal),
		Path:      Points(c.path),
		Closed:    Points(c.closedNodes),
	}
}

// Points maps nodes to their coordinates.
func Points(nodes []*gridastar.Node) []gridastar.Point {
	if nodes == nil {
		return nil
	}
	points := make([]gridastar.Point, len(nodes))
	for i, node := range nodes {
		points[i] = node.Point()
	}
	return points
}

func pointOf(node *gridastar.Node) *gridastar.Point {
	if node == nil {
		return nil
	}
	point := node.Point()
	return &point
}
