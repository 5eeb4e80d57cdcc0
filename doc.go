// Package gridastar provides A* pathfinding over a fixed-size 2-D grid.
//
// A Grid owns every Node in one flat arena and links orthogonal neighbors at
// construction. Cells can be flagged as obstacles, and diagonal moves are
// evaluated on demand when a search asks for them.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Costs are integers: the Euclidean distance between cells scaled by
// CostScale and rounded, used both as the heuristic and as the edge cost.
// A search that cannot reach its goal is not an error; Result.Found is false.
// Missing or blocked endpoints are reported as errors.
package gridastar
