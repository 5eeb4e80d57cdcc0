package internal

import "slices"

// Backtrack follows predecessor links from last until it reaches a node with
// no predecessor, then returns the nodes first-to-last. The walk advances a
// local cursor; limit bounds the number of collected nodes when positive.
func Backtrack[NodeType comparable](
	last NodeType,
	predecessor func(NodeType) (NodeType, bool),
	limit int,
) []NodeType {
	path := []NodeType{last}
	cursor := last
	for limit <= 0 || len(path) < limit {
		previousNode, exists := predecessor(cursor)
		if !exists {
			break
		}
		path = append(path, previousNode)
		cursor = previousNode
	}

	slices.Reverse(path)
	return path
}
