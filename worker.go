package gridastar

// RelaxProposal is a candidate improvement of ToNode's best known path,
// arriving from FromNode.
type RelaxProposal struct {
	FromNode *Node
	ToNode   *Node
	GScore   int
}

func proposeRelaxation(current, neighbor *Node) RelaxProposal {
	return RelaxProposal{
		FromNode: current,
		ToNode:   neighbor,
		GScore:   current.gScore + Distance(current, neighbor),
	}
}

// apply relaxes ToNode if the proposal strictly improves its gScore and
// reports whether it did. The heuristic is recomputed toward goal.
func (proposal RelaxProposal) apply(goal *Node) bool {
	if proposal.GScore >= proposal.ToNode.gScore {
		return false
	}
	proposal.ToNode.cameFrom = proposal.FromNode
	proposal.ToNode.setGScore(proposal.GScore)
	proposal.ToNode.setHScore(Distance(proposal.ToNode, goal))
	return true
}
