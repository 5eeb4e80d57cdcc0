package gridastar

import (
	"container/heap"
	"slices"
)

// PriorityQueueItem is a frontier entry. FScore is the key snapshot taken
// when the node was pushed or last refreshed; Sequence is the order in which
// the node first entered the frontier.
type PriorityQueueItem struct {
	Node         *Node
	FScore       int
	Sequence     int
	IndexInQueue int
}

// PriorityQueue orders items by FScore, then by Sequence, so equal keys
// leave the frontier first-in first-out.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FScore != queue[j].FScore {
		return queue[i].FScore < queue[j].FScore
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// frontier is the open set of one search. Every node appears at most once;
// pushing a member again refreshes its key in place and keeps its Sequence.
type frontier struct {
	queue        PriorityQueue
	members      map[int]*PriorityQueueItem
	nextSequence int
}

func newFrontier() *frontier {
	openSet := &frontier{
		queue:   make(PriorityQueue, 0),
		members: make(map[int]*PriorityQueueItem),
	}
	heap.Init(&openSet.queue)
	return openSet
}

func (openSet *frontier) Len() int { return openSet.queue.Len() }

func (openSet *frontier) contains(node *Node) bool {
	_, inOpen := openSet.members[node.index]
	return inOpen
}

// push inserts node keyed by its current FScore, or refreshes the key of an
// existing entry.
func (openSet *frontier) push(node *Node) {
	if item, inOpen := openSet.members[node.index]; inOpen {
		item.FScore = node.fScore
		heap.Fix(&openSet.queue, item.IndexInQueue)
		return
	}

	item := &PriorityQueueItem{
		Node:     node,
		FScore:   node.fScore,
		Sequence: openSet.nextSequence,
	}
	openSet.nextSequence++
	heap.Push(&openSet.queue, item)
	openSet.members[node.index] = item
}

func (openSet *frontier) pop() *Node {
	item := heap.Pop(&openSet.queue).(*PriorityQueueItem)
	delete(openSet.members, item.Node.index)
	return item.Node
}

// nodes returns the members in the order they entered the frontier.
func (openSet *frontier) nodes() []*Node {
	items := slices.Clone(openSet.queue)
	slices.SortFunc(items, func(a, b *PriorityQueueItem) int { return a.Sequence - b.Sequence })

	members := make([]*Node, len(items))
	for i, item := range items {
		members[i] = item.Node
	}
	return members
}
