package gridastar

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func scoredNode(grid *Grid, x int, fScore int) *Node {
	node := mustNode(grid, x, 0)
	node.setGScore(fScore)
	return node
}

func TestFrontier(t *testing.T) {
	Convey("When nodes go through the frontier", t, func() {
		grid := mustGrid(6, 1)
		openSet := newFrontier()

		Convey("Lower fScores leave first", func() {
			openSet.push(scoredNode(grid, 0, 30))
			openSet.push(scoredNode(grid, 1, 10))
			openSet.push(scoredNode(grid, 2, 20))

			So(openSet.pop().X(), ShouldEqual, 1)
			So(openSet.pop().X(), ShouldEqual, 2)
			So(openSet.pop().X(), ShouldEqual, 0)
			So(openSet.Len(), ShouldEqual, 0)
		})

		Convey("Equal fScores leave in insertion order", func() {
			for _, x := range []int{3, 0, 5, 1} {
				openSet.push(scoredNode(grid, x, 40))
			}
			var order []int
			for openSet.Len() > 0 {
				order = append(order, openSet.pop().X())
			}
			So(order, ShouldResemble, []int{3, 0, 5, 1})
		})

		Convey("Pushing a member again refreshes its key instead of duplicating it", func() {
			a := scoredNode(grid, 0, 50)
			b := scoredNode(grid, 1, 40)
			openSet.push(a)
			openSet.push(b)

			a.setGScore(10)
			openSet.push(a)
			So(openSet.Len(), ShouldEqual, 2)
			So(openSet.contains(a), ShouldBeTrue)
			So(openSet.pop(), ShouldPointTo, a)
			So(openSet.contains(a), ShouldBeFalse)
			So(openSet.pop(), ShouldPointTo, b)
		})

		Convey("A refreshed member keeps its first insertion sequence for ties", func() {
			first := scoredNode(grid, 0, 60)
			second := scoredNode(grid, 1, 40)
			openSet.push(first)
			openSet.push(second)

			first.setGScore(40)
			openSet.push(first)
			So(openSet.pop(), ShouldPointTo, first)
			So(openSet.pop(), ShouldPointTo, second)
		})

		Convey("Members are listed in insertion order", func() {
			openSet.push(scoredNode(grid, 4, 90))
			openSet.push(scoredNode(grid, 2, 10))
			openSet.push(scoredNode(grid, 3, 50))
			So(points(openSet.nodes()), ShouldResemble, []Point{{4, 0}, {2, 0}, {3, 0}})
		})
	})
}
