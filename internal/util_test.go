package internal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBacktrack(t *testing.T) {
	Convey("When a predecessor chain is walked", t, func() {
		cameFrom := map[string]string{"d": "c", "c": "b", "b": "a"}
		predecessor := func(node string) (string, bool) {
			previous, ok := cameFrom[node]
			return previous, ok
		}

		Convey("Every step follows the current node's link, not the last node's", func() {
			So(Backtrack("d", predecessor, 0), ShouldResemble, []string{"a", "b", "c", "d"})
		})

		Convey("A node without a predecessor is a one-node path", func() {
			So(Backtrack("a", predecessor, 0), ShouldResemble, []string{"a"})
		})

		Convey("A cyclic chain is cut off at the limit", func() {
			cameFrom["a"] = "d"
			So(Backtrack("d", predecessor, 5), ShouldHaveLength, 5)
		})
	})
}
