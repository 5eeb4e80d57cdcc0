package asciimap

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/pdrpinto/gridastar"
)

var corridor = []string{
	"S.#..",
	"..#..",
	".....",
	"..#.G",
}

func TestParse(t *testing.T) {
	Convey("When a well-formed map is parsed", t, func() {
		parsed, err := Parse(corridor)
		So(err, ShouldBeNil)
		So(parsed.Grid.Width(), ShouldEqual, 5)
		So(parsed.Grid.Height(), ShouldEqual, 4)
		So(parsed.Start.Point(), ShouldResemble, gridastar.Point{X: 0, Y: 0})
		So(parsed.Goal.Point(), ShouldResemble, gridastar.Point{X: 4, Y: 3})
		So(parsed.Grid.Obstacles(), ShouldHaveLength, 3)

		Convey("Rendering without a result reproduces the input", func() {
			rendered := Render(parsed.Grid, parsed.Start, parsed.Goal, gridastar.Result{}, false)
			So(rendered, ShouldEqual, strings.Join(corridor, "\n")+"\n")
		})

		Convey("Rendering a search marks the path and the closed set", func() {
			result, err := parsed.Grid.Search(parsed.Start, parsed.Goal, false)
			So(err, ShouldBeNil)
			So(result.Found, ShouldBeTrue)

			rendered := Render(parsed.Grid, parsed.Start, parsed.Goal, result, false)
			lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
			So(lines, ShouldHaveLength, 4)
			So(strings.Count(rendered, string(PathMark)), ShouldEqual, len(result.Path)-2)
			So(strings.Count(rendered, string(Obstacle)), ShouldEqual, 3)
			So(lines[0][0], ShouldEqual, byte(Start))
			So(lines[3][4], ShouldEqual, byte(Goal))
			So(lines[2][2], ShouldEqual, byte(PathMark))
		})

		Convey("Colour rendering wraps symbols in escape codes", func() {
			rendered := Render(parsed.Grid, parsed.Start, parsed.Goal, gridastar.Result{}, true)
			So(rendered, ShouldContainSubstring, "\x1b[")
			So(strings.Count(rendered, "\n"), ShouldEqual, 4)
		})
	})

	Convey("When a malformed map is parsed", t, func() {
		_, err := Parse(nil)
		So(errors.Is(err, ErrEmptyMap), ShouldBeTrue)

		_, err = Parse([]string{"S..", ".."})
		So(errors.Is(err, ErrRaggedRow), ShouldBeTrue)

		_, err = Parse([]string{"S.x", "..G"})
		So(errors.Is(err, ErrUnknownSymbol), ShouldBeTrue)

		_, err = Parse([]string{"S.S", "..G"})
		So(errors.Is(err, ErrDuplicateEndpoint), ShouldBeTrue)

		_, err = Parse([]string{"S.G", "..G"})
		So(errors.Is(err, ErrDuplicateEndpoint), ShouldBeTrue)
	})

	Convey("When a map is read from text", t, func() {
		parsed, err := Read(strings.NewReader("\n  S.#\n..G  \n\n"))
		So(err, ShouldBeNil)
		So(parsed.Grid.Width(), ShouldEqual, 3)
		So(parsed.Grid.Height(), ShouldEqual, 2)
		So(parsed.Goal.Point(), ShouldResemble, gridastar.Point{X: 2, Y: 1})

		Convey("Endpoints are optional", func() {
			parsed, err := Read(strings.NewReader("..\n.#\n"))
			So(err, ShouldBeNil)
			So(parsed.Start, ShouldBeNil)
			So(parsed.Goal, ShouldBeNil)
		})
	})
}
