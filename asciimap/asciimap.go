// Package asciimap loads grids from text and draws search results back as
// text. Row 0 of the text is y = 0.
//
//	S..#....
//	.#.#.##.
//	.#...#G.
package asciimap

import (
	"bufio"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/pdrpinto/gridastar"
)

// Cell symbols.
const (
	Free     = '.'
	Obstacle = '#'
	Start    = 'S'
	Goal     = 'G'
	PathMark = '*'
	Visited  = 'o'
)

var (
	ErrEmptyMap          = errors.New("map has no rows")
	ErrRaggedRow         = errors.New("map rows differ in width")
	ErrUnknownSymbol     = errors.New("unknown map symbol")
	ErrDuplicateEndpoint = errors.New("map holds more than one start or goal")
)

// Map is a parsed grid with its optional endpoints.
type Map struct {
	Grid  *gridastar.Grid
	Start *gridastar.Node
	Goal  *gridastar.Node
}

// Parse builds a grid from rows of cell symbols.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrRaggedRow, "row %d has width %d, want %d", y, len(row), width)
		}
	}

	grid, err := gridastar.NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	parsed := &Map{Grid: grid}

	for y, row := range rows {
		for x, symbol := range []byte(row) {
			node, err := grid.GetNode(x, y)
			if err != nil {
				return nil, err
			}
			switch symbol {
			case Free:
			case Obstacle:
				if err := grid.SetObstacle(node, true); err != nil {
					return nil, err
				}
			case Start:
				if parsed.Start != nil {
					return nil, errors.Wrapf(ErrDuplicateEndpoint, "second start at (%d,%d)", x, y)
				}
				parsed.Start = node
			case Goal:
				if parsed.Goal != nil {
					return nil, errors.Wrapf(ErrDuplicateEndpoint, "second goal at (%d,%d)", x, y)
				}
				parsed.Goal = node
			default:
				return nil, errors.Wrapf(ErrUnknownSymbol, "%q at (%d,%d)", symbol, x, y)
			}
		}
	}
	return parsed, nil
}

// Read parses a map from reader, ignoring blank lines.
func Read(reader io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading map")
	}
	return Parse(rows)
}

// Render draws grid with the endpoints, the path and the closed set of
// result. With colour set, symbols are wrapped in ANSI colours.
func Render(grid *gridastar.Grid, start, goal *gridastar.Node, result gridastar.Result, colour bool) string {
	marks := make(map[gridastar.Point]rune, len(result.Closed)+len(result.Path))
	for _, node := range result.Closed {
		marks[node.Point()] = Visited
	}
	for _, node := range result.Path {
		marks[node.Point()] = PathMark
	}

	var builder strings.Builder
	for node := range grid.All() {
		symbol := symbolFor(node, start, goal, marks)
		if colour {
			builder.WriteString(paint(symbol))
		} else {
			builder.WriteRune(symbol)
		}
		if node.X() == grid.Width()-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

func symbolFor(node, start, goal *gridastar.Node, marks map[gridastar.Point]rune) rune {
	switch {
	case node == start:
		return Start
	case node == goal:
		return Goal
	case node.IsObstacle():
		return Obstacle
	}
	if mark, ok := marks[node.Point()]; ok {
		return mark
	}
	return Free
}

func paint(symbol rune) string {
	text := string(symbol)
	switch symbol {
	case Obstacle:
		return aurora.Red(text).String()
	case PathMark:
		return aurora.Green(text).String()
	case Visited:
		return aurora.Cyan(text).String()
	case Start, Goal:
		return aurora.Blue(text).String()
	}
	return text
}
