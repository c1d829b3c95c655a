package shank

import "github.com/vovakirdan/tui-shank/internal/core"

// GridSize is the width and height of the square playfield in cells.
const GridSize = 20

// Bounds is the playfield rectangle.
var Bounds = core.NewRect(0, 0, GridSize, GridSize)

// Body is the shank: head at index 0, tail at the last index.
type Body []core.Cell

// Head returns the first segment.
func (b Body) Head() core.Cell {
	return b[0]
}

// Clone returns an independent copy of the body.
func (b Body) Clone() Body {
	out := make(Body, len(b))
	copy(out, b)
	return out
}

// ObstacleSet is the fixed set of blocked cells of a level.
type ObstacleSet []core.Cell

// StartBody returns the three-segment starting body centered on the grid,
// facing right.
func StartBody() Body {
	head := Bounds.Center()
	return Body{head, head.Add(-1, 0), head.Add(-2, 0)}
}

// InBounds reports whether the cell lies on the grid.
func InBounds(c core.Cell) bool {
	return Bounds.Contains(c)
}

// IsObstacle reports whether the cell is in the obstacle set.
func IsObstacle(c core.Cell, obstacles ObstacleSet) bool {
	for _, o := range obstacles {
		if o == c {
			return true
		}
	}
	return false
}

// OccupiedByBody reports whether any segment of the body is on the cell.
func OccupiedByBody(c core.Cell, body Body) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}
