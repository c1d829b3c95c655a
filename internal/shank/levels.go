package shank

import "github.com/vovakirdan/tui-shank/internal/core"

// Level is one entry of the level catalog.
type Level struct {
	Index           int // 1-based
	Name            string
	TargetFood      int
	SpeedMultiplier float64
	Obstacles       ObstacleSet
}

// Levels is the campaign, easiest first.
var Levels = []Level{
	{
		Index:           1,
		Name:            "Warm Up",
		TargetFood:      5,
		SpeedMultiplier: 1.0,
	},
	{
		Index:           2,
		Name:            "Getting Tricky",
		TargetFood:      8,
		SpeedMultiplier: 1.1,
		Obstacles: cells(
			// upper bars
			run(5, 5, 3), run(12, 5, 3),
			// lower bars
			run(5, 14, 3), run(12, 14, 3),
		),
	},
	{
		Index:           3,
		Name:            "Cross Roads",
		TargetFood:      10,
		SpeedMultiplier: 1.2,
		Obstacles: cells(
			column(10, 5, 3), column(10, 12, 3),
			run(5, 10, 3), run(12, 10, 3),
		),
	},
	{
		Index:           4,
		Name:            "Corner Chaos",
		TargetFood:      12,
		SpeedMultiplier: 1.3,
		Obstacles: cells(
			box(3, 3), box(15, 3),
			box(3, 15), box(15, 15),
		),
	},
	{
		Index:           5,
		Name:            "Maze Master",
		TargetFood:      15,
		SpeedMultiplier: 1.4,
		Obstacles: cells(
			run(4, 4, 4), run(12, 4, 4),
			run(4, 10, 3), run(13, 10, 3),
			run(4, 15, 4), run(12, 15, 4),
			// connectors
			column(8, 7, 2), column(8, 12, 2),
			column(11, 7, 2), column(11, 12, 2),
		),
	},
}

// LevelCount returns the number of levels in the catalog.
func LevelCount() int {
	return len(Levels)
}

// LookupLevel returns the level with the given 1-based index. Indices past
// the end reuse the final level; indices below 1 return the first.
func LookupLevel(index int) Level {
	return Levels[core.Clamp(index, 1, len(Levels))-1]
}

// IsFinalLevel reports whether index is the last level of the catalog.
func IsFinalLevel(index int) bool {
	return index >= len(Levels)
}

func run(x, y, n int) []core.Cell {
	out := make([]core.Cell, n)
	for i := range n {
		out[i] = core.Cell{X: x + i, Y: y}
	}
	return out
}

func column(x, y, n int) []core.Cell {
	out := make([]core.Cell, n)
	for i := range n {
		out[i] = core.Cell{X: x, Y: y + i}
	}
	return out
}

// box is a 2x2 block with its top-left corner at (x, y).
func box(x, y int) []core.Cell {
	return append(run(x, y, 2), run(x, y+1, 2)...)
}

func cells(groups ...[]core.Cell) ObstacleSet {
	var out ObstacleSet
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
