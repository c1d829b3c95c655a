package shank

import (
	"math/rand"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// FallbackFood is returned when the grid has no free cell left. The shipped
// levels cannot reach that state.
var FallbackFood = core.Cell{X: 15, Y: 10}

// Spawner places food uniformly at random on free cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks a cell that is neither on the body nor an obstacle.
func (s *Spawner) Spawn(body Body, obstacles ObstacleSet) core.Cell {
	free := FreeCells(body, obstacles)
	if len(free) == 0 {
		return FallbackFood
	}
	return free[s.rng.Intn(len(free))]
}

// FreeCells lists every grid cell not covered by the body or an obstacle,
// column by column.
func FreeCells(body Body, obstacles ObstacleSet) []core.Cell {
	free := make([]core.Cell, 0, GridSize*GridSize)
	for x := range GridSize {
		for y := range GridSize {
			c := core.Cell{X: x, Y: y}
			if !OccupiedByBody(c, body) && !IsObstacle(c, obstacles) {
				free = append(free, c)
			}
		}
	}
	return free
}
