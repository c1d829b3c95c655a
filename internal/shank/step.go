package shank

import "github.com/vovakirdan/tui-shank/internal/core"

// StepResult is the outcome of one movement step.
type StepResult struct {
	Body     Body // next body; the input body when Collided
	Collided bool
	Ate      bool // head landed on food; the tail was kept
}

// Step moves the body one cell in dir. It has no side effects: scoring and
// food respawn are left to the caller.
//
// Any existing segment other than the head is solid, including the tail
// that would be vacated by this very move.
func Step(body Body, dir Direction, obstacles ObstacleSet, food core.Cell) StepResult {
	dx, dy := dir.Vector()
	head := body.Head().Add(dx, dy)

	if collides(head, body, obstacles) {
		return StepResult{Body: body, Collided: true}
	}

	next := make(Body, 0, len(body)+1)
	next = append(next, head)
	if head == food {
		next = append(next, body...)
		return StepResult{Body: next, Ate: true}
	}
	next = append(next, body[:len(body)-1]...)
	return StepResult{Body: next}
}

func collides(head core.Cell, body Body, obstacles ObstacleSet) bool {
	if !InBounds(head) || IsObstacle(head, obstacles) {
		return true
	}
	return OccupiedByBody(head, body[1:])
}
