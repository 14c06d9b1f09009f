package entity

import (
	"snake-classic/game/types"
)

// InitialLength is the number of segments a fresh snake starts with
const InitialLength = 3

// Snake is the player's body, head first
type Snake struct {
	Body          []types.Point
	Direction     types.Direction // committed direction of the last step
	NextDirection types.Direction // buffered input, committed on the next step
}

// NewSnake creates a snake with its head at startPos, trailing to the left and moving right
func NewSnake(startPos types.Point) *Snake {
	body := make([]types.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, types.Point{X: startPos.X - i, Y: startPos.Y})
	}
	return &Snake{
		Body:          body,
		Direction:     types.Right,
		NextDirection: types.Right,
	}
}

// Move pushes newHead to the front of the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection buffers dir for the next step. Requests to reverse the
// committed direction are ignored and reported as false.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.NextDirection = dir
	return true
}

// CommitDirection makes the buffered direction current and returns the next head position
func (s *Snake) CommitDirection() types.Point {
	s.Direction = s.NextDirection
	return s.GetHead().Add(s.Direction.Delta())
}

// Occupies reports whether any segment lies on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
