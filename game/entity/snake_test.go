package entity

import (
	"reflect"
	"testing"

	"snake-classic/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10})

	want := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("Body = %v, want %v", s.Body, want)
	}
	if s.Direction != types.Right || s.NextDirection != types.Right {
		t.Errorf("directions = %s/%s, want right/right", s.Direction, s.NextDirection)
	}
	if s.GetHead() != (types.Point{X: 10, Y: 10}) || s.GetTail() != (types.Point{X: 8, Y: 10}) {
		t.Errorf("head/tail = %v/%v", s.GetHead(), s.GetTail())
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10})

	s.Move(types.Point{X: 11, Y: 10})
	if s.Len() != 4 || s.GetHead() != (types.Point{X: 11, Y: 10}) {
		t.Fatalf("after Move: %v", s.Body)
	}

	s.RemoveTail()
	want := []types.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Errorf("Body = %v, want %v", s.Body, want)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		committed types.Direction
		request   types.Direction
		accepted  bool
	}{
		{types.Right, types.Left, false},
		{types.Left, types.Right, false},
		{types.Up, types.Down, false},
		{types.Down, types.Up, false},
		{types.Right, types.Up, true},
		{types.Right, types.Down, true},
		{types.Right, types.Right, true},
		{types.Up, types.Left, true},
	}

	for _, tc := range tests {
		s := NewSnake(types.Point{X: 10, Y: 10})
		s.Direction = tc.committed
		s.NextDirection = tc.committed

		got := s.SetDirection(tc.request)
		if got != tc.accepted {
			t.Errorf("committed %s, request %s: accepted = %v, want %v", tc.committed, tc.request, got, tc.accepted)
		}
		if !tc.accepted && s.NextDirection != tc.committed {
			t.Errorf("committed %s, request %s: NextDirection changed to %s", tc.committed, tc.request, s.NextDirection)
		}
	}
}

func TestGuardUsesCommittedDirection(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10})

	// Up is buffered but Right is still committed, so Left stays forbidden
	s.SetDirection(types.Up)
	if s.SetDirection(types.Left) {
		t.Fatal("Left accepted while Right is committed")
	}
	if s.NextDirection != types.Up {
		t.Errorf("NextDirection = %s, want up", s.NextDirection)
	}

	next := s.CommitDirection()
	if s.Direction != types.Up || next != (types.Point{X: 10, Y: 9}) {
		t.Errorf("CommitDirection: dir %s next %v", s.Direction, next)
	}
}

func TestSegmentsIsCopy(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5})
	seg := s.Segments()
	seg[0] = types.Point{X: 99, Y: 99}
	if s.GetHead() != (types.Point{X: 5, Y: 5}) {
		t.Error("Segments shares storage with Body")
	}
	if !s.Occupies(types.Point{X: 3, Y: 5}) || s.Occupies(types.Point{X: 6, Y: 5}) {
		t.Error("Occupies mismatch")
	}
}
