package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	GridSize = 20 // Cells per side of the board
	FPS      = 60 // Frames per second driving the update loop
)

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns the point shifted by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// NewGrid returns the fixed square board
func NewGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell of the grid
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
