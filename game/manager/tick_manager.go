package manager

// TickManager turns the fixed frame rate into snake steps. The snake advances
// once every fps/movesPerSecond frames, using integer division.
type TickManager struct {
	fps     int
	counter int
}

func NewTickManager(fps int) *TickManager {
	return &TickManager{fps: fps}
}

// FramesPerStep returns how many frames pass between two steps
func (tm *TickManager) FramesPerStep(movesPerSecond int) int {
	if movesPerSecond <= 0 {
		return 0
	}
	frames := tm.fps / movesPerSecond
	if frames < 1 {
		frames = 1
	}
	return frames
}

// Advance counts one frame and reports whether the snake should step on it
func (tm *TickManager) Advance(movesPerSecond int) bool {
	frames := tm.FramesPerStep(movesPerSecond)
	if frames == 0 {
		return false
	}

	tm.counter++
	if tm.counter >= frames {
		tm.counter = 0
		return true
	}
	return false
}

func (tm *TickManager) Reset() {
	tm.counter = 0
}

func (tm *TickManager) Counter() int {
	return tm.counter
}
