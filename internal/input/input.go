// Package input holds the per-frame input snapshot the gameplay systems read.
// Polling the real devices lives with the ebiten screen states.
package input

// Snapshot is everything gameplay needs to know about input for one frame.
// Cursor coordinates are window pixels with Y pointing down.
type Snapshot struct {
	CursorX, CursorY float64
	HasCursor        bool // false when the pointer is outside the window

	WindowWidth  float64
	WindowHeight float64

	Fire       bool // held
	Reload     bool // held
	SpawnEnemy bool // just pressed

	// MoveX/MoveY are in [-1, 1], Y up.
	MoveX, MoveY float64
}

// Centered returns a snapshot with the cursor in the middle of a w x h window.
func Centered(w, h float64) Snapshot {
	return Snapshot{
		CursorX:      w / 2,
		CursorY:      h / 2,
		HasCursor:    true,
		WindowWidth:  w,
		WindowHeight: h,
	}
}

// WithCursor returns a copy of s with the pointer at (x, y).
func (s Snapshot) WithCursor(x, y float64) Snapshot {
	s.CursorX, s.CursorY = x, y
	s.HasCursor = true
	return s
}
