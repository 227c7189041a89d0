package loop

import "time"

const (
	defaultFPS = 60

	// hudRows is the number of terminal rows above the canvas.
	hudRows = 1

	// maxFrameDelta caps the step after a stall (suspended terminal, slow link).
	maxFrameDelta = 250 * time.Millisecond

	// bannerDuration is how long a level-up banner stays in the HUD.
	bannerDuration = 2 * time.Second

	// ringThickness is the width of the drawn ring in logical units.
	ringThickness = 2.0
)
