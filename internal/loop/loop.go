// Package loop drives one terminal session: it feeds input to the simulation,
// renders the field and shows the results screen between games.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/ringballs/internal/draw"
	"github.com/tomz197/ringballs/internal/game"
	"github.com/tomz197/ringballs/internal/input"
	"github.com/tomz197/ringballs/internal/object"
)

// Options configures a session.
type Options struct {
	Field        object.Field // Logical field the simulation runs in
	FPS          int
	Seed         int64 // 0 seeds each game from the clock
	Logger       *log.Logger
	Reporter     game.Reporter // Defaults to a LogReporter on Logger
	TermSizeFunc draw.TermSizeFunc
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = defaultFPS
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Reporter == nil {
		o.Reporter = game.LogReporter{Logger: o.Logger}
	}
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	return o
}

// Run starts the main loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or the input stream ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return err
	}

	state := &State{
		Running: true,
		opts:    opts,
		canvas: draw.NewScaledCanvas(termWidth, termHeight-hudRows,
			float64(opts.Field.Width), float64(opts.Field.Height)),
		styles: newStyles(w),
	}
	state.canvas.SetOffset(0, hudRows)
	if err := state.newSession(); err != nil {
		return err
	}
	state.stream = input.StartStream(r)

	out := draw.NewChunkWriter(w)
	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	frameTime := time.Second / time.Duration(opts.FPS)
	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(state.stream)

		// ===== UPDATE PHASE =====
		if err := updateScreen(state); err != nil {
			return err
		}
		if err := state.update(in, frameStart); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if state.Running {
			if err := drawFrame(state, out, frameStart); err != nil {
				return err
			}
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(state *State) error {
	termWidth, termHeight, err := state.opts.TermSizeFunc()
	if err != nil {
		return err
	}
	if termWidth != state.canvas.TerminalWidth() || termHeight-hudRows != state.canvas.TerminalHeight() {
		state.canvas.Resize(termWidth, termHeight-hudRows)
		state.clear = true
	}
	return nil
}

// drawFrame writes the current screen.
func drawFrame(state *State, out *draw.ChunkWriter, now time.Time) error {
	if state.clear {
		draw.ClearScreen(out)
		state.canvas.Invalidate()
		state.clear = false
	}

	switch state.Phase {
	case PhasePlaying:
		drawField(state.canvas, state.Sim.DrawState())
		if err := state.canvas.Render(out); err != nil {
			return err
		}
		// The HUD takes the last row above the canvas.
		out.WriteLine(state.canvas.OffsetRow(), state.styles.hud(state, now, state.canvas.TerminalWidth()))
	case PhaseResults:
		drawResults(out, state.styles, state.Sim.Results(),
			state.canvas.TerminalWidth(), state.canvas.TerminalHeight()+state.canvas.OffsetRow())
	}

	return out.Flush()
}
