package loop

import (
	"github.com/tomz197/ringballs/internal/draw"
	"github.com/tomz197/ringballs/internal/game"
)

// drawField paints one frame of the simulation onto the canvas.
func drawField(canvas *draw.Canvas, ds game.DrawState) {
	canvas.Fill(ds.Background)

	ring := ds.Ring
	canvas.FillCircle(ring.X, ring.Y, ring.Radius+ringThickness/2, ds.RingColor)
	canvas.FillCircle(ring.X, ring.Y, ring.Radius-ringThickness/2, ds.Background)

	for _, o := range ds.Obstacles {
		canvas.FillSquare(o.Square.X, o.Square.Y, o.Square.Side, o.Color)
	}

	for _, b := range ds.Balls {
		canvas.FillCircle(b.X, b.Y, b.Radius, ds.BallColor)
	}
}
