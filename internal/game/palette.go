package game

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/ringballs/internal/level"
)

// Palette maps every drawable part of the field to a colour.
type Palette struct {
	Background colorful.Color
	Ring       colorful.Color
	Balls      colorful.Color
	Obstacles  [level.KindCount]colorful.Color
}

// DefaultPalette is the classic look: white balls and prizes on a green field.
var DefaultPalette = Palette{
	Background: mustHex("#9ACD32"),
	Ring:       mustHex("#8FBC8F"),
	Balls:      mustHex("#FFFAFA"),
	Obstacles: [level.KindCount]colorful.Color{
		level.Prize:   mustHex("#FFFAFA"),
		level.Penalty: mustHex("#FFA500"),
		level.Killer:  mustHex("#BB2222"),
	},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("game: bad palette colour %q: %v", s, err))
	}
	return c
}
