package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit colour as sent to the terminal.
type RGB struct {
	R, G, B uint8
}

// FromColor converts a colorful colour to RGB, clamping out-of-gamut values.
func FromColor(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// cell is one terminal character: two stacked sub-pixels.
type cell struct {
	top, bottom RGB
}

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block
// characters. It scales from logical coordinates to terminal pixels and only
// re-renders cells that changed since the previous frame.
type Canvas struct {
	termWidth      int   // Terminal columns used by the canvas
	termHeight     int   // Terminal rows used by the canvas
	subPixelHeight int   // termHeight * 2
	pixels         []RGB // Flat slice: [y * termWidth + x]

	prev  []cell // Cells as last written to the terminal
	valid bool   // prev reflects what is on screen

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) of the canvas origin.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the simulation.
// termWidth/Height are the terminal dimensions the canvas covers.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]RGB, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.valid = false
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset of the canvas origin.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.valid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// Invalidate forces the next Render to redraw every cell, e.g. after the screen
// was cleared.
func (c *Canvas) Invalidate() {
	c.valid = false
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col colorful.Color) {
	rgb := FromColor(col)
	for i := range c.pixels {
		c.pixels[i] = rgb
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, rgb RGB) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = rgb
	}
}

// pixelAt returns the pixel at actual terminal coordinates.
func (c *Canvas) pixelAt(x, y int) RGB {
	return c.pixels[y*c.termWidth+x]
}

// pixelSpan returns the pixel index range whose centers fall in the logical
// interval [lo, hi] along an axis with the given scale, clamped to [0, limit).
func pixelSpan(lo, hi, scale float64, limit int) (int, int) {
	first := int(math.Ceil(lo*scale - 0.5))
	last := int(math.Floor(hi*scale - 0.5))
	return max(first, 0), min(last, limit-1)
}

// FillCircle paints the disk centered at (cx, cy) with radius r, in logical coordinates.
// A pixel is painted when its center lies in the disk.
func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color) {
	rgb := FromColor(col)
	x0, x1 := pixelSpan(cx-r, cx+r, c.scaleX, c.termWidth)
	y0, y1 := pixelSpan(cy-r, cy+r, c.scaleY, c.subPixelHeight)
	r2 := r * r

	for py := y0; py <= y1; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)/c.scaleX - cx
			if dx*dx+dy*dy <= r2 {
				c.setPixel(px, py, rgb)
			}
		}
	}
}

// FillSquare paints the axis-aligned square centered at (cx, cy), in logical coordinates.
func (c *Canvas) FillSquare(cx, cy, side float64, col colorful.Color) {
	rgb := FromColor(col)
	half := side / 2
	x0, x1 := pixelSpan(cx-half, cx+half, c.scaleX, c.termWidth)
	y0, y1 := pixelSpan(cy-half, cy+half, c.scaleY, c.subPixelHeight)

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, rgb)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the last render using upper
// half-blocks: the foreground is the top pixel, the background the bottom one.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var fg, bg RGB
	haveColors := false
	lastRow, lastCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cur := cell{
				top:    c.pixelAt(col, row*2),
				bottom: c.pixelAt(col, row*2+1),
			}
			idx := row*c.termWidth + col
			if c.valid && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			// The cursor already sits here after writing the previous column.
			if row != lastRow || col != lastCol+1 {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !haveColors || cur.top != fg {
				c.sgr(38, cur.top)
				fg = cur.top
			}
			if !haveColors || cur.bottom != bg {
				c.sgr(48, cur.bottom)
				bg = cur.bottom
			}
			haveColors = true
			c.renderBuf.WriteRune(BlockUpperHalf)
			lastRow, lastCol = row, col
		}
	}
	c.valid = true

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a 24-bit colour sequence; layer is 38 (foreground) or 48 (background).
func (c *Canvas) sgr(layer int, rgb RGB) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgb.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgb.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgb.B), 10))
	c.renderBuf.WriteByte('m')
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetRow returns the row offset of the canvas origin: the number of terminal
// rows above the canvas.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}
