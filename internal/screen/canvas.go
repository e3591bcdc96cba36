package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Surface is what screens draw on.
type Surface interface {
	// Size returns the drawable area. Zero means unknown.
	Size() (width, height int)
	// Draw replaces everything drawn so far with content.
	Draw(content string)
	// DrawOverlay composites content centered over what is already drawn.
	DrawOverlay(content string)
}

// Renderer receives finished frames.
type Renderer interface {
	Size() (width, height int)
	Render(frame string) error
}

// Canvas is a line-based Surface. Overlays keep the cells of lower layers
// visible outside their box.
type Canvas struct {
	width, height int
	lines         []string
}

// Ensure Canvas implements Surface.
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size. Zero sizes grow to fit content.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.Reset()
}

// Reset clears the canvas.
func (c *Canvas) Reset() {
	c.lines = make([]string, c.height)
}

// Size implements Surface.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Draw implements Surface.
func (c *Canvas) Draw(content string) {
	c.lines = splitLines(content)
	if c.height > 0 {
		if len(c.lines) > c.height {
			c.lines = c.lines[:c.height]
		}
		for len(c.lines) < c.height {
			c.lines = append(c.lines, "")
		}
	}
	if c.width > 0 {
		for i, l := range c.lines {
			c.lines[i] = ansi.Truncate(l, c.width, "")
		}
	}
}

// DrawOverlay implements Surface.
func (c *Canvas) DrawOverlay(content string) {
	over := splitLines(content)
	overW := maxLineWidth(over)
	w, h := c.width, c.height
	if w == 0 {
		w = max(maxLineWidth(c.lines), overW)
	}
	if h == 0 {
		h = max(len(c.lines), len(over))
	}
	for len(c.lines) < h {
		c.lines = append(c.lines, "")
	}
	x := max((w-overW)/2, 0)
	y := max((h-len(over))/2, 0)

	for i, line := range over {
		row := y + i
		if row >= h {
			break
		}
		target := padRight(c.lines[row], w)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		mid := padRight(line, overW)
		right := ansi.TruncateLeft(target, x+overW, "")
		out := left + mid + right
		if c.width > 0 {
			out = ansi.Truncate(out, c.width, "")
		}
		c.lines[row] = out
	}
}

// String returns the composed frame.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// WriterRenderer writes each frame to w followed by a form-feed separator line.
type WriterRenderer struct {
	W             io.Writer
	Width, Height int
}

// Size implements Renderer.
func (r *WriterRenderer) Size() (int, int) {
	return r.Width, r.Height
}

// Render implements Renderer.
func (r *WriterRenderer) Render(frame string) error {
	_, err := fmt.Fprintf(r.W, "%s\n\f\n", frame)
	return err
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
