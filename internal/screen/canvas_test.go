package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_DrawFillsToSize(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Draw("hello world\nsecond")

	assert.Equal(t, "hello \nsecond\n", c.String())
}

func TestCanvas_DrawReplacesEarlierLayers(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Draw("first")
	c.Draw("second")
	assert.Equal(t, "second", c.String())
}

func TestCanvas_OverlayCentered(t *testing.T) {
	c := NewCanvas(9, 3)
	c.Draw("aaaaaaaaa\nbbbbbbbbb\nccccccccc")
	c.DrawOverlay("XXX")

	assert.Equal(t, "aaaaaaaaa\nbbbXXXbbb\nccccccccc", c.String())
}

func TestCanvas_OverlayKeepsStyledBase(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("0123456789")
	c := NewCanvas(10, 1)
	c.Draw(base)
	c.DrawOverlay("##")

	assert.Equal(t, "0123##6789", ansi.Strip(c.String()))
	assert.Equal(t, 10, ansi.StringWidth(c.String()))
}

func TestCanvas_OverlayPadsShortBase(t *testing.T) {
	c := NewCanvas(8, 3)
	c.Draw("ab")
	c.DrawOverlay("XY\nZ")

	lines := strings.Split(c.String(), "\n")
	assert.Equal(t, "ab XY   ", lines[0])
	assert.Equal(t, "   Z    ", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestCanvas_OverlayWithoutSizeGrowsToFit(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Draw("base")
	c.DrawOverlay("+-+\n| |\n+-+")

	lines := strings.Split(c.String(), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "+-+e", lines[0])
	assert.Equal(t, "| | ", lines[1])
}

func TestCanvas_OverlayLargerThanCanvasIsClipped(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Draw("....\n....")
	c.DrawOverlay("123456\n123456\n123456")

	assert.Equal(t, "1234\n1234", c.String())
}

func TestCanvas_StackedOverlays(t *testing.T) {
	c := NewCanvas(7, 3)
	c.Draw(".......\n.......\n.......")
	c.DrawOverlay("AAAAA\nAAAAA\nAAAAA")
	c.DrawOverlay("B")

	assert.Equal(t, ".AAAAA.\n.AABAA.\n.AAAAA.", c.String())
}

func TestCanvas_ResizeClears(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Draw("abc")
	c.Resize(2, 2)

	w, h := c.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, "\n", c.String())
}

func TestWriterRenderer(t *testing.T) {
	var sb strings.Builder
	r := &WriterRenderer{W: &sb, Width: 10, Height: 2}

	assert.NoError(t, r.Render("frame"))
	assert.Equal(t, "frame\n\f\n", sb.String())
	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 2, h)
}
