// SPDX-License-Identifier: Unlicense OR MIT

// Package term implements a renderer for character terminals. One
// layout unit is one terminal cell and text is measured in cells
// regardless of its size.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/layout"
	"latticeui.org/op"
)

// Renderer records primitives and paints them into a Grid.
type Renderer struct {
	Ops op.Ops
}

func (r *Renderer) DefaultSize() uint16 {
	return 1
}

// Measure returns the number of columns of the widest line and the
// number of lines of content.
func (r *Renderer) Measure(content string, _ uint16, _ font.Font, _ f32.Size) f32.Size {
	lines := strings.Split(content, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return f32.Sz(float32(w), float32(len(lines)))
}

func (r *Renderer) Fill(p op.Primitive) {
	r.Ops.Add(p)
}

// Cell is a character cell. The zero Cell is blank.
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
	// cont marks the right half of a wide rune.
	cont bool
}

// Grid is a rectangle of cells.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// Paint draws the recorded primitives into a grid of width by height
// cells.
func (r *Renderer) Paint(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}
	g.paint(r.Ops.List(), rect{x1: width, y1: height})
	return g
}

// At returns the cell at column x of row y.
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.Width+x]
}

// Row returns the characters of row y, blanks as spaces.
func (g *Grid) Row(y int) string {
	var b strings.Builder
	for x := 0; x < g.Width; x++ {
		c := g.At(x, y)
		switch {
		case c.cont:
		case c.Rune == 0:
			b.WriteByte(' ')
		default:
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

func (g *Grid) String() string {
	rows := make([]string, g.Height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Render returns the grid styled for the terminal, with blank cells
// painted in background.
func (g *Grid) Render(background color.NRGBA) string {
	rows := make([]string, g.Height)
	for y := range rows {
		var (
			b      strings.Builder
			run    strings.Builder
			fg, bg color.NRGBA
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := lipgloss.NewStyle()
			if fg.A != 0 {
				s = s.Foreground(hex(fg))
			}
			if bg.A != 0 {
				s = s.Background(hex(bg))
			}
			b.WriteString(s.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if c.cont {
				continue
			}
			if c.Bg.A == 0 {
				c.Bg = background
			}
			if c.Fg != fg || c.Bg != bg {
				flush()
				fg, bg = c.Fg, c.Bg
			}
			if c.Rune == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(c.Rune)
			}
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// rect is a range of cells, x0 and y0 inclusive.
type rect struct {
	x0, y0, x1, y1 int
}

func cells(r f32.Rectangle) rect {
	round := func(v float32) int {
		const limit = 1 << 20
		return int(max(min(math.Round(float64(v)), limit), -limit))
	}
	return rect{
		x0: round(r.X), y0: round(r.Y),
		x1: round(r.X + r.Width), y1: round(r.Y + r.Height),
	}
}

func (r rect) intersect(s rect) rect {
	r = rect{
		x0: max(r.x0, s.x0), y0: max(r.y0, s.y0),
		x1: min(r.x1, s.x1), y1: min(r.y1, s.y1),
	}
	r.x1, r.y1 = max(r.x1, r.x0), max(r.y1, r.y0)
	return r
}

func (r rect) empty() bool {
	return r.x0 >= r.x1 || r.y0 >= r.y1
}

func (g *Grid) cell(x, y int) *Cell {
	return &g.cells[y*g.Width+x]
}

func (g *Grid) paint(list []op.Primitive, clip rect) {
	for _, p := range list {
		switch p := p.(type) {
		case op.Quad:
			g.quad(p, clip)
		case op.Text:
			g.text(p, clip)
		case op.Clip:
			g.paint(p.Ops.List(), cells(p.Bounds).intersect(clip))
		}
	}
}

func (g *Grid) quad(q op.Quad, clip rect) {
	full := cells(q.Bounds)
	area := full.intersect(clip)
	if area.empty() {
		return
	}
	border := q.BorderWidth > 0 && q.BorderColor.A != 0
	for y := area.y0; y < area.y1; y++ {
		for x := area.x0; x < area.x1; x++ {
			c := g.cell(x, y)
			if q.Background.A != 0 {
				*c = Cell{Bg: q.Background}
			}
			if border {
				if r := frame(full, x, y); r != 0 {
					c.Rune, c.Fg, c.cont = r, q.BorderColor, false
				}
			}
		}
	}
}

// frame returns the box drawing rune of the border of r at (x, y),
// or 0 inside r.
func frame(r rect, x, y int) rune {
	left, right := x == r.x0, x == r.x1-1
	top, bottom := y == r.y0, y == r.y1-1
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	case left || right:
		return '│'
	}
	return 0
}

func (g *Grid) text(t op.Text, clip rect) {
	b := cells(t.Bounds)
	area := b.intersect(clip)
	if area.empty() {
		return
	}
	lines := strings.Split(t.Content, "\n")
	y := b.y0 + offset(t.VAlign, b.y1-b.y0-len(lines))
	for _, l := range lines {
		x := b.x0 + offset(t.HAlign, b.x1-b.x0-runewidth.StringWidth(l))
		for _, r := range l {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if y >= area.y0 && y < area.y1 && x >= area.x0 && x+w <= area.x1 {
				c := g.cell(x, y)
				c.Rune, c.Fg, c.cont = r, t.Color, false
				if w == 2 {
					next := g.cell(x+1, y)
					next.Rune, next.cont = 0, true
					next.Bg = c.Bg
				}
			}
			x += w
		}
		y++
	}
}

func offset(a layout.Alignment, extra int) int {
	switch a {
	case layout.Center:
		return extra / 2
	case layout.End:
		return extra
	default:
		return 0
	}
}
