package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	errorStyle   = lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

type cellGrid struct {
	cells [][]rune
	w, h  int
}

func newCellGrid(w, h int) *cellGrid {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &cellGrid{cells: cells, w: w, h: h}
}

func (g *cellGrid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

// cell projects a world point through the viewport into a terminal
// cell, undoing the 1x2 cell aspect stretch.
func (m *model) cell(p Point) (int, int) {
	s := m.vp.ToScreen(p)
	return int(math.Round(s.X)), int(math.Round(s.Y / cellAspect))
}

func (m model) View() string {
	if m.width < 2 || m.height < 2 {
		return "patchbay"
	}
	if m.help {
		return m.helpView()
	}

	rows := m.height - 1
	grid := newCellGrid(m.width, rows)

	w, h := m.canvasSize()
	for _, op := range BuildFrame(m.scene, m.vp, w, h, m.cfg) {
		switch op := op.(type) {
		case GridLineOp:
			m.drawGridLine(grid, op)
		case CurveOp:
			for i := 0; i < len(op.Points)-1; i++ {
				m.drawSegment(grid, op.Points[i], op.Points[i+1], false)
			}
		case DashedLineOp:
			m.drawSegment(grid, op.From, op.To, true)
		case NodeOp:
			m.drawNode(grid, op)
		case PortOp:
			x, y := m.cell(op.Center)
			grid.set(x, y, '●')
		}
	}

	var b strings.Builder
	for _, row := range grid.cells {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar())
	return b.String()
}

func (m *model) drawGridLine(g *cellGrid, op GridLineOp) {
	x0, y0 := m.cell(op.From)
	x1, y1 := m.cell(op.To)
	if x0 == x1 {
		r := '·'
		if op.Major {
			r = '┊'
		}
		for y := y0; y <= y1; y++ {
			g.set(x0, y, r)
		}
		return
	}
	r := '·'
	if op.Major {
		r = '┈'
	}
	for x := x0; x <= x1; x++ {
		g.set(x, y0, r)
	}
}

// drawSegment plots a straight world-space segment with a rune chosen
// from the slope; dashed lines skip every other cell.
func (m *model) drawSegment(g *cellGrid, from, to Point, dashed bool) {
	x0, y0 := m.cell(from)
	x1, y1 := m.cell(to)
	dx, dy := x1-x0, y1-y0
	steps := maxInt(absInt(dx), absInt(dy))
	r := segmentRune(dx, dy)
	if steps == 0 {
		g.set(x0, y0, r)
		return
	}
	for i := 0; i <= steps; i++ {
		if dashed && i%2 == 1 {
			continue
		}
		x := x0 + int(math.Round(float64(dx)*float64(i)/float64(steps)))
		y := y0 + int(math.Round(float64(dy)*float64(i)/float64(steps)))
		g.set(x, y, r)
	}
}

func segmentRune(dx, dy int) rune {
	adx, ady := absInt(dx), absInt(dy)
	switch {
	case ady == 0 || adx > 2*ady:
		return '─'
	case adx == 0 || ady > 2*adx:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func (m *model) drawNode(g *cellGrid, op NodeOp) {
	x0, y0 := m.cell(op.Body.Min)
	x1, y1 := m.cell(op.Body.Max)
	if x1 <= x0 || y1 <= y0 {
		g.set(x0, y0, '□')
		return
	}

	tl, tr, bl, br := '╭', '╮', '╰', '╯'
	hz, vt := '─', '│'
	if op.Selected {
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
		hz, vt = '═', '║'
	}

	// Body interior is opaque so the node occludes grid and
	// connections beneath it.
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			g.set(x, y, ' ')
		}
	}
	for x := x0 + 1; x < x1; x++ {
		g.set(x, y0, hz)
		g.set(x, y1, hz)
	}
	for y := y0 + 1; y < y1; y++ {
		g.set(x0, y, vt)
		g.set(x1, y, vt)
	}
	g.set(x0, y0, tl)
	g.set(x1, y0, tr)
	g.set(x0, y1, bl)
	g.set(x1, y1, br)

	label := op.Label
	maxLen := x1 - x0 - 1
	if maxLen > 0 && label != "" {
		if len(label) > maxLen {
			label = label[:maxLen]
		}
		ly := (y0 + y1) / 2
		lx := x0 + 1 + (maxLen-len(label))/2
		for i, r := range label {
			g.set(lx+i, ly, r)
		}
	}
}

func (m *model) statusBar() string {
	var status string
	switch m.mode {
	case ModeEditLabel:
		status = fmt.Sprintf(" EDIT node %d | label: %s | Enter=save, Esc=cancel", m.editNode.ID, m.input.Value())
	case ModeConfirm:
		var q string
		switch m.confirmAction {
		case ConfirmDeleteNode:
			q = fmt.Sprintf("Delete node %d and its connections? (y/n)", m.confirmNode.ID)
		case ConfirmDeleteConnection:
			q = "Delete this connection? (y/n)"
		case ConfirmQuit:
			q = "Quit patchbay? (y/n)"
		}
		status = " CONFIRM | " + q
	default:
		world := m.vp.ToWorld(m.pointer)
		status = fmt.Sprintf(" NORMAL | zoom %d%% | %d nodes, %d connections | (%.0f,%.0f)",
			int(math.Round(m.vp.Scale()*100)), len(m.scene.Nodes()), len(m.scene.Connections()),
			world.X, world.Y)
		if m.scene.State() == gestureDrawConnection {
			status += " | drawing connection (release on an input port)"
		}
		if n := m.scene.SelectedNode(); n != nil {
			status += fmt.Sprintf(" | selected: node %d", n.ID)
		}
	}

	bar := statusStyle.Render(padToWidth(status, m.width))
	switch {
	case m.errorMessage != "":
		bar = errorStyle.Render(padToWidth(status+" | ERROR: "+m.errorMessage, m.width))
	case m.successMessage != "":
		bar = successStyle.Render(padToWidth(status+" | "+m.successMessage, m.width))
	}
	return bar
}

func padToWidth(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func helpLines() []string {
	return []string{
		"patchbay help",
		"=============",
		"",
		"Mouse:",
		"  left-drag from an output port (right side)  draw a connection;",
		"      release on another node's input port (left side) to commit",
		"  left-drag on a node body                    move the node",
		"  left-click                                  select node / clear selection",
		"  right-drag                                  pan the canvas",
		"  wheel                                       zoom at the pointer",
		"",
		"Keys:",
		"  a          add a node (random placement)",
		"  p          paste clipboard text as a new node",
		"  e          edit the selected node's label",
		"  d          delete selected node (or connection under pointer)",
		"  u / U      undo / redo",
		"  + / -      zoom at the center",
		"  hjkl/arrows  pan (Shift pans faster)",
		"  S          export a PNG snapshot of the current view",
		"  Esc        cancel gesture / clear selection",
		"  ?          toggle this help",
		"  q          quit",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[start:end], "\n")
	for i := end - start; i < visible; i++ {
		body += "\n"
	}
	footer := dimStyle.Render(fmt.Sprintf("help (%d-%d of %d) | j/k scroll, any other key closes", start+1, end, len(lines)))
	return body + "\n" + footer
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
