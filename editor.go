package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	width  int
	height int

	cfg   *Config
	vp    *Viewport
	scene *Scene

	mode          Mode
	confirmAction ConfirmAction
	confirmNode   *Node
	confirmConn   *Connection

	input    textinput.Model
	editNode *Node

	undoStack []Action
	redoStack []Action

	// Drag bookkeeping so a finished drag can be undone as one move.
	dragging  *Node
	dragStart Point

	// Last pointer position in screen units, the reference point for
	// keyboard operations on whatever is under the mouse.
	pointer Point

	help       bool
	helpScroll int

	errorMessage   string
	successMessage string
}

func initialModel(cfg *Config) model {
	ti := textinput.New()
	ti.Placeholder = "label"
	ti.CharLimit = 48

	return model{
		cfg:   cfg,
		vp:    NewViewport(cfg),
		scene: NewScene(cfg),
		mode:  ModeNormal,
		input: ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasSize is the drawable area in screen units; the bottom row is
// the status bar.
func (m *model) canvasSize() (w, h float64) {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	cols := m.width
	if cols < 1 {
		cols = 1
	}
	return float64(cols), float64(rows) * cellAspect
}

// screenPoint maps a terminal cell to screen units, stretching rows by
// the cell aspect so world geometry stays square.
func screenPoint(x, y int) Point {
	return Point{float64(x), float64(y) * cellAspect}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.updateHelp(msg)
		}
		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeEditLabel:
			return m.updateEditLabel(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	sp := screenPoint(msg.X, msg.Y)
	m.pointer = sp

	if m.mode != ModeNormal || m.help {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.Zoom(1, sp)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.vp.Zoom(-1, sp)
		return m, nil
	}

	world := m.vp.ToWorld(sp)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonRight:
			m.vp.BeginPan(sp)
		case tea.MouseButtonLeft:
			m.scene.PointerDown(world)
			if n := m.scene.DraggedNode(); n != nil {
				m.dragging = n
				m.dragStart = n.Pos
			}
			m.errorMessage = ""
			m.successMessage = ""
		}

	case tea.MouseActionMotion:
		if m.vp.Panning() {
			m.vp.UpdatePan(sp)
		}
		m.scene.PointerMove(world)

	case tea.MouseActionRelease:
		if m.vp.Panning() {
			m.vp.EndPan()
		}
		// A release anywhere ends the gesture; a failed connection
		// draw cancels silently with no message.
		conn := m.scene.PointerUp(world)
		if conn != nil {
			m.recordAction(Action{Type: ActionAddConnection, Conn: conn})
			m.successMessage = fmt.Sprintf("connected node %d -> node %d", conn.From.ID, conn.To.ID)
		}
		if m.dragging != nil {
			if m.dragging.Pos != m.dragStart {
				m.recordAction(Action{
					Type: ActionMoveNode,
					Node: m.dragging,
					From: m.dragStart,
					To:   m.dragging.Pos,
				})
			}
			m.dragging = nil
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.scene.CancelGesture()
		m.scene.ClearSelection()
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil

	case "?":
		m.help = !m.help
		m.helpScroll = 0
		return m, nil

	case "a":
		n := m.scene.AddNode()
		m.recordAction(Action{Type: ActionAddNode, Node: n})
		m.successMessage = fmt.Sprintf("added node %d", n.ID)
		return m, nil

	case "p":
		text, err := readClipboardText()
		if err != nil || text == "" {
			m.errorMessage = "clipboard is empty"
			return m, nil
		}
		n := m.scene.AddNode()
		n.Label = cleanLabel(text)
		m.recordAction(Action{Type: ActionAddNode, Node: n})
		m.successMessage = fmt.Sprintf("pasted node %d", n.ID)
		return m, nil

	case "d":
		if n := m.scene.SelectedNode(); n != nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteNode
			m.confirmNode = n
		} else if c := m.scene.ConnectionAt(m.vp.ToWorld(m.pointer)); c != nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteConnection
			m.confirmConn = c
		}
		return m, nil

	case "e":
		n := m.scene.SelectedNode()
		if n == nil {
			m.errorMessage = "select a node first"
			return m, nil
		}
		m.mode = ModeEditLabel
		m.editNode = n
		m.input.SetValue(n.Label)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case "u":
		m.undo()
		m.successMessage = ""
		return m, nil
	case "U":
		m.redo()
		m.successMessage = ""
		return m, nil

	case "+", "=":
		w, h := m.canvasSize()
		m.vp.Zoom(1, Point{w / 2, h / 2})
		return m, nil
	case "-", "_":
		w, h := m.canvasSize()
		m.vp.Zoom(-1, Point{w / 2, h / 2})
		return m, nil

	case "h", "left", "l", "right", "k", "up", "j", "down",
		"H", "shift+left", "L", "shift+right", "K", "shift+up", "J", "shift+down":
		m.vp.PanBy(panDelta(key))
		return m, nil

	case "S":
		m.exportSnapshot()
		return m, nil
	}
	return m, nil
}

// panDelta maps a navigation key to a screen-space scroll, shifted
// variants moving twice as far. Panning left scrolls the content
// right, hence the sign flip against the key direction.
func panDelta(key string) Point {
	step := 2.0 * cellAspect
	switch key {
	case "H", "shift+left", "L", "shift+right", "K", "shift+up", "J", "shift+down":
		step *= 2
	}
	switch key {
	case "h", "left", "H", "shift+left":
		return Point{step, 0}
	case "l", "right", "L", "shift+right":
		return Point{-step, 0}
	case "k", "up", "K", "shift+up":
		return Point{0, step}
	case "j", "down", "J", "shift+down":
		return Point{0, -step}
	}
	return Point{}
}

func (m model) updateEditLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.editNode = nil
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		old := m.editNode.Label
		m.editNode.Label = m.input.Value()
		if m.editNode.Label != old {
			m.recordAction(Action{
				Type: ActionEditLabel,
				Node: m.editNode,
				Old:  old,
				New:  m.editNode.Label,
			})
		}
		m.mode = ModeNormal
		m.editNode = nil
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmDeleteNode:
			conns := m.scene.RemoveNode(m.confirmNode)
			m.recordAction(Action{Type: ActionDeleteNode, Node: m.confirmNode, Conns: conns})
			m.successMessage = fmt.Sprintf("deleted node %d", m.confirmNode.ID)
			m.confirmNode = nil
		case ConfirmDeleteConnection:
			m.scene.RemoveConnection(m.confirmConn)
			m.recordAction(Action{Type: ActionDeleteConnection, Conn: m.confirmConn})
			m.successMessage = "deleted connection"
			m.confirmConn = nil
		}
		m.mode = ModeNormal
		return m, nil
	case "n", "N", "escape":
		m.mode = ModeNormal
		m.confirmNode = nil
		m.confirmConn = nil
		return m, nil
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		maxScroll := len(helpLines()) - (m.height - 1)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
		return m, nil
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
		return m, nil
	default:
		m.help = false
		m.helpScroll = 0
		return m, nil
	}
}

func (m *model) exportSnapshot() {
	w, h := m.canvasSize()
	ops := BuildFrame(m.scene, m.vp, w, h, m.cfg)
	name := "snapshot-" + time.Now().Format("20060102-150405") + ".png"
	path := m.cfg.exportPath(name)
	if err := ExportPNG(ops, m.vp, w, h, path); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "exported " + path
}
