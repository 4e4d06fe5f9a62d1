package main

// Undo follows the action/inverse pattern: each committed operation
// pushes enough state to put the scene back exactly. Redo replays the
// same record forward.

type Action struct {
	Type  ActionType
	Node  *Node
	Conns []*Connection // cascade-deleted alongside Node
	Conn  *Connection
	From  Point // MoveNode: position before
	To    Point // MoveNode: position after
	Old   string
	New   string
}

func (m *model) recordAction(a Action) {
	m.undoStack = append(m.undoStack, a)
	m.redoStack = m.redoStack[:0]
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}
	a := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	switch a.Type {
	case ActionAddNode:
		m.scene.RemoveNode(a.Node)
	case ActionDeleteNode:
		m.scene.RestoreNode(a.Node, a.Conns)
	case ActionMoveNode:
		a.Node.MoveTo(a.From)
	case ActionEditLabel:
		a.Node.Label = a.Old
	case ActionAddConnection:
		m.scene.RemoveConnection(a.Conn)
	case ActionDeleteConnection:
		m.scene.RestoreConnection(a.Conn)
	}

	m.redoStack = append(m.redoStack, a)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}
	a := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	switch a.Type {
	case ActionAddNode:
		m.scene.RestoreNode(a.Node, nil)
	case ActionDeleteNode:
		m.scene.RemoveNode(a.Node)
	case ActionMoveNode:
		a.Node.MoveTo(a.To)
	case ActionEditLabel:
		a.Node.Label = a.New
	case ActionAddConnection:
		m.scene.RestoreConnection(a.Conn)
	case ActionDeleteConnection:
		m.scene.RemoveConnection(a.Conn)
	}

	m.undoStack = append(m.undoStack, a)
}
