package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditLabel
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteNode ConfirmAction = iota
	ConfirmDeleteConnection
	ConfirmQuit
)

type ActionType int

const (
	ActionAddNode ActionType = iota
	ActionDeleteNode
	ActionMoveNode
	ActionEditLabel
	ActionAddConnection
	ActionDeleteConnection
)

const (
	zoomInFactor  = 1.25
	zoomOutFactor = 0.8

	// Terminal cells are roughly twice as tall as wide, so one cell
	// covers a 1x2 patch of screen units. Mouse positions and the cell
	// projection in view.go both apply this factor.
	cellAspect = 2.0

	// New nodes land at a random spot inside this world-space range.
	placeRangeX = 500
	placeRangeY = 200

	// How close (Manhattan, world units) the pointer must be to a
	// connection curve for it to count as under the pointer.
	connectionHitRadius = 10.0

	// Segments used when flattening a connection curve for rendering
	// and hit testing.
	curveSegments = 24
)
