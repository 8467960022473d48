package state

import (
	"image/color"

	"SplineBoard/internal/spline"
)

// PointColor is the display color of every control point.
var PointColor = color.NRGBA{G: 255, A: 255}

// ControlPoint is one user-placed anchor of the curve. Positions live in
// the normalized [-1,1] editor space so the document is independent of the
// window size. The ID addresses the point in shared sessions, where slice
// indices are not stable across peers.
type ControlPoint struct {
	ID    string       `json:"id"`
	Pos   spline.Point `json:"pos"`
	Color color.NRGBA  `json:"color"`
}

// Params are the user-tunable scalars of the editor.
type Params struct {
	Degree     int     `json:"degree"`
	Step       float32 `json:"step"`
	ShowPoints bool    `json:"show_points"`
	ShowCurve  bool    `json:"show_curve"`
}

type OpType string

const (
	OpAddPoint    OpType = "add_point"
	OpMovePoint   OpType = "move_point"
	OpDeletePoint OpType = "delete_point"
	OpClear       OpType = "clear"
	OpSetParams   OpType = "set_params"
)

// Op is a single edit, stamped for broadcast to shared-session peers.
type Op struct {
	Type    OpType        `json:"type"`
	Point   *ControlPoint `json:"point,omitempty"`
	Target  string        `json:"target,omitempty"` // ID of the point to move/delete
	Pos     *spline.Point `json:"pos,omitempty"`
	Params  *Params       `json:"params,omitempty"`
	Lamport uint64        `json:"lamport"`
	Site    string        `json:"site"`
}

// Snapshot is the full document state sent to a viewer on connect.
type Snapshot struct {
	Points []ControlPoint `json:"points"`
	Params Params         `json:"params"`
}
