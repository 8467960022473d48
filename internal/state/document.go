package state

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"SplineBoard/internal/spline"
)

// Parameter bounds enforced on every write, local or remote.
const (
	MinDegree = 2
	MaxDegree = 10
	MinStep   = float32(0.001)
	MaxStep   = float32(1.0)
)

// Document owns the ordered control-point sequence, the editor parameters
// and the sampled curve derived from them. The curve is rebuilt in full on
// every edit; with an interactive point count there is nothing worth
// caching. All mutation goes through the methods below.
type Document struct {
	mu     sync.RWMutex
	points []ControlPoint
	params Params
	curve  spline.SampledCurve

	// OnChange is invoked after every mutation, with no locks held.
	OnChange func()
	// OnOp receives stamped local edits for broadcast to session peers.
	OnOp func(Op)
}

func NewDocument() *Document {
	return &Document{
		params: Params{Degree: 2, Step: 0.2, ShowPoints: true, ShowCurve: true},
	}
}

func clampParams(p Params) Params {
	if p.Degree < MinDegree {
		p.Degree = MinDegree
	}
	if p.Degree > MaxDegree {
		p.Degree = MaxDegree
	}
	if p.Step < MinStep {
		p.Step = MinStep
	}
	if p.Step > MaxStep {
		p.Step = MaxStep
	}
	return p
}

// Points returns a copy of the control-point sequence.
func (d *Document) Points() []ControlPoint {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pts := make([]ControlPoint, len(d.points))
	copy(pts, d.points)
	return pts
}

// Curve returns the current sampled curve.
func (d *Document) Curve() spline.SampledCurve {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.curve
}

func (d *Document) Params() Params {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.params
}

// resample rebuilds the derived curve. Caller holds the write lock.
func (d *Document) resample() {
	positions := make([]spline.Point, len(d.points))
	for i, cp := range d.points {
		positions[i] = cp.Pos
	}
	d.curve = spline.Curve(positions, d.params.Degree, d.params.Step)
}

// finish fires the change callbacks after the write lock is released.
func (d *Document) finish(op *Op) {
	if op != nil && d.OnOp != nil {
		d.OnOp(*op)
	}
	if d.OnChange != nil {
		d.OnChange()
	}
}

// AddPoint appends a control point at the given normalized position and
// returns it.
func (d *Document) AddPoint(pos spline.Point) ControlPoint {
	cp := ControlPoint{ID: uuid.NewString(), Pos: pos, Color: PointColor}

	d.mu.Lock()
	d.points = append(d.points, cp)
	d.resample()
	d.mu.Unlock()

	op := stamp(Op{Type: OpAddPoint, Point: &cp})
	d.finish(&op)
	return cp
}

// MovePoint drags the control point at index i to a new position.
func (d *Document) MovePoint(i int, pos spline.Point) {
	d.mu.Lock()
	if i < 0 || i >= len(d.points) {
		d.mu.Unlock()
		return
	}
	d.points[i].Pos = pos
	target := d.points[i].ID
	d.resample()
	d.mu.Unlock()

	op := stamp(Op{Type: OpMovePoint, Target: target, Pos: &pos})
	d.finish(&op)
}

// RemovePoint deletes the control point at index i.
func (d *Document) RemovePoint(i int) {
	d.mu.Lock()
	if i < 0 || i >= len(d.points) {
		d.mu.Unlock()
		return
	}
	target := d.points[i].ID
	d.points = append(d.points[:i], d.points[i+1:]...)
	d.resample()
	d.mu.Unlock()

	op := stamp(Op{Type: OpDeletePoint, Target: target})
	d.finish(&op)
}

// Clear removes every control point.
func (d *Document) Clear() {
	d.mu.Lock()
	d.points = nil
	d.curve = spline.SampledCurve{}
	d.mu.Unlock()

	op := stamp(Op{Type: OpClear})
	d.finish(&op)
}

// SetParams replaces the editor parameters, clamped to their valid ranges.
func (d *Document) SetParams(p Params) {
	d.mu.Lock()
	d.params = clampParams(p)
	applied := d.params
	d.resample()
	d.mu.Unlock()

	op := stamp(Op{Type: OpSetParams, Params: &applied})
	d.finish(&op)
}

func (d *Document) SetDegree(k int) {
	p := d.Params()
	p.Degree = k
	d.SetParams(p)
}

func (d *Document) SetStep(step float32) {
	p := d.Params()
	p.Step = step
	d.SetParams(p)
}

func (d *Document) SetShowPoints(show bool) {
	p := d.Params()
	p.ShowPoints = show
	d.SetParams(p)
}

func (d *Document) SetShowCurve(show bool) {
	p := d.Params()
	p.ShowCurve = show
	d.SetParams(p)
}

// Snapshot captures the full document for syncing a newly connected viewer.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pts := make([]ControlPoint, len(d.points))
	copy(pts, d.points)
	return Snapshot{Points: pts, Params: d.params}
}

// Restore replaces the document with a snapshot received from a host.
func (d *Document) Restore(s Snapshot) {
	d.mu.Lock()
	d.points = make([]ControlPoint, len(s.Points))
	copy(d.points, s.Points)
	d.params = clampParams(s.Params)
	d.resample()
	d.mu.Unlock()

	d.finish(nil)
}

// Apply merges an op received from a session peer. Duplicate adds and ops
// against points that no longer exist are dropped. Remote ops are not
// re-emitted through OnOp; the transport decides what to relay.
func (d *Document) Apply(op Op) {
	observeLamport(op.Lamport)

	d.mu.Lock()
	switch op.Type {
	case OpAddPoint:
		if op.Point == nil || d.indexOf(op.Point.ID) >= 0 {
			d.mu.Unlock()
			return
		}
		d.points = append(d.points, *op.Point)
	case OpMovePoint:
		i := d.indexOf(op.Target)
		if i < 0 || op.Pos == nil {
			d.mu.Unlock()
			return
		}
		d.points[i].Pos = *op.Pos
	case OpDeletePoint:
		i := d.indexOf(op.Target)
		if i < 0 {
			d.mu.Unlock()
			return
		}
		d.points = append(d.points[:i], d.points[i+1:]...)
	case OpClear:
		d.points = nil
	case OpSetParams:
		if op.Params == nil {
			d.mu.Unlock()
			return
		}
		d.params = clampParams(*op.Params)
	default:
		d.mu.Unlock()
		log.Printf("[STATE] Ignoring unknown op type %q from site %s", op.Type, op.Site)
		return
	}
	d.resample()
	d.mu.Unlock()

	d.finish(nil)
}

// indexOf finds a point by ID. Caller holds at least the read lock.
func (d *Document) indexOf(id string) int {
	for i, cp := range d.points {
		if cp.ID == id {
			return i
		}
	}
	return -1
}
