package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SplineBoard/internal/spline"
	"SplineBoard/internal/state"
)

func TestWriteProducesPDF(t *testing.T) {
	snap := state.Snapshot{
		Points: []state.ControlPoint{
			{ID: "a", Pos: spline.Pt(-0.5, -0.5), Color: state.PointColor},
			{ID: "b", Pos: spline.Pt(0, 0.5), Color: state.PointColor},
			{ID: "c", Pos: spline.Pt(0.5, -0.5), Color: state.PointColor},
		},
		Params: state.Params{Degree: 2, Step: 0.1, ShowPoints: true, ShowCurve: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, state.Snapshot{Params: state.Params{Degree: 2, Step: 0.2}}))
	assert.NotZero(t, buf.Len())
}
