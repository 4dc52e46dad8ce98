package batch_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/pipeflow/catalog"
	"github.com/katalvlaran/pipeflow/hydraulics"
	"github.com/katalvlaran/pipeflow/internal/batch"
	"github.com/katalvlaran/pipeflow/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const doc = `
cases:
  - name: main
    unknown: diameter
    discharge: 0.1
    head_loss: 5
    length: 1000
  - name: existing
    unknown: energylosses
    discharge: 0.1
    diameter: 0.3
    length: 1000
  - name: oil
    unknown: discharge
    diameter: 0.3
    head_loss: 9
    length: 1000
    roughness: 0.0001
    viscosity: 0.0001
`

func defaults() batch.Defaults {
	return batch.Defaults{Roughness: 0.001, Viscosity: hydraulics.NuWater, MaxIterations: 100}
}

func TestRun(t *testing.T) {
	cases, err := batch.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	core, logs := observer.New(zapcore.DebugLevel)
	rows, err := batch.NewRunner(defaults(), catalog.Default(), zap.New(core)).Run(cases)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, pipe.Diameter, rows[0].Unknown)
	assert.InEpsilon(t, hydraulics.Diameter(1000, 0.001, 5, 0.1), rows[0].Diameter, 1e-12)
	assert.Equal(t, "DN350", rows[0].Standard)

	assert.InEpsilon(t, hydraulics.HeadLoss(1000, 0.001, 0.1, 0.3), rows[1].HeadLoss, 1e-12)
	assert.Empty(t, rows[1].Standard)

	assert.InEpsilon(t,
		hydraulics.Discharge(1000, 0.0001, 9, 0.3, hydraulics.WithViscosity(0.0001)),
		rows[2].Discharge, 1e-12, "per-case roughness and viscosity override defaults")

	assert.Equal(t, 3, logs.FilterMessage("case resolved").Len())
}

func TestRun_Errors(t *testing.T) {
	r := batch.NewRunner(defaults(), nil, nil)

	_, err := r.Run([]batch.Case{{Name: "x", Unknown: "flowrate", Length: 1}})
	assert.ErrorIs(t, err, pipe.ErrInvalidArgument)

	q := 0.1
	_, err = r.Run([]batch.Case{{Name: "x", Unknown: "diameter", Discharge: &q, Length: 1}})
	assert.ErrorIs(t, err, batch.ErrMissingValue)

	hf := 5.0
	rows, err := r.Run([]batch.Case{
		{Name: "ok", Unknown: "diameter", Discharge: &q, HeadLoss: &hf, Length: 1000},
		{Name: "bad", Unknown: "diameter", Discharge: &q, HeadLoss: &hf, Length: 0},
	})
	assert.ErrorIs(t, err, pipe.ErrInvalidQuantity)
	assert.Len(t, rows, 1, "rows resolved before the failure are returned")
	assert.Contains(t, err.Error(), "case 1 (bad)")
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := batch.Decode(strings.NewReader("cases:\n  - name: a\n    flow: 1\n"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := batch.Write(&buf, []batch.Row{{
		Name: "main", Unknown: pipe.Diameter, Discharge: 0.1, Diameter: 0.3374,
		HeadLoss: 5, Velocity: 1.118, Reynolds: 343000, Standard: "DN350",
	}, {
		Name: "tail", Unknown: pipe.HeadLoss, Discharge: 0.1, Diameter: 0.3, HeadLoss: 9.2722,
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "DN350")
	assert.Contains(t, lines[1], "0.3374")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
	assert.Contains(t, lines[2], "energylosses")
}
