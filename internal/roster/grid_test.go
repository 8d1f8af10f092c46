package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physician-roster/internal/cp"
)

func TestBuildGrid_AllocatesEveryTriple(t *testing.T) {
	m := cp.NewModel()
	g, err := BuildGrid(m, 4, 7, 3)
	require.NoError(t, err)

	assert.Equal(t, 4*7*3, m.NumVars())
	assert.Equal(t, "shift_p0_d0_s0", m.Name(g.Var(0, 0, 0)))
	assert.Equal(t, "shift_p1_d2_s0", m.Name(g.Var(1, 2, 0)))
	assert.Equal(t, "shift_p3_d6_s2", m.Name(g.Var(3, 6, 2)))
}

func TestBuildGrid_RejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct {
		name                     string
		physicians, days, shifts int
	}{
		{"zero physicians", 0, 7, 3},
		{"negative days", 5, -1, 3},
		{"zero shifts", 5, 7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildGrid(cp.NewModel(), tc.physicians, tc.days, tc.shifts)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
