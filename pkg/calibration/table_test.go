package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:  "default table is valid",
			table: Default(),
		},
		{
			name:  "minimal two-point table",
			table: Table{{0, 0}, {180, 180}},
		},
		{
			name:    "empty",
			table:   Table{},
			wantErr: "at least 2 points",
		},
		{
			name:    "single point",
			table:   Table{{0, 0}},
			wantErr: "at least 2 points",
		},
		{
			name:    "does not start at 0",
			table:   Table{{10, 5}, {180, 168}},
			wantErr: "must start at angle 0",
		},
		{
			name:    "does not end at 180",
			table:   Table{{0, 0}, {170, 160}},
			wantErr: "must end at angle 180",
		},
		{
			name:    "duplicate angle",
			table:   Table{{0, 0}, {90, 80}, {90, 85}, {180, 168}},
			wantErr: "strictly increasing",
		},
		{
			name:    "out of order",
			table:   Table{{0, 0}, {90, 80}, {45, 30}, {180, 168}},
			wantErr: "strictly increasing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInterpolateBreakpoints(t *testing.T) {
	table := Default()
	for _, p := range table {
		assert.Equal(t, p.Value, table.Interpolate(p.Angle), "breakpoint %d", p.Angle)
	}
}

func TestInterpolateInterior(t *testing.T) {
	table := Default()

	// Hand-computed with truncating integer division.
	tests := []struct {
		angle int
		want  int
	}{
		{20, 13},   // 0 + 20*30/45 = 600/45
		{44, 29},   // 0 + 44*30/45 = 1320/45 = 29.33 -> 29
		{60, 46},   // 30 + 15*50/45 = 30 + 750/45 = 30 + 16.67 -> 46
		{100, 88},  // 80 + 10*40/45 = 80 + 400/45 = 80 + 8.89 -> 88
		{170, 157}, // 120 + 35*48/45 = 120 + 1680/45 = 120 + 37.33 -> 157
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Interpolate(tt.angle), "angle %d", tt.angle)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	table := Default()
	assert.Equal(t, table[0].Value, table.Interpolate(MinAngle))
	assert.Equal(t, table[len(table)-1].Value, table.Interpolate(MaxAngle))
	assert.Equal(t, table[len(table)-1].Value, table.Max())
}

func TestInterpolateMonotonic(t *testing.T) {
	table := Default()
	prev := table.Interpolate(0)
	for angle := 1; angle <= 180; angle++ {
		cur := table.Interpolate(angle)
		assert.GreaterOrEqual(t, cur, prev, "angle %d", angle)
		prev = cur
	}
}

func TestInterpolateNoBracketFallback(t *testing.T) {
	// Deliberately malformed partial table: angles past 90 hit no
	// bracket and come back unchanged.
	table := Table{{0, 0}, {90, 45}}
	assert.Equal(t, 150, table.Interpolate(150))
}
