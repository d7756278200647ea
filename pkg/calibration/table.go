package calibration

import (
	"github.com/pkg/errors"
)

const (
	MinAngle = 0
	MaxAngle = 180
)

// Point is a measured calibration breakpoint: a nominal angle and the
// corrected value the servo actually needs to reach it.
type Point struct {
	Angle int `json:"angle" mapstructure:"angle"`
	Value int `json:"value" mapstructure:"value"`
}

// Table is an ordered list of calibration breakpoints covering the full
// 0-180 degree range.
type Table []Point

// Default returns the correction curve measured for the SG90 on the
// reference rig.
func Default() Table {
	return Table{
		{Angle: 0, Value: 0},
		{Angle: 45, Value: 30},
		{Angle: 90, Value: 80},
		{Angle: 135, Value: 120},
		{Angle: 180, Value: 168},
	}
}

// Validate checks the table invariants: at least two points, strictly
// increasing angles, endpoints at 0 and 180. A table that passes can
// never divide by zero during interpolation, so this runs once at
// startup instead of on every command.
func (t Table) Validate() error {
	if len(t) < 2 {
		return errors.Errorf("calibration table needs at least 2 points, got %d", len(t))
	}
	if t[0].Angle != MinAngle {
		return errors.Errorf("calibration table must start at angle %d, got %d", MinAngle, t[0].Angle)
	}
	if t[len(t)-1].Angle != MaxAngle {
		return errors.Errorf("calibration table must end at angle %d, got %d", MaxAngle, t[len(t)-1].Angle)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Angle <= t[i-1].Angle {
			return errors.Errorf("calibration angles must be strictly increasing, got %d after %d", t[i].Angle, t[i-1].Angle)
		}
	}
	return nil
}

// Interpolate maps an angle to its corrected value by piecewise-linear
// interpolation between the two bracketing breakpoints. Integer division
// truncates: the PWM register takes whole ticks and the documented
// correction values were measured with this exact arithmetic.
//
// Range checking is the caller's job. If no bracket matches (cannot
// happen for a validated table) the angle comes back unchanged.
func (t Table) Interpolate(angle int) int {
	for i := 0; i < len(t)-1; i++ {
		if angle >= t[i].Angle && angle <= t[i+1].Angle {
			x1, y1 := t[i].Angle, t[i].Value
			x2, y2 := t[i+1].Angle, t[i+1].Value
			return y1 + (angle-x1)*(y2-y1)/(x2-x1)
		}
	}
	return angle
}

// Max returns the corrected value of the last breakpoint, the top of the
// calibrated range.
func (t Table) Max() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Value
}
