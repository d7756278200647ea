package servo

import (
	"github.com/pkg/errors"

	"github.com/jason89923/servoctl/pkg/calibration"
)

// Sink applies a PWM duty value to a servo channel. Hardware
// implementations live in pkg/io; tests inject fakes.
type Sink interface {
	SetPWM(channel, value int) error
}

// Config carries everything the mapper needs to turn an angle into a
// duty value. It is immutable once the mapper is built.
type Config struct {
	// Channel is the PWM output the servo is wired to.
	Channel int
	// MinPwm is the duty value for calibrated angle 0 (~1ms pulse).
	MinPwm int
	// MaxPwm is the duty value for the top of the calibrated range
	// (~2ms pulse).
	MaxPwm int
	// Table is the non-linear correction curve for this servo.
	Table calibration.Table
}

func (c Config) Validate() error {
	if c.Channel < 0 {
		return errors.Errorf("invalid servo channel %d", c.Channel)
	}
	if c.MinPwm >= c.MaxPwm {
		return errors.Errorf("minPwm %d must be below maxPwm %d", c.MinPwm, c.MaxPwm)
	}
	if err := c.Table.Validate(); err != nil {
		return errors.Wrap(err, "calibration table")
	}
	return nil
}

// Result reports one applied command.
type Result struct {
	Angle      int
	Calibrated int
	Pwm        int
}

// Mapper validates a requested angle, corrects it through the
// calibration table and scales it into the configured duty range.
// Every call is a stateless transformation; the same angle always
// produces the same duty value.
type Mapper struct {
	cfg  Config
	sink Sink
}

func NewMapper(cfg Config, sink Sink) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, errors.New("nil PWM sink")
	}
	return &Mapper{cfg: cfg, sink: sink}, nil
}

// Set drives the servo to angle. Angles outside [0,180] return
// ErrInvalidAngle and never reach the sink.
func (m *Mapper) Set(angle int) (Result, error) {
	if angle < calibration.MinAngle || angle > calibration.MaxAngle {
		return Result{}, errors.Wrapf(ErrInvalidAngle, "angle %d", angle)
	}
	calibrated := m.cfg.Table.Interpolate(angle)
	pwm := m.cfg.MinPwm + calibrated*(m.cfg.MaxPwm-m.cfg.MinPwm)/calibration.MaxAngle
	if err := m.sink.SetPWM(m.cfg.Channel, pwm); err != nil {
		return Result{}, errors.Wrapf(err, "writing pwm %d to channel %d", pwm, m.cfg.Channel)
	}
	return Result{Angle: angle, Calibrated: calibrated, Pwm: pwm}, nil
}

// Config returns the mapper's immutable configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}
