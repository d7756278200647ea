package controller

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jason89923/servoctl/pkg/command"
	"github.com/jason89923/servoctl/pkg/servo"
	"github.com/jason89923/servoctl/pkg/store"
)

// StatusPin mirrors the single capability the loop needs from the
// activity line in pkg/io.
type StatusPin interface {
	Set(active bool) error
}

// Controller runs the command loop: read an angle from the source, map
// and apply it, record it, wait, repeat. Everything happens on the
// calling goroutine; one command is fully applied before the next is
// read.
type Controller struct {
	Mapper *servo.Mapper
	Source command.Source
	Log    store.CommandLog
	// Status is optional; when set, the pin is high while a command is
	// applied.
	Status StatusPin
	// Delay throttles the command rate between iterations.
	Delay time.Duration

	now func() time.Time
}

func New(mapper *servo.Mapper, source command.Source, log store.CommandLog) *Controller {
	return &Controller{
		Mapper: mapper,
		Source: source,
		Log:    log,
		Delay:  500 * time.Millisecond,
		now:    time.Now,
	}
}

// Run consumes the source until it is exhausted or ctx is cancelled.
// Invalid angles are reported and skipped; they never abort the loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		angle, err := c.Source.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading command")
		}

		c.apply(ctx, angle)

		if c.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.Delay):
			}
		}
	}
}

func (c *Controller) timestamp() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *Controller) apply(ctx context.Context, angle int) {
	if c.Status != nil {
		_ = c.Status.Set(true)
		defer func() { _ = c.Status.Set(false) }()
	}

	res, err := c.Mapper.Set(angle)
	if err != nil {
		if servo.IsInvalidAngle(err) {
			logrus.Warnf("invalid angle %d, enter a value between 0 and 180", angle)
			return
		}
		logrus.WithError(err).Error("applying servo command")
		return
	}

	logrus.WithFields(logrus.Fields{
		"angle":      res.Angle,
		"calibrated": res.Calibrated,
		"pwm":        res.Pwm,
	}).Info("servo angle set")

	if c.Log == nil {
		return
	}
	rec := store.Record{Angle: res.Angle, Pwm: res.Pwm, At: c.timestamp()}
	if err := c.Log.Append(ctx, rec); err != nil {
		// The command already reached the hardware; a log failure is
		// reported but does not stop the loop.
		logrus.WithError(err).Warn("recording command")
	}
}
