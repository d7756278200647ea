package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/jason89923/servoctl/pkg/command"
	"github.com/jason89923/servoctl/pkg/config"
	"github.com/jason89923/servoctl/pkg/controller"
	"github.com/jason89923/servoctl/pkg/io"
	"github.com/jason89923/servoctl/pkg/servo"
	"github.com/jason89923/servoctl/pkg/store"
)

type closer interface {
	Close() error
}

// buildController wires the configured hardware backend, command log and
// status pin into a controller. The returned cleanup releases everything
// in reverse order.
func buildController(cfg *config.Config, src command.Source) (*controller.Controller, func(), error) {
	var closers []closer
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				logrus.WithError(err).Warn("closing resource")
			}
		}
	}

	var sink servo.Sink
	switch cfg.Driver {
	case config.DriverPeriph:
		p, err := io.NewPeriphPCA9685(cfg.I2CBus)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, p)
		sink = p
	default:
		p, err := io.NewPCA9685()
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, p)
		sink = p
	}

	mapper, err := servo.NewMapper(cfg.Servo(), sink)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var cmdLog store.CommandLog
	if noLog {
		cmdLog = store.NewMemory()
	} else {
		s, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, s)
		cmdLog = s
	}

	c := controller.New(mapper, src, cmdLog)
	c.Delay = cfg.Delay

	if cfg.StatusPin >= 0 {
		pin, err := io.NewStatusPin(cfg.StatusChip, cfg.StatusPin)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, pin)
		c.Status = pin
	}

	return c, cleanup, nil
}
