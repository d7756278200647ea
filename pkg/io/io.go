package io

import (
	"sync"

	"github.com/pkg/errors"
	"gobot.io/x/gobot/drivers/i2c"
	"gobot.io/x/gobot/platforms/raspi"
)

// servoPwmFreq is the update rate hobby servos expect: a 20ms period
// with the position encoded in the 1-2ms pulse width.
const servoPwmFreq = 50

// PCA9685 drives servo channels through the PCA9685 I2C PWM controller
// on a Raspberry Pi, using the gobot raspi adaptor.
type PCA9685 struct {
	adaptor *raspi.Adaptor
	driver  *i2c.PCA9685Driver

	mu   sync.Mutex
	last map[int]int
}

// NewPCA9685 opens the I2C bus and starts the PCA9685 driver at the
// standard 50Hz servo frequency.
func NewPCA9685() (*PCA9685, error) {
	r := raspi.NewAdaptor()
	d := i2c.NewPCA9685Driver(r)
	if err := d.Start(); err != nil {
		return nil, errors.Wrap(err, "starting PCA9685 driver")
	}
	if err := d.SetPWMFreq(servoPwmFreq); err != nil {
		_ = d.Halt()
		return nil, errors.Wrap(err, "setting PWM frequency")
	}
	return &PCA9685{
		adaptor: r,
		driver:  d,
		last:    make(map[int]int),
	}, nil
}

// SetPWM applies a duty value to the given channel. The pulse starts at
// tick 0 and ends at the duty value.
func (p *PCA9685) SetPWM(channel, value int) error {
	if err := p.driver.SetPWM(channel, 0, uint16(value)); err != nil {
		return errors.Wrapf(err, "channel %d", channel)
	}
	p.mu.Lock()
	p.last[channel] = value
	p.mu.Unlock()
	return nil
}

// Last returns the most recent duty value written to channel, if any.
func (p *PCA9685) Last(channel int) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.last[channel]
	return v, ok
}

// Close halts the driver, leaving the outputs idle.
func (p *PCA9685) Close() error {
	return p.driver.Halt()
}
