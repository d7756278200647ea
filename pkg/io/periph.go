package io

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/pca9685"
	"periph.io/x/host/v3"
)

// PeriphPCA9685 is an alternative PCA9685 backend built on periph.io,
// for boards where the gobot raspi adaptor does not apply.
type PeriphPCA9685 struct {
	bus i2c.BusCloser
	dev *pca9685.Dev
}

// NewPeriphPCA9685 initializes the periph host, opens the named I2C bus
// (most Raspberry Pi boards expose "I2C1") and configures the PCA9685 at
// its default address for 50Hz servo output.
func NewPeriphPCA9685(busName string) (*PeriphPCA9685, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing periph host")
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrapf(err, "opening I2C bus %q", busName)
	}
	dev, err := pca9685.NewI2C(bus, pca9685.I2CAddr)
	if err != nil {
		_ = bus.Close()
		return nil, errors.Wrap(err, "configuring PCA9685")
	}
	if err := dev.SetPwmFreq(servoPwmFreq * physic.Hertz); err != nil {
		_ = bus.Close()
		return nil, errors.Wrap(err, "setting PWM frequency")
	}
	return &PeriphPCA9685{bus: bus, dev: dev}, nil
}

// SetPWM applies a duty value to the given channel.
func (p *PeriphPCA9685) SetPWM(channel, value int) error {
	if err := p.dev.SetPwm(channel, 0, gpio.Duty(value)); err != nil {
		return errors.Wrapf(err, "channel %d", channel)
	}
	return nil
}

func (p *PeriphPCA9685) Close() error {
	return p.bus.Close()
}
