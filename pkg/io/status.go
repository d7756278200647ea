package io

import (
	"github.com/pkg/errors"
	"github.com/warthog618/go-gpiocdev"
)

// StatusPin is an output GPIO line driven high while a command is being
// applied, typically wired to an activity LED.
type StatusPin struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewStatusPin requests the line at offset on the named chip (e.g.
// "gpiochip0") as an output, initially low.
func NewStatusPin(chipName string, offset int) (*StatusPin, error) {
	c, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, errors.Wrapf(err, "opening GPIO chip %q", chipName)
	}
	line, err := c.RequestLine(offset, gpiocdev.AsOutput(0))
	if err != nil {
		_ = c.Close()
		return nil, errors.Wrapf(err, "requesting GPIO line %d", offset)
	}
	return &StatusPin{chip: c, line: line}, nil
}

// Set drives the line high when active is true, low otherwise.
func (s *StatusPin) Set(active bool) error {
	v := 0
	if active {
		v = 1
	}
	return s.line.SetValue(v)
}

// Close lowers the line, returns it to input and releases the chip.
func (s *StatusPin) Close() error {
	_ = s.line.SetValue(0)
	_ = s.line.Reconfigure(gpiocdev.AsInput)
	_ = s.line.Close()
	return s.chip.Close()
}
