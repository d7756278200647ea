package servo

import "errors"

// ErrInvalidAngle is returned by Mapper.Set for angles outside [0,180].
var ErrInvalidAngle = errors.New("angle out of range")

// IsInvalidAngle reports whether err is an out-of-range angle rejection.
func IsInvalidAngle(err error) bool {
	return errors.Is(err, ErrInvalidAngle)
}
