package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jason89923/servoctl/pkg/calibration"
	"github.com/jason89923/servoctl/pkg/servo"
)

// Driver names for the PWM backend.
const (
	DriverGobot  = "gobot"
	DriverPeriph = "periph"
)

// Config holds everything adjustable about a servoctl run: the PWM
// backend, the duty range, the calibration curve and the command log
// location.
type Config struct {
	Driver  string
	I2CBus  string
	Channel int
	MinPwm  int
	MaxPwm  int
	Points  calibration.Table
	DBPath  string
	Delay   time.Duration
	// StatusPin < 0 disables the activity line.
	StatusChip string
	StatusPin  int
}

// Load reads configuration from an optional YAML file and SERVOCTL_*
// environment variables, on top of defaults matching the reference SG90
// rig (channel 1, duty 50-250, measured correction curve). The table
// and duty-range invariants are checked here, once, before any angle is
// processed.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("driver", DriverGobot)
	v.SetDefault("i2c_bus", "I2C1")
	v.SetDefault("channel", 1)
	v.SetDefault("min_pwm", 50)
	v.SetDefault("max_pwm", 250)
	v.SetDefault("db_path", "servoctl.db")
	v.SetDefault("delay", "500ms")
	v.SetDefault("status_chip", "gpiochip0")
	v.SetDefault("status_pin", -1)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %q", path)
		}
	} else {
		v.SetConfigName(".servoctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// The default config file is optional.
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("SERVOCTL")
	v.AutomaticEnv()

	cfg := &Config{
		Driver:     v.GetString("driver"),
		I2CBus:     v.GetString("i2c_bus"),
		Channel:    v.GetInt("channel"),
		MinPwm:     v.GetInt("min_pwm"),
		MaxPwm:     v.GetInt("max_pwm"),
		DBPath:     v.GetString("db_path"),
		Delay:      v.GetDuration("delay"),
		StatusChip: v.GetString("status_chip"),
		StatusPin:  v.GetInt("status_pin"),
	}

	cfg.Points = calibration.Default()
	if v.IsSet("calibration") {
		var pts []calibration.Point
		if err := v.UnmarshalKey("calibration", &pts); err != nil {
			return nil, errors.Wrap(err, "decoding calibration points")
		}
		cfg.Points = pts
	}

	if cfg.Driver != DriverGobot && cfg.Driver != DriverPeriph {
		return nil, errors.Errorf("unknown driver %q", cfg.Driver)
	}
	if err := cfg.Servo().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Servo returns the immutable mapper configuration.
func (c *Config) Servo() servo.Config {
	return servo.Config{
		Channel: c.Channel,
		MinPwm:  c.MinPwm,
		MaxPwm:  c.MaxPwm,
		Table:   c.Points,
	}
}
