package cmd

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jason89923/servoctl/pkg/command"
	"github.com/jason89923/servoctl/pkg/config"
)

var setCmd = &cobra.Command{
	Use:   "set <angle>",
	Short: "Apply a single angle and exit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		angle, err := strconv.Atoi(args[0])
		if err != nil {
			logrus.Fatalf("not an angle: %q", args[0])
		}
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logrus.WithError(err).Fatal("loading configuration")
		}

		c, cleanup, err := buildController(cfg, command.NewScript(angle))
		if err != nil {
			logrus.WithError(err).Fatal("initializing hardware")
		}
		defer cleanup()

		c.Delay = 0
		if err := c.Run(cmd.Context()); err != nil {
			logrus.WithError(err).Fatal("applying angle")
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
