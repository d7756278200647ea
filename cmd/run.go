/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jason89923/servoctl/pkg/command"
	"github.com/jason89923/servoctl/pkg/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read angles from the terminal and drive the servo",
	Long: `Run starts the interactive loop: each line read from the terminal is
parsed as an angle, calibrated, converted to a PWM duty value and
applied to the servo. Invalid angles are reported and skipped. Stop
with Ctrl-C or EOF.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logrus.WithError(err).Fatal("loading configuration")
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		ctx, cancel := context.WithCancel(cmd.Context())
		go func() {
			<-sigs
			cancel()
		}()

		fmt.Println("SG90 servo angle control with non-linear calibration")
		c, cleanup, err := buildController(cfg, command.NewInteractive(os.Stdin, os.Stdout))
		if err != nil {
			logrus.WithError(err).Fatal("initializing hardware")
		}
		defer cleanup()

		if err := c.Run(ctx); err != nil {
			logrus.WithError(err).Error("command loop")
		}
		fmt.Println("servoctl finished")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
