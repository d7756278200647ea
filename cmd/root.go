/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "servoctl",
	Short: "SG90 servo angle control with non-linear calibration",
	Long: `servoctl drives a hobby servo over hardware PWM on a Raspberry Pi.

Requested angles (0-180) are corrected through a piecewise-linear
calibration curve measured for the servo, scaled into the PWM duty
range, and applied to the configured channel. Each applied command is
appended to a local SQLite log.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .servoctl.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "do not persist commands to the SQLite log")
}
