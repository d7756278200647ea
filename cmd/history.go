package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jason89923/servoctl/pkg/config"
	"github.com/jason89923/servoctl/pkg/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently commanded angles from the log",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logrus.WithError(err).Fatal("loading configuration")
		}
		s, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			logrus.WithError(err).Fatal("opening command log")
		}
		defer s.Close()

		recs, err := s.Recent(cmd.Context(), historyLimit)
		if err != nil {
			logrus.WithError(err).Fatal("reading command log")
		}
		for _, r := range recs {
			fmt.Printf("%6d  %s  angle=%3d  pwm=%3d\n",
				r.ID, r.At.Format("2006-01-02 15:04:05"), r.Angle, r.Pwm)
		}
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records to show")
	rootCmd.AddCommand(historyCmd)
}
