package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tonobo/floodsnake/config"
	"github.com/tonobo/floodsnake/policy"
)

var rootCmd = &cobra.Command{
	Use:   "floodsnake",
	Short: "floodsnake is a snake bot that picks moves with flood fill and A*",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "--log-level")
		}
		log.SetLevel(level)
		return nil
	},
}

var (
	logLevel = config.LogLevel
	fallback = "tail"
	walk     = "seeded"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug renders the board every turn)")
	rootCmd.PersistentFlags().StringVar(&fallback, "fallback", fallback, "goal when no food is reachable: tail or none")
	rootCmd.PersistentFlags().StringVar(&walk, "walk", walk, "walk tie-break: seeded or first")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(renderCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func policyOptions() (policy.Options, error) {
	opts := policy.Options{Log: log.StandardLogger()}
	switch fallback {
	case "tail":
		opts.Fallback = policy.GoalTail
	case "none":
		opts.Fallback = policy.GoalNone
	default:
		return opts, errors.Errorf("unknown fallback %q", fallback)
	}
	switch walk {
	case "seeded":
		opts.Walk = policy.WalkSeeded
	case "first":
		opts.Walk = policy.WalkFirst
	default:
		return opts, errors.Errorf("unknown walk %q", walk)
	}
	return opts, nil
}
