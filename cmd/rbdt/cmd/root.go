package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tchason/RBDateTime/core/config"
	"github.com/tchason/RBDateTime/datetime"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rbdt",
	Short: "Calendar-aware date/time inspection tool",
	Long: `rbdt inspects and transforms calendar-aware date/time values.

Commands:
  now      - print the current moment
  add      - shift a timestamp by calendar or clock units
  convert  - re-express a timestamp in another time zone
  info     - show derived calendar facts for a timestamp

Timestamps are given in RFC 3339 form, e.g. 2026-02-28T12:30:00Z.`,
	PersistentPreRunE: loadDefaults,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "defaults file (TOML or YAML)")
}

// loadDefaults installs the calendar and zone defaults from --config
// before any command runs.
func loadDefaults(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return nil
	}

	defaults, err := config.Load(cfgFile)
	if err != nil {
		printError("loading config", err)
		return err
	}
	if err := defaults.Apply(); err != nil {
		printError("applying config", err)
		return err
	}
	return nil
}

// parseTimestamp reads an RFC 3339 timestamp into a DateTime, keeping
// the zone offset given in the input.
func parseTimestamp(arg string) (datetime.DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, arg)
	if err != nil {
		return datetime.DateTime{}, err
	}
	return datetime.FromTime(t), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
