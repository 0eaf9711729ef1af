package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tchason/RBDateTime/datetime"
)

var addDelta datetime.Delta

var addCmd = &cobra.Command{
	Use:   "add TIMESTAMP",
	Short: "Shift a timestamp by calendar or clock units",
	Long: `Shifts an RFC 3339 timestamp by the given calendar and clock
units and prints the normalized result.

All units are applied in a single pass, so overflow carries through
every position:

  rbdt add 2026-01-31T00:00:00Z --months 1 --days 1`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addDelta.Years, "years", 0, "years to add")
	addCmd.Flags().IntVar(&addDelta.Months, "months", 0, "months to add")
	addCmd.Flags().IntVar(&addDelta.Days, "days", 0, "days to add")
	addCmd.Flags().IntVar(&addDelta.Hours, "hours", 0, "hours to add")
	addCmd.Flags().IntVar(&addDelta.Minutes, "minutes", 0, "minutes to add")
	addCmd.Flags().IntVar(&addDelta.Seconds, "seconds", 0, "seconds to add")
	addCmd.Flags().IntVar(&addDelta.Milliseconds, "millis", 0, "milliseconds to add")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	dt, err := parseTimestamp(args[0])
	if err != nil {
		printError("parsing timestamp", err)
		return err
	}

	shifted, err := dt.Plus(addDelta)
	if err != nil {
		printError("shifting timestamp", err)
		return err
	}

	fmt.Println(shifted.String())
	return nil
}
