package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tchason/RBDateTime/datetime"
)

var infoCmd = &cobra.Command{
	Use:   "info TIMESTAMP",
	Short: "Show derived calendar facts for a timestamp",
	Long: `Shows the derived calendar facts for an RFC 3339 timestamp:
weekday, day of year, leap year and leap month flags, and the
date-only and time-of-day components.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	dt, err := parseTimestamp(args[0])
	if err != nil {
		printError("parsing timestamp", err)
		return err
	}

	day, err := dt.DateOnly()
	if err != nil {
		printError("deriving date", err)
		return err
	}
	tod, err := dt.TimeOfDay()
	if err != nil {
		printError("deriving time of day", err)
		return err
	}

	fmt.Printf("Timestamp:   %s\n", dt.String())
	fmt.Printf("Weekday:     %s\n", dt.Weekday())
	fmt.Printf("Day of year: %d\n", dt.DayOfYear())
	fmt.Printf("Leap year:   %t\n", datetime.IsLeapYear(dt.Year()))
	fmt.Printf("Leap month:  %t\n", dt.IsLeapMonth())
	fmt.Printf("Date:        %s\n", day.String())
	fmt.Printf("Time of day: %s\n", tod.String())
	return nil
}
