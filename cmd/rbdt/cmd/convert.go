package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertZone string

var convertCmd = &cobra.Command{
	Use:   "convert TIMESTAMP",
	Short: "Re-express a timestamp in another time zone",
	Long: `Re-expresses an RFC 3339 timestamp in the named time zone.

The moment itself is unchanged; only the calendar presentation moves:

  rbdt convert 2026-02-28T12:00:00Z --zone Asia/Tokyo`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertZone, "zone", "UTC", "target time zone")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	dt, err := parseTimestamp(args[0])
	if err != nil {
		printError("parsing timestamp", err)
		return err
	}

	projected, err := dt.InZone(convertZone)
	if err != nil {
		printError("resolving zone", err)
		return err
	}

	fmt.Println(projected.String())
	return nil
}
