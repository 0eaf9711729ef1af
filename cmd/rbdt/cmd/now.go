package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tchason/RBDateTime/datetime"
)

var (
	nowUTC  bool
	nowZone string
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current moment",
	Long: `Prints the current moment in the process default zone.

With --utc the moment is shown in UTC, with --zone in the named
IANA time zone.`,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().BoolVar(&nowUTC, "utc", false, "show in UTC")
	nowCmd.Flags().StringVar(&nowZone, "zone", "", "show in the named time zone")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	dt := datetime.Now()

	switch {
	case nowZone != "":
		projected, err := dt.InZone(nowZone)
		if err != nil {
			printError("resolving zone", err)
			return err
		}
		dt = projected
	case nowUTC:
		dt = dt.UTC()
	}

	fmt.Println(dt.String())
	return nil
}
