package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Trigger a price check",
		Long:  "Runs one price check pass over every active, due alert on the server.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()

			result, err := c.CheckPrices(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("Checked %d alerts, triggered %d notifications.\n",
				result.Checked, result.Triggered)
			if len(result.Notifications) == 0 {
				return nil
			}
			return printNotificationTable(result.Notifications)
		},
	}
}
