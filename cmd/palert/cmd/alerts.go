package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

func alertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
	}

	cmd.AddCommand(alertsListCmd())
	cmd.AddCommand(alertsCreateCmd())

	return cmd
}

func alertsListCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List price alerts",
		Long:  "Lists all price alerts, or only those owned by --user.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()

			var (
				alerts []domain.Alert
				err    error
			)
			if userID != "" {
				alerts, err = c.ListUserAlerts(context.Background(), userID)
			} else {
				alerts, err = c.ListAlerts(context.Background())
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(alerts)
			}
			return printAlertTable(alerts)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "only list alerts owned by this user")

	return cmd
}

func alertsCreateCmd() *cobra.Command {
	var (
		productURL  string
		targetPrice float64
		email       string
		frequency   string
		userID      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a price alert",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()

			alert, msg, err := c.CreateAlert(context.Background(), &domain.CreateAlertRequest{
				ProductURL:  productURL,
				TargetPrice: targetPrice,
				Email:       email,
				Frequency:   domain.Frequency(frequency),
				UserID:      userID,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(alert)
			}

			fmt.Println(msg)
			return printAlertDetail(alert)
		},
	}

	cmd.Flags().StringVar(&productURL, "url", "", "product URL to monitor")
	cmd.Flags().Float64Var(&targetPrice, "target", 0, "target price threshold")
	cmd.Flags().StringVar(&email, "email", "", "email address for notifications")
	cmd.Flags().StringVar(&frequency, "frequency", "daily", "check frequency (hourly, daily, weekly)")
	cmd.Flags().StringVar(&userID, "user", "", "owner of the alert")

	return cmd
}
