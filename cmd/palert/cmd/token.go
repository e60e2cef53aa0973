package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Fetch an anti-forgery token",
		Long: "Fetches a CSRF token from the server. Mutating commands fetch " +
			"one automatically; this is mainly useful for scripting raw requests.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()

			token, err := c.Token(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}
}
