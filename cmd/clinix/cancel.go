package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
)

// cancelCmd represents the cancel command
var cancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an appointment",
	Long: `Set the appointment's status to cancelled and record an alert
notification. Cancelling an id that does not exist changes nothing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Ids arrive as strings from the outside; convert at the boundary.
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Invalid id", err)
		}

		service, _ := mustService()

		if err := service.Cancel(context.Background(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No appointment with id %d.\n", id)
				return
			}
			fatal("Failed to cancel appointment", err)
		}

		fmt.Printf("Appointment #%d cancelled.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
