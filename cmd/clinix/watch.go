package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/projection"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render recent activity whenever the state file changes",
	Long: `Observes the state document for writes made by other processes
(another window or tool) and reprints recent activity on every change.
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := mustService()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := service.Watch(ctx)
		if err != nil {
			fatal("Failed to watch state", err)
		}

		render := func() {
			doc, err := service.Snapshot(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load state: %v\n", err)
				return
			}
			fmt.Printf("-- %d unread notification(s) --\n", projection.UnreadCount(doc.Notifications))
			for _, a := range projection.Recent(doc.Appointments, 3) {
				renderCard(a)
			}
		}

		render()
		for range events {
			fmt.Println("state changed, reloading...")
			render()
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
