package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/projection"
)

var recentCount int

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent activity (newest appointments, any status)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := mustService()

		doc, err := service.Snapshot(context.Background())
		if err != nil {
			fatal("Failed to load state", err)
		}

		upcoming := projection.Recent(doc.Appointments, recentCount)
		if len(upcoming) == 0 {
			fmt.Println("Nenhuma atividade recente.")
			return
		}
		for _, a := range upcoming {
			renderCard(a)
		}
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVar(&recentCount, "count", 3, "Number of entries to show")
}
