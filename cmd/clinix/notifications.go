package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
	"github.com/clinixhq/clinix/pkg/projection"
)

var (
	notifFilter   string
	notifMarkRead bool
)

// notificationsCmd represents the notifications command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications grouped by day",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := mustService()
		ctx := context.Background()

		if notifMarkRead {
			if err := service.MarkAllRead(ctx); err != nil {
				fatal("Failed to mark notifications read", err)
			}
		}

		doc, err := service.Snapshot(ctx)
		if err != nil {
			fatal("Failed to load state", err)
		}

		now := time.Now()
		list := projection.FilterNotifications(doc.Notifications, projection.NotificationFilter(notifFilter))
		groups := projection.GroupByDay(list, now)

		if len(groups) == 0 {
			fmt.Println("Nenhuma notificação encontrada.")
			return
		}

		for _, group := range groups {
			fmt.Printf("--- %s ---\n", group.Bucket)
			for _, n := range group.Items {
				renderNotification(n)
			}
		}
	},
}

func renderNotification(n core.Notification) {
	marker := " "
	if !n.Read {
		marker = "*"
	}
	fmt.Printf("%s [%s] %s — %s (%s)\n", marker, n.Type, n.Title, n.Desc, n.Date.Local().Format("15:04"))
	if n.Link != "#" {
		fmt.Printf("    Ver Detalhes: %s\n", n.Link)
	}
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.Flags().StringVar(&notifFilter, "filter", "all", "Filter: all, unread or agenda")
	notificationsCmd.Flags().BoolVar(&notifMarkRead, "mark-read", false, "Mark every notification as read first")
}
