package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
)

var (
	profileName  string
	profileEmail string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
	Long: `Without flags, prints the stored profile. With --name or --email,
shallow-merges the given fields over the stored profile (unset fields are
preserved) and records a success notification.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := mustService()
		ctx := context.Background()

		var upd core.ProfileUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &profileName
		}
		if cmd.Flags().Changed("email") {
			upd.Email = &profileEmail
		}

		if upd.Name != nil || upd.Email != nil {
			if err := service.UpdateProfile(ctx, upd); err != nil {
				fatal("Failed to update profile", err)
			}
			fmt.Println("Profile updated.")
		}

		doc, err := service.Snapshot(ctx)
		if err != nil {
			fatal("Failed to load state", err)
		}
		fmt.Printf("Name:  %s\n", doc.Profile.Name)
		if doc.Profile.Email != "" {
			fmt.Printf("Email: %s\n", doc.Profile.Email)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileName, "name", "", "New profile name")
	profileCmd.Flags().StringVar(&profileEmail, "email", "", "New profile email")
}
