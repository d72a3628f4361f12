package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
)

var (
	scheduleSpecialty string
	scheduleDoctor    string
	scheduleDate      string
	scheduleTime      string
	scheduleLocation  string
	scheduleReason    string
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a new appointment",
	Long: `Record a new appointment and its confirmation notification.
The reason is required by the form but is not persisted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Field presence is validated here, before the core is invoked;
		// the core itself performs no validation.
		var missing []string
		for _, field := range []struct {
			flag  string
			value string
		}{
			{"specialty", scheduleSpecialty},
			{"doctor", scheduleDoctor},
			{"date", scheduleDate},
			{"time", scheduleTime},
			{"reason", scheduleReason},
		} {
			if strings.TrimSpace(field.value) == "" {
				missing = append(missing, field.flag)
			}
		}
		if len(missing) > 0 {
			fmt.Printf("Error: missing required fields: %s\n", strings.Join(missing, ", "))
			cmd.Usage()
			os.Exit(1)
		}

		service, cfg := mustService()

		location := scheduleLocation
		if location == "" {
			location = cfg.Location
		}

		appt, err := service.Schedule(context.Background(), core.AppointmentInput{
			Specialty: scheduleSpecialty,
			Doctor:    scheduleDoctor,
			Date:      scheduleDate,
			Time:      scheduleTime,
			Location:  location,
		})
		if err != nil {
			fatal("Failed to schedule appointment", err)
		}

		fmt.Printf("Appointment #%d scheduled: %s with %s, %s at %s (%s)\n",
			appt.ID, appt.Specialty, appt.Doctor, appt.Date, appt.Time, appt.Location)
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringVar(&scheduleSpecialty, "specialty", "", "Medical specialty")
	scheduleCmd.Flags().StringVar(&scheduleDoctor, "doctor", "", "Doctor name")
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Display-formatted date (e.g. \"15 de Julho, 2024\")")
	scheduleCmd.Flags().StringVar(&scheduleTime, "time", "", "Time slot (e.g. 10:00)")
	scheduleCmd.Flags().StringVar(&scheduleLocation, "location", "", "Clinic location (defaults to the configured one)")
	scheduleCmd.Flags().StringVar(&scheduleReason, "reason", "", "Reason for the visit (required, not persisted)")
}
