package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
)

var seedCount int

var seedSpecialties = []string{
	"Cardiologia",
	"Dermatologia",
	"Ortopedia",
	"Nutrição",
	"Ginecologia",
}

var seedMonths = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate fake appointments for local development",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		gofakeit.Seed(time.Now().UnixNano())

		service, cfg := mustService()
		ctx := context.Background()

		for i := 0; i < seedCount; i++ {
			day := time.Now().AddDate(0, 0, gofakeit.Number(1, 60))
			appt, err := service.Schedule(ctx, core.AppointmentInput{
				Specialty: seedSpecialties[gofakeit.Number(0, len(seedSpecialties)-1)],
				Doctor:    fmt.Sprintf("Dr. %s", gofakeit.Name()),
				Date:      formatDisplayDate(day),
				Time:      fmt.Sprintf("%02d:00", gofakeit.Number(8, 17)),
				Location:  cfg.Location,
			})
			if err != nil {
				fatal("Failed to seed appointment", err)
			}
			fmt.Printf("seeded #%d %s with %s on %s\n", appt.ID, appt.Specialty, appt.Doctor, appt.Date)
		}

		fmt.Printf("%d appointments seeded.\n", seedCount)
	},
}

// formatDisplayDate renders the display-formatted date the rest of the
// system uses as an opaque string (e.g. "15 de Julho, 2024").
func formatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d de %s, %d", t.Day(), seedMonths[int(t.Month())-1], t.Year())
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedCount, "count", 5, "Number of appointments to generate")
}
