package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinixhq/clinix/pkg/core"
	"github.com/clinixhq/clinix/pkg/projection"
)

var (
	listJSON      bool
	listDate      string
	listStatus    string
	listSpecialty string
)

var statusBadges = map[core.Status]string{
	core.StatusScheduled: "Agendada",
	core.StatusCompleted: "Concluída",
	core.StatusCancelled: "Cancelada",
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments grouped by status",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _ := mustService()

		doc, err := service.Snapshot(context.Background())
		if err != nil {
			fatal("Failed to load state", err)
		}

		filtered := projection.FilterAppointments(doc.Appointments, projection.AppointmentFilter{
			Date:      listDate,
			Status:    core.Status(listStatus),
			Specialty: listSpecialty,
		})

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		board := projection.GroupByStatus(filtered)
		renderColumn("Agendadas", board.Scheduled, "Nenhuma consulta agendada encontrada.")
		renderColumn("Concluídas", board.Completed, "Nenhuma consulta concluída encontrada.")
		renderColumn("Canceladas", board.Cancelled, "Nenhuma consulta cancelada encontrada.")
	},
}

func renderColumn(title string, appts []core.Appointment, emptyState string) {
	fmt.Printf("== %s ==\n", title)
	if len(appts) == 0 {
		fmt.Println(emptyState)
		fmt.Println()
		return
	}
	for _, a := range appts {
		renderCard(a)
	}
	fmt.Println()
}

func renderCard(a core.Appointment) {
	fmt.Printf("#%d %s [%s]\n", a.ID, a.Specialty, statusBadges[a.Status])
	fmt.Printf("    %s\n", a.Doctor)
	fmt.Printf("    %s • %s\n", a.Date, a.Time)
	fmt.Printf("    %s\n", a.Location)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by exact display date")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (scheduled, completed, cancelled)")
	listCmd.Flags().StringVar(&listSpecialty, "specialty", "", "Filter by specialty")
}
