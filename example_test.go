package clinix_test

import (
	"context"
	"fmt"
	"os"

	"github.com/clinixhq/clinix"
	"github.com/clinixhq/clinix/pkg/core"
	"github.com/clinixhq/clinix/pkg/projection"
)

func ExampleNew() {
	dir, err := os.MkdirTemp("", "clinix-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	service, err := clinix.New(dir)
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	appt, err := service.Schedule(ctx, core.AppointmentInput{
		Specialty: "Dermatologia",
		Doctor:    "Dr. Bruno Costa",
		Date:      "20 de Agosto, 2024",
		Time:      "14:00",
	})
	if err != nil {
		panic(err)
	}

	doc, err := service.Snapshot(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Printf("scheduled %s at %s (%s)\n", appt.Specialty, appt.Time, appt.Status)
	fmt.Printf("appointments: %d, unread: %d\n",
		len(doc.Appointments), projection.UnreadCount(doc.Notifications))

	// Output:
	// scheduled Dermatologia at 14:00 (scheduled)
	// appointments: 2, unread: 1
}
