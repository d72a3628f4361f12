// Document is the single persisted aggregate of the domain.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Status represents the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment is a booked consultation. The Date field carries the
// display-formatted string shown to the user (e.g. "15 de Julho, 2024");
// it is also the exact-match filter key, so it must round-trip unchanged.
type Appointment struct {
	ID        int64  `json:"id"`
	Specialty string `json:"specialty"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Status    Status `json:"status"`
}

// Profile holds the user's personal data. Email may be absent on documents
// that never set it.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Document is the whole application state. It is always loaded and saved as
// one unit; there is no partial update at the storage layer.
type Document struct {
	Appointments  []Appointment  `json:"appointments"`
	Notifications []Notification `json:"notifications"`
	Profile       Profile        `json:"profile"`
}

// Defaults used by the seed document and by backfill.
const (
	DefaultProfileName  = "Sofia Carvalho"
	DefaultProfileEmail = "sofia.carvalho@email.com"
	DefaultLocation     = "Clinix Central"
)

// Seed returns the bootstrap document used when no state exists yet: one
// scheduled appointment, no notifications, the default profile.
func Seed() Document {
	return Document{
		Appointments: []Appointment{{
			ID:        1,
			Specialty: "Cardiologia",
			Doctor:    "Dra. Ana Silva",
			Date:      "15 de Julho, 2024",
			Time:      "10:00",
			Location:  DefaultLocation,
			Status:    StatusScheduled,
		}},
		Notifications: []Notification{},
		Profile: Profile{
			Name:  DefaultProfileName,
			Email: DefaultProfileEmail,
		},
	}
}

// Backfill repairs a document written by an older schema version so it
// satisfies the current required fields. This is read-repair only: the
// result is persisted only if the caller later saves the document.
func (d *Document) Backfill() {
	if d.Appointments == nil {
		d.Appointments = []Appointment{}
	}
	if d.Notifications == nil {
		d.Notifications = []Notification{}
	}
	if (d.Profile == Profile{}) {
		d.Profile = Profile{Name: DefaultProfileName}
	}
}

// ParseID converts a string-borne appointment identifier into its numeric
// form. Outer surfaces (CLI arguments, form fields) carry ids as strings;
// the core API is typed.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid appointment id %q", s)
	}
	return id, nil
}
