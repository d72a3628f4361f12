package projection

import "github.com/clinixhq/clinix/pkg/core"

// AppointmentFilter holds optional exact-match criteria. Empty fields are
// ignored; supplied ones are conjunctive.
type AppointmentFilter struct {
	Date      string
	Status    core.Status
	Specialty string
}

// FilterAppointments applies the filter, preserving the stored newest-first
// order.
func FilterAppointments(list []core.Appointment, f AppointmentFilter) []core.Appointment {
	out := make([]core.Appointment, 0, len(list))
	for _, a := range list {
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Specialty != "" && a.Specialty != f.Specialty {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Board is the three-column status layout. Each bucket may be empty; the
// renderer decides the per-bucket empty state.
type Board struct {
	Scheduled []core.Appointment
	Completed []core.Appointment
	Cancelled []core.Appointment
}

// GroupByStatus partitions appointments into the three fixed status buckets.
func GroupByStatus(list []core.Appointment) Board {
	var b Board
	for _, a := range list {
		switch a.Status {
		case core.StatusScheduled:
			b.Scheduled = append(b.Scheduled, a)
		case core.StatusCompleted:
			b.Completed = append(b.Completed, a)
		case core.StatusCancelled:
			b.Cancelled = append(b.Cancelled, a)
		}
	}
	return b
}

// Recent projects the first n entries of the (newest-first) collection as
// recent activity, independent of status.
func Recent(list []core.Appointment, n int) []core.Appointment {
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}

// DateOptions returns the distinct appointment dates in first-seen order,
// for populating a filter control.
func DateOptions(list []core.Appointment) []string {
	return distinct(list, func(a core.Appointment) string { return a.Date })
}

// SpecialtyOptions returns the distinct specialties in first-seen order.
func SpecialtyOptions(list []core.Appointment) []string {
	return distinct(list, func(a core.Appointment) string { return a.Specialty })
}

func distinct(list []core.Appointment, key func(core.Appointment) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range list {
		k := key(a)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
