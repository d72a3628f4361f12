// Package clinix is the Composition Root for the Clinix appointment manager.
//
// It connects the core business logic (Domain Layer) with the storage
// adapter (Persistence Layer): all application state — appointments,
// notifications and the user profile — lives in one JSON document on the
// local filesystem, loaded and saved as a unit.
//
// Philosophy:
//
// Clinix is local-first. There is no backend, no network synchronization and
// no multi-user store; the persisted document is the single source of truth
// for one user on one machine. Every state-changing operation also derives a
// notification, recorded in the same atomic write as the change itself.
//
// Features:
//
//   - **Single-document store**: whole-document load/save with atomic file
//     replacement and read-time schema backfill.
//   - **Appointment ledger**: schedule and cancel operations, newest-first.
//   - **Derived notifications**: one per successful mutation, with bulk
//     mark-all-read.
//   - **Pure projections**: day-grouped notification listings and
//     status-partitioned appointment boards, computed without mutation.
//   - **Change watching**: optional fsnotify-based detection of external
//     writes to the state file.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := clinix.New("~/.clinix",
//		clinix.WithLogger(logger),
//	)
//
//	// Schedule an appointment
//	appt, err := svc.Schedule(ctx, core.AppointmentInput{
//		Specialty: "Cardiologia",
//		Doctor:    "Dr. Lucas Pereira",
//		Date:      "15 de Julho, 2024",
//		Time:      "10:00",
//	})
package clinix
