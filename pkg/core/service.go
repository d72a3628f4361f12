package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// AppointmentInput is the payload supplied by the scheduling surface.
// Presence validation (including the reason field, which is required by the
// form but never persisted) is entirely the caller's responsibility.
type AppointmentInput struct {
	Specialty string
	Doctor    string
	Date      string
	Time      string
	Location  string
}

// ProfileUpdate is a partial profile. Nil fields are preserved on merge;
// set fields overwrite. The merge is single-level only.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// Service handles the business logic over the persisted document.
//
// Every operation runs a full load-mutate-save sequence under one mutex, so
// concurrent callers within the process cannot interleave and each logical
// operation (e.g. schedule-then-notify) appears atomic to later ones.
// Across processes the model stays last-writer-wins per document write.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithClock injects the time source. Useful for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.now = clock }
}

// NewService creates a new Service.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current document for read-only projections.
func (s *Service) Snapshot(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// Schedule records a new appointment at the head of the collection
// (newest-first is the canonical order) and, in the same document write,
// the agenda notification announcing it. Either both land or neither does.
func (s *Service) Schedule(ctx context.Context, in AppointmentInput) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return Appointment{}, err
	}

	now := s.now()
	appt := Appointment{
		ID:        nextAppointmentID(doc.Appointments, now),
		Specialty: in.Specialty,
		Doctor:    in.Doctor,
		Date:      in.Date,
		Time:      in.Time,
		Location:  in.Location,
		Status:    StatusScheduled,
	}
	if appt.Location == "" {
		appt.Location = DefaultLocation
	}
	doc.Appointments = append([]Appointment{appt}, doc.Appointments...)

	prependNotification(&doc, NotificationInput{
		Title: "Consulta Agendada",
		Desc: fmt.Sprintf("Sua consulta de %s com %s foi confirmada para %s às %s.",
			appt.Specialty, appt.Doctor, appt.Date, appt.Time),
		Type: TypeAgenda,
		Link: "consultas.html",
	}, now)

	if err := s.store.Save(ctx, doc); err != nil {
		return Appointment{}, err
	}

	if s.logger != nil {
		s.logger.Debug("appointment scheduled", "id", appt.ID, "specialty", appt.Specialty)
	}
	return appt, nil
}

// nextAppointmentID assigns a clock-based id, bumped past the current
// maximum so ids stay unique and ascending even within one millisecond.
func nextAppointmentID(appts []Appointment, now time.Time) int64 {
	id := now.UnixMilli()
	for _, a := range appts {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	return id
}

// Cancel flips the appointment's status to cancelled in place and emits an
// alert notification naming the specialty, in the same document write.
//
// There is deliberately no guard on the prior status: cancelling an already
// cancelled appointment flips nothing new but still notifies. An unknown id
// returns ErrNotFound with no write and no notification; lenient callers
// may ignore the error to keep the legacy silent-no-op behavior.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range doc.Appointments {
		if doc.Appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	doc.Appointments[idx].Status = StatusCancelled

	prependNotification(&doc, NotificationInput{
		Title: "Consulta Cancelada",
		Desc:  fmt.Sprintf("A consulta de %s foi cancelada com sucesso.", doc.Appointments[idx].Specialty),
		Type:  TypeAlert,
		Link:  "consultas.html",
	}, s.now())

	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Debug("appointment cancelled", "id", id)
	}
	return nil
}

// UpdateProfile shallow-merges the partial update over the stored profile
// and emits a success notification in the same write.
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if upd.Name != nil {
		doc.Profile.Name = *upd.Name
	}
	if upd.Email != nil {
		doc.Profile.Email = *upd.Email
	}

	prependNotification(&doc, NotificationInput{
		Title: "Perfil Atualizado",
		Desc:  "Suas informações pessoais foram alteradas com sucesso.",
		Type:  TypeSuccess,
		Link:  "perfil.html",
	}, s.now())

	return s.store.Save(ctx, doc)
}

// MarkAllRead flags every notification as read and persists. Repeated calls
// are content-idempotent, though each still performs a write. No
// notification is generated for this operation.
func (s *Service) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Notifications {
		doc.Notifications[i].Read = true
	}

	return s.store.Save(ctx, doc)
}

// PushNotification records a standalone notification (TypeSystem unless set)
// without any accompanying state change.
func (s *Service) PushNotification(ctx context.Context, in NotificationInput) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return Notification{}, err
	}

	n := prependNotification(&doc, in, s.now())

	if err := s.store.Save(ctx, doc); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// Watch observes external changes to the persisted document if the store
// supports it.
func (s *Service) Watch(ctx context.Context) (<-chan ChangeEvent, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}
