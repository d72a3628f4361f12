package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clinixhq/clinix/pkg/core"
)

// MockStore implements core.Store in memory. Load returns a deep copy, like
// a real deserialization would, so failed saves leave the stored document
// untouched. It deliberately does NOT implement core.Watchable.
type MockStore struct {
	doc      core.Document
	saves    int
	failSave bool
}

func NewMockStore() *MockStore {
	return &MockStore{doc: core.Seed()}
}

func (m *MockStore) Load(ctx context.Context) (core.Document, error) {
	return cloneDocument(m.doc), nil
}

func (m *MockStore) Save(ctx context.Context, doc core.Document) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.saves++
	m.doc = cloneDocument(doc)
	return nil
}

func (m *MockStore) Initialize(ctx context.Context) error { return nil }

func cloneDocument(doc core.Document) core.Document {
	out := doc
	out.Appointments = append([]core.Appointment(nil), doc.Appointments...)
	out.Notifications = append([]core.Notification(nil), doc.Notifications...)
	return out
}

// fixedClock returns a clock starting at base that advances one minute per
// call, so ids stay ascending over time.
func fixedClock(base time.Time) func() time.Time {
	calls := 0
	return func() time.Time {
		t := base.Add(time.Duration(calls) * time.Minute)
		calls++
		return t
	}
}

func TestSchedule_PrependsAndNotifies(t *testing.T) {
	store := NewMockStore()
	base := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)
	service := core.NewService(store, core.WithClock(fixedClock(base)))
	ctx := context.TODO()

	first, err := service.Schedule(ctx, core.AppointmentInput{
		Specialty: "Dermatologia",
		Doctor:    "Dr. Bruno Costa",
		Date:      "20 de Agosto, 2024",
		Time:      "14:00",
		Location:  "Clinix Central",
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	second, err := service.Schedule(ctx, core.AppointmentInput{
		Specialty: "Ortopedia",
		Doctor:    "Dr. Rafael Almeida",
		Date:      "21 de Agosto, 2024",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	doc, _ := store.Load(ctx)

	// Seed appointment plus two new ones, newest first.
	if len(doc.Appointments) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(doc.Appointments))
	}
	if doc.Appointments[0].ID != second.ID || doc.Appointments[1].ID != first.ID {
		t.Errorf("expected newest-first order, got ids %d, %d", doc.Appointments[0].ID, doc.Appointments[1].ID)
	}
	if second.ID <= first.ID {
		t.Errorf("expected ascending ids, got %d then %d", first.ID, second.ID)
	}
	if doc.Appointments[0].Status != core.StatusScheduled {
		t.Errorf("expected status scheduled, got %s", doc.Appointments[0].Status)
	}

	// Exactly one agenda notification per call, newest first.
	if len(doc.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(doc.Notifications))
	}
	n := doc.Notifications[1]
	if n.Type != core.TypeAgenda {
		t.Errorf("expected agenda notification, got %s", n.Type)
	}
	for _, want := range []string{"Dermatologia", "Dr. Bruno Costa", "20 de Agosto, 2024", "14:00"} {
		if !strings.Contains(n.Desc, want) {
			t.Errorf("notification desc missing %q: %s", want, n.Desc)
		}
	}
}

func TestSchedule_ScenarioMatchesInput(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	_, err := service.Schedule(ctx, core.AppointmentInput{
		Specialty: "Dermatologia",
		Doctor:    "Dr. Bruno Costa",
		Date:      "20 de Agosto, 2024",
		Time:      "14:00",
		Location:  "Clinix Central",
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	got := doc.Appointments[0]
	if got.Specialty != "Dermatologia" || got.Doctor != "Dr. Bruno Costa" ||
		got.Date != "20 de Agosto, 2024" || got.Time != "14:00" ||
		got.Location != "Clinix Central" || got.Status != core.StatusScheduled {
		t.Errorf("unexpected appointment: %+v", got)
	}
	if doc.Notifications[0].Type != core.TypeAgenda {
		t.Errorf("expected agenda notification, got %s", doc.Notifications[0].Type)
	}
}

func TestSchedule_DefaultsLocation(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)

	appt, err := service.Schedule(context.TODO(), core.AppointmentInput{
		Specialty: "Nutrição",
		Doctor:    "Dr. João Osvaldo",
		Date:      "1 de Setembro, 2024",
		Time:      "08:00",
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if appt.Location != core.DefaultLocation {
		t.Errorf("expected default location, got %q", appt.Location)
	}
}

func TestSchedule_SaveFailureDiscardsMutation(t *testing.T) {
	store := NewMockStore()
	store.failSave = true
	service := core.NewService(store)

	_, err := service.Schedule(context.TODO(), core.AppointmentInput{
		Specialty: "Cardiologia",
		Doctor:    "Dr. Lucas Pereira",
		Date:      "2 de Setembro, 2024",
		Time:      "11:00",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	doc, _ := store.Load(context.TODO())
	if len(doc.Appointments) != 1 || len(doc.Notifications) != 0 {
		t.Errorf("expected stored document untouched, got %d appointments, %d notifications",
			len(doc.Appointments), len(doc.Notifications))
	}
}

func TestCancel_FlipsStatusOnly(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	before, _ := store.Load(ctx)
	seed := before.Appointments[0]

	if err := service.Cancel(ctx, seed.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	got := doc.Appointments[0]
	if got.Status != core.StatusCancelled {
		t.Errorf("expected cancelled, got %s", got.Status)
	}
	got.Status = seed.Status
	if got != seed {
		t.Errorf("expected only status to change, got %+v", got)
	}

	if len(doc.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(doc.Notifications))
	}
	n := doc.Notifications[0]
	if n.Type != core.TypeAlert {
		t.Errorf("expected alert notification, got %s", n.Type)
	}
	if !strings.Contains(n.Desc, seed.Specialty) {
		t.Errorf("notification desc missing specialty %q: %s", seed.Specialty, n.Desc)
	}
}

func TestCancel_RepeatStillNotifies(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	doc, _ := store.Load(ctx)
	id := doc.Appointments[0].ID

	if err := service.Cancel(ctx, id); err != nil {
		t.Fatalf("first Cancel failed: %v", err)
	}
	if err := service.Cancel(ctx, id); err != nil {
		t.Fatalf("second Cancel failed: %v", err)
	}

	doc, _ = store.Load(ctx)
	if doc.Appointments[0].Status != core.StatusCancelled {
		t.Errorf("expected cancelled, got %s", doc.Appointments[0].Status)
	}
	// No guard on repeat cancel: each call that finds the record notifies.
	if len(doc.Notifications) != 2 {
		t.Errorf("expected 2 notifications after repeated cancel, got %d", len(doc.Notifications))
	}
}

func TestCancel_UnknownIDChangesNothing(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	err := service.Cancel(ctx, 999999)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if store.saves != 0 {
		t.Errorf("expected no save on miss, got %d", store.saves)
	}
	doc, _ := store.Load(ctx)
	if len(doc.Notifications) != 0 {
		t.Errorf("expected no notifications, got %d", len(doc.Notifications))
	}
	if doc.Appointments[0].Status != core.StatusScheduled {
		t.Errorf("expected seed appointment untouched, got %s", doc.Appointments[0].Status)
	}
}

func TestUpdateProfile_ShallowMerge(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	name := "X"
	if err := service.UpdateProfile(ctx, core.ProfileUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	if doc.Profile.Name != "X" {
		t.Errorf("expected name 'X', got %q", doc.Profile.Name)
	}
	if doc.Profile.Email != core.DefaultProfileEmail {
		t.Errorf("expected email preserved, got %q", doc.Profile.Email)
	}
	if len(doc.Notifications) != 1 || doc.Notifications[0].Type != core.TypeSuccess {
		t.Errorf("expected one success notification, got %+v", doc.Notifications)
	}
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)
	ctx := context.TODO()

	for i := 0; i < 3; i++ {
		if _, err := service.PushNotification(ctx, core.NotificationInput{Title: "t", Desc: "d"}); err != nil {
			t.Fatalf("PushNotification failed: %v", err)
		}
	}

	if err := service.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}
	savesAfterFirst := store.saves

	doc, _ := store.Load(ctx)
	for _, n := range doc.Notifications {
		if !n.Read {
			t.Errorf("expected notification %d read", n.ID)
		}
	}

	// Second call is a content no-op but still performs a write.
	if err := service.MarkAllRead(ctx); err != nil {
		t.Fatalf("second MarkAllRead failed: %v", err)
	}
	if store.saves != savesAfterFirst+1 {
		t.Errorf("expected a write on repeated call, saves %d -> %d", savesAfterFirst, store.saves)
	}
	after, _ := store.Load(ctx)
	if len(after.Notifications) != len(doc.Notifications) {
		t.Errorf("expected notification count unchanged, got %d", len(after.Notifications))
	}
}

func TestPushNotification_Defaults(t *testing.T) {
	store := NewMockStore()
	service := core.NewService(store)

	n, err := service.PushNotification(context.TODO(), core.NotificationInput{
		Title: "Lembrete",
		Desc:  "Confira sua agenda.",
	})
	if err != nil {
		t.Fatalf("PushNotification failed: %v", err)
	}
	if n.Type != core.TypeSystem {
		t.Errorf("expected default type system, got %s", n.Type)
	}
	if n.Link != "#" {
		t.Errorf("expected default link '#', got %q", n.Link)
	}
	if n.Read {
		t.Error("expected new notification unread")
	}
}

func TestWatch_UnsupportedStore(t *testing.T) {
	service := core.NewService(NewMockStore())

	if _, err := service.Watch(context.TODO()); err == nil {
		t.Fatal("expected error for non-watchable store")
	}
}

func TestParseID(t *testing.T) {
	id, err := core.ParseID(" 42 ")
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}

	if _, err := core.ParseID("abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
