package schedule

import (
	"testing"
	"time"

	"pills-tracker/internal/domain/adherence"
	"pills-tracker/internal/domain/medications"
)

func instance(medID, slot string) DoseSlot {
	return DoseSlot{
		Medication: medications.Medication{ID: medID, IsActive: true},
		TimeSlot:   slot,
		Period:     Categorize(slot),
	}
}

func TestResolveStatus_TriState(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	logs := []adherence.Log{
		{ID: "a", MedicationID: "m1", Timestamp: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC), Taken: true},
		{ID: "b", MedicationID: "m1", Timestamp: time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC), Taken: false},
	}

	if got := ResolveStatus(instance("m1", "08:00"), logs, day); got != StatusTaken {
		t.Fatalf("08:00 = %q, want taken", got)
	}
	if got := ResolveStatus(instance("m1", "20:00"), logs, day); got != StatusNotTaken {
		t.Fatalf("20:00 = %q, want not_taken (logueado como no tomada != sin log)", got)
	}
	if got := ResolveStatus(instance("m1", "12:00"), logs, day); got != StatusUnlogged {
		t.Fatalf("12:00 = %q, want unlogged", got)
	}
}

func TestResolveStatus_OtherMedicationDoesNotMatch(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	logs := []adherence.Log{
		{ID: "a", MedicationID: "m1", Timestamp: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC), Taken: true},
	}

	if got := ResolveStatus(instance("m2", "08:00"), logs, day); got != StatusUnlogged {
		t.Fatalf("got %q, want unlogged for a different medication", got)
	}
}

func TestResolveStatus_OtherDayDoesNotMatch(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	logs := []adherence.Log{
		{ID: "a", MedicationID: "m1", Timestamp: time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC), Taken: true},
	}

	if got := ResolveStatus(instance("m1", "08:00"), logs, day); got != StatusUnlogged {
		t.Fatalf("got %q, want unlogged (el log es de ayer)", got)
	}
}

func TestResolveStatus_FirstMatchWins(t *testing.T) {
	// El store no debería tener duplicados, pero si los hay gana el primero.
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	ts := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	logs := []adherence.Log{
		{ID: "a", MedicationID: "m1", Timestamp: ts, Taken: true},
		{ID: "b", MedicationID: "m1", Timestamp: ts, Taken: false},
	}

	if got := ResolveStatus(instance("m1", "08:00"), logs, day); got != StatusTaken {
		t.Fatalf("got %q, want taken (first match)", got)
	}
}

func TestResolveStatus_MalformedSlotIsUnlogged(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if got := ResolveStatus(instance("m1", "8am"), nil, day); got != StatusUnlogged {
		t.Fatalf("got %q, want unlogged", got)
	}
}
