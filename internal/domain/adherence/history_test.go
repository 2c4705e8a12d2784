package adherence

import (
	"testing"
	"time"
)

func dayLog(id, reporter string, ts time.Time) Log {
	return Log{ID: id, MedicationID: "med-1", Timestamp: ts, Taken: true, Reporter: reporter}
}

func TestLogsForDay_FiltersByCalendarDay(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	logs := []Log{
		dayLog("a", "alice@example.com", time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)),
		dayLog("b", "alice@example.com", time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)),
		dayLog("c", "alice@example.com", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)),
	}

	got := LogsForDay(logs, day, FilterAllReporters)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %d logs, want only the one on the day", len(got))
	}
}

func TestLogsForDay_ReporterFilter(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	logs := []Log{
		dayLog("a", "alice@example.com", time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)),
		dayLog("b", "bob@example.com", time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)),
	}

	got := LogsForDay(logs, day, "bob@example.com")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("reporter filter failed: %+v", got)
	}

	// "all" y vacío se comportan igual: sin filtro.
	if got := LogsForDay(logs, day, "all"); len(got) != 2 {
		t.Fatalf("filter 'all': got %d, want 2", len(got))
	}
	if got := LogsForDay(logs, day, ""); len(got) != 2 {
		t.Fatalf("empty filter: got %d, want 2", len(got))
	}
}

func TestLogsForDay_SortsAscendingStable(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return time.Date(2026, 8, 29, h, 0, 0, 0, time.UTC) }

	logs := []Log{
		dayLog("late", "alice@example.com", at(20)),
		dayLog("first-tie", "alice@example.com", at(8)),
		dayLog("second-tie", "bob@example.com", at(8)),
		dayLog("noon", "alice@example.com", at(12)),
	}

	got := LogsForDay(logs, day, FilterAllReporters)
	want := []string{"first-tie", "second-tie", "noon", "late"}
	if len(got) != len(want) {
		t.Fatalf("got %d logs, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order[%d] = %q, want %q (empates conservan orden de inserción)", i, got[i].ID, id)
		}
	}
}

func TestLogsForDay_EmptyDayReturnsEmptySlice(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := LogsForDay(nil, day, FilterAllReporters)
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", got)
	}
}

func TestReporters_DistinctSorted(t *testing.T) {
	logs := []Log{
		dayLog("a", "zoe@example.com", time.Now()),
		dayLog("b", "alice@example.com", time.Now()),
		dayLog("c", "zoe@example.com", time.Now()),
	}

	got := Reporters(logs)
	if len(got) != 2 || got[0] != "alice@example.com" || got[1] != "zoe@example.com" {
		t.Fatalf("Reporters = %v", got)
	}
}

func TestNextDay_ClampsAtToday(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	yesterday := today.AddDate(0, 0, -1)
	if got := NextDay(yesterday, today); !SameDay(got, today) {
		t.Fatalf("NextDay(yesterday) = %v, want today", got)
	}

	// Hoy no avanza: la navegación se queda clavada en hoy.
	if got := NextDay(today, today); !got.Equal(today) {
		t.Fatalf("NextDay(today) = %v, want today unchanged", got)
	}
}

func TestPreviousDay_GoesBackOneCalendarDay(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	if got := PreviousDay(day); !got.Equal(want) {
		t.Fatalf("PreviousDay = %v, want %v", got, want)
	}
}

func TestSameDay_ComparesCalendarDayNotInterval(t *testing.T) {
	a := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("same calendar day should match")
	}

	c := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if SameDay(b, c) {
		t.Fatalf("adjacent days within 24h must not match")
	}
}

func TestMatchesSlot_IgnoresSeconds(t *testing.T) {
	target := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	l := dayLog("a", "alice@example.com", time.Date(2026, 8, 29, 8, 0, 42, 0, time.UTC))

	if !MatchesSlot(l, "med-1", target) {
		t.Fatalf("seconds must not affect the match")
	}
	if MatchesSlot(l, "med-2", target) {
		t.Fatalf("different medication must not match")
	}
	if MatchesSlot(l, "med-1", target.Add(time.Minute)) {
		t.Fatalf("different minute must not match")
	}
}
