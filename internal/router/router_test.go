package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pills-tracker/internal/adapters/auth/static"
	"pills-tracker/internal/router"
)

const (
	adminID = "admin@example.com"
	userID  = "alice@example.com"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		Roles:        static.NewResolver([]string{adminID}),
	}))
}

func TestHTTP_EndToEnd_MarkAndHistory(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// 1) Admin crea medicamento sin horarios => se generan por defecto
	medID := createMedication(t, ts.URL, adminID, map[string]any{
		"name":      "Ibuprofeno",
		"dosage":    "500mg",
		"frequency": 2,
	})

	// 2) Usuario estándar NO puede ver la página de medicamentos
	{
		st, _ := doReq(t, ts.URL, "GET", "/medications", userID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 list medications as standard, got %d", st)
		}
	}

	// 3) Pero sí ve la agenda, con la toma sin loguear
	{
		st, body := doReq(t, ts.URL, "GET", "/schedule", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 schedule, got %d body=%s", st, string(body))
		}
		var resp struct {
			Periods []struct {
				Period string `json:"period"`
				Doses  []struct {
					MedicationID string `json:"medication_id"`
					Status       string `json:"status"`
				} `json:"doses"`
			} `json:"periods"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Periods) == 0 {
			t.Fatalf("schedule empty, body=%s", string(body))
		}
		if resp.Periods[0].Doses[0].Status != "unlogged" {
			t.Fatalf("expected unlogged before marking, got %q", resp.Periods[0].Doses[0].Status)
		}
	}

	// 4) Usuario marca la toma dos veces => un solo log (idempotente)
	mark := map[string]any{"medication_id": medID, "time_slot": "08:00", "taken": true}
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "POST", "/logs", userID, mark)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark dose, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list logs, got %d", st)
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 1 {
			t.Fatalf("expected 1 log after double mark, got %d body=%s", len(logs), string(body))
		}
	}

	// 5) La agenda ahora muestra taken
	{
		st, body := doReq(t, ts.URL, "GET", "/schedule?period=morning", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 schedule, got %d", st)
		}
		var resp struct {
			Periods []struct {
				Doses []struct {
					Status string `json:"status"`
				} `json:"doses"`
			} `json:"periods"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Periods) != 1 || resp.Periods[0].Doses[0].Status != "taken" {
			t.Fatalf("expected taken in morning, body=%s", string(body))
		}
	}

	// 6) Historial: estándar 403, admin 200 y ve el log del usuario
	{
		st, _ := doReq(t, ts.URL, "GET", "/history", userID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 history as standard, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/history", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history as admin, got %d body=%s", st, string(body))
		}
		var resp struct {
			IsToday bool `json:"is_today"`
			Logs    []struct {
				Reporter string `json:"reporter"`
			} `json:"logs"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.IsToday {
			t.Fatalf("default history day must be today, body=%s", string(body))
		}
		if len(resp.Logs) != 1 || resp.Logs[0].Reporter != userID {
			t.Fatalf("admin must see the user's log, body=%s", string(body))
		}
	}

	// 7) Filtro por reporter sin matches => día vacío, no error
	{
		st, body := doReq(t, ts.URL, "GET", "/history?reporter=nadie@example.com", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Logs []any `json:"logs"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Logs) != 0 {
			t.Fatalf("expected empty logs, body=%s", string(body))
		}
	}

	// 8) Borrar el medicamento arrastra sus logs
	{
		st, body := doReq(t, ts.URL, "DELETE", "/medications/"+medID, adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete medication, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list logs, got %d", st)
		}
		var logs []any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 0 {
			t.Fatalf("expected cascade to purge logs, body=%s", string(body))
		}
	}
}

func TestHTTP_ScheduleRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/schedule", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}
}

func TestHTTP_MarkDose_UnknownMedication(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/logs", userID, map[string]any{
		"medication_id": "nope",
		"time_slot":     "08:00",
		"taken":         true,
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown medication, got %d", st)
	}
}

func TestHTTP_StandardScopedLogs(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	medID := createMedication(t, ts.URL, adminID, map[string]any{
		"name":      "Amoxicilina",
		"dosage":    "250mg",
		"frequency": 1,
	})

	mark := map[string]any{"medication_id": medID, "time_slot": "08:00", "taken": true}
	if st, _ := doReq(t, ts.URL, "POST", "/logs", userID, mark); st != http.StatusOK {
		t.Fatalf("mark as alice failed: %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/logs", "bob@example.com", mark); st != http.StatusOK {
		t.Fatalf("mark as bob failed: %d", st)
	}

	// Cada estándar ve solo lo suyo; admin ve ambos.
	for _, uid := range []string{userID, "bob@example.com"} {
		st, body := doReq(t, ts.URL, "GET", "/logs", uid, nil)
		if st != http.StatusOK {
			t.Fatalf("list logs as %s: %d", uid, st)
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 1 {
			t.Fatalf("%s sees %d logs, want 1", uid, len(logs))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("list logs as admin: %d", st)
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 2 {
			t.Fatalf("admin sees %d logs, want 2", len(logs))
		}
	}

	// Clear-all de alice no toca los logs de bob.
	if st, _ := doReq(t, ts.URL, "DELETE", "/logs", userID, nil); st != http.StatusNoContent {
		t.Fatalf("clear all as alice: %d", st)
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("list logs as admin: %d", st)
		}
		var logs []map[string]any
		_ = json.Unmarshal(body, &logs)
		if len(logs) != 1 || logs[0]["reporter"] != "bob@example.com" {
			t.Fatalf("expected only bob's log to survive, body=%s", string(body))
		}
	}
}

func createMedication(t *testing.T, baseURL, debugUserID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", debugUserID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medication, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create medication: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
