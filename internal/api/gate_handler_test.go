package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parkgate/internal/db"
	"parkgate/internal/entities"
	apperrors "parkgate/internal/errors"
	"parkgate/internal/service"
)

// stubReservationRepo serves a fixed set of rows; only ListByPlate matters to
// the gate path.
type stubReservationRepo struct {
	reservations []db.Reservation
}

func (s *stubReservationRepo) Create(*db.Reservation) error { return nil }
func (s *stubReservationRepo) GetByIDAndOwner(int, int) (*db.Reservation, error) {
	return nil, apperrors.NotFound("reservation not found")
}
func (s *stubReservationRepo) ListByOwner(int, string, string) ([]db.Reservation, error) {
	return nil, nil
}
func (s *stubReservationRepo) ListByPlate(plate string) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, r := range s.reservations {
		if r.LicensePlate == plate {
			out = append(out, r)
		}
	}
	return out, nil
}
func (s *stubReservationRepo) Update(*db.Reservation) error { return nil }
func (s *stubReservationRepo) Delete(int, int) error        { return nil }
func (s *stubReservationRepo) ReservedSpots(time.Time, string, string) ([]string, error) {
	return nil, nil
}

func newGateTestHandler() *GateHandler {
	date, _ := time.Parse("2006-01-02", "2024-06-01")
	repo := &stubReservationRepo{reservations: []db.Reservation{
		{ID: 1, UserID: 1, LicensePlate: "ABC1234", SpotID: "2", Date: date, StartTime: "13:00", EndTime: "17:00"},
	}}
	return NewGateHandler(service.NewGateService(repo))
}

func postCheckPlate(t *testing.T, h *GateHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/gate/check-plate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CheckPlate(rec, req)
	return rec
}

func TestCheckPlate_Granted(t *testing.T) {
	rec := postCheckPlate(t, newGateTestHandler(),
		`{"detected_text":"ABC1234","detection_date":"2024-06-01","detection_time":"14:30"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var decision entities.GateDecision
	if err := json.NewDecoder(rec.Body).Decode(&decision); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !decision.Granted || decision.SpotID != "2" {
		t.Errorf("decision = %+v, want granted spot 2", decision)
	}
}

func TestCheckPlate_DenialsAre200(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantReason string
	}{
		{
			"unknown plate",
			`{"detected_text":"XYZ0000","detection_date":"2024-06-01","detection_time":"14:30"}`,
			entities.GateReasonNotFound,
		},
		{
			"outside window",
			`{"detected_text":"ABC1234","detection_date":"2024-06-01","detection_time":"17:00"}`,
			entities.GateReasonNoActiveReservation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCheckPlate(t, newGateTestHandler(), tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var decision entities.GateDecision
			if err := json.NewDecoder(rec.Body).Decode(&decision); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if decision.Granted {
				t.Error("Granted = true, want false")
			}
			if decision.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", decision.Reason, tt.wantReason)
			}
		})
	}
}

func TestCheckPlate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing time", `{"detected_text":"ABC1234","detection_date":"2024-06-01"}`},
		{"malformed date", `{"detected_text":"ABC1234","detection_date":"junk","detection_time":"14:30"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postCheckPlate(t, newGateTestHandler(), tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
