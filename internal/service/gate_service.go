package service

import (
	"log"
	"sort"
	"time"

	"parkgate/internal/catalog"
	"parkgate/internal/db"
	"parkgate/internal/entities"
	apperrors "parkgate/internal/errors"
	"parkgate/internal/repository"
	"parkgate/internal/utils"
)

// GateService turns a plate detection into an access decision. It reasons
// over the start/end strings stored on each reservation and never consults
// the slot catalog by name.
type GateService struct {
	Repo repository.ReservationRepository
}

func NewGateService(repo repository.ReservationRepository) *GateService {
	return &GateService{Repo: repo}
}

// Authorize decides whether the gate should open for a detection event.
// A reservation is active over the half-open window [start, end): a vehicle
// detected at exactly the end boundary is refused, so a detection at a slot
// changeover can never match two adjacent windows. Candidates are ordered by
// parsed start minute before matching, so the earliest active window wins
// no matter what order the store returns rows in.
func (s *GateService) Authorize(req entities.GateRequest) (*entities.GateDecision, error) {
	if req.DetectedText == "" {
		return nil, apperrors.MissingField("detected_text")
	}
	if req.DetectionDate == "" {
		return nil, apperrors.MissingField("detection_date")
	}
	if req.DetectionTime == "" {
		return nil, apperrors.MissingField("detection_time")
	}

	if _, err := time.Parse(dateLayout, req.DetectionDate); err != nil {
		return nil, apperrors.InvalidRequest("invalid detection_date, expected YYYY-MM-DD")
	}
	detectionMinute, err := catalog.MinuteOfDay(req.DetectionTime)
	if err != nil {
		return nil, apperrors.InvalidRequest("invalid detection_time, expected HH:mm")
	}

	plate := utils.NormalizePlate(req.DetectedText)
	reservations, err := s.Repo.ListByPlate(plate)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return &entities.GateDecision{
			Granted: false,
			Reason:  entities.GateReasonNotFound,
			Message: "plate not found",
		}, nil
	}

	sortByWindowStart(reservations)

	for i := range reservations {
		res := &reservations[i]
		if res.Date.Format(dateLayout) != req.DetectionDate {
			continue
		}
		start, err := catalog.MinuteOfDay(res.StartTime)
		if err != nil {
			log.Printf("Skipping reservation %d with unparseable start time %q", res.ID, res.StartTime)
			continue
		}
		end, err := catalog.MinuteOfDay(res.EndTime)
		if err != nil {
			log.Printf("Skipping reservation %d with unparseable end time %q", res.ID, res.EndTime)
			continue
		}
		if start <= detectionMinute && detectionMinute < end {
			return &entities.GateDecision{
				Granted: true,
				SpotID:  res.SpotID,
				Message: "reservation active, opening gate",
			}, nil
		}
	}

	return &entities.GateDecision{
		Granted: false,
		Reason:  entities.GateReasonNoActiveReservation,
		Message: "plate found, but no reservation is currently active",
	}, nil
}

// sortByWindowStart orders reservations by date, then parsed start minute,
// then id. Start times are stored as text with single-digit hours, so
// lexical order would put "10:00" before "9:00"; unparseable start times
// sort last and are skipped by the matcher anyway.
func sortByWindowStart(reservations []db.Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		di, dj := reservations[i].Date.Format(dateLayout), reservations[j].Date.Format(dateLayout)
		if di != dj {
			return di < dj
		}
		si, sj := windowStartMinute(&reservations[i]), windowStartMinute(&reservations[j])
		if si != sj {
			return si < sj
		}
		return reservations[i].ID < reservations[j].ID
	})
}

func windowStartMinute(res *db.Reservation) int {
	start, err := catalog.MinuteOfDay(res.StartTime)
	if err != nil {
		return 24 * 60
	}
	return start
}
