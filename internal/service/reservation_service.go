package service

import (
	"log"
	"time"

	"parkgate/internal/catalog"
	"parkgate/internal/db"
	"parkgate/internal/entities"
	apperrors "parkgate/internal/errors"
	"parkgate/internal/repository"
	"parkgate/internal/utils"
)

const dateLayout = "2006-01-02"

type ReservationService struct {
	Repo   repository.ReservationRepository
	Users  repository.UserRepository
	Sender *SenderService
}

func NewReservationService(repo repository.ReservationRepository, users repository.UserRepository, sender *SenderService) *ReservationService {
	return &ReservationService{Repo: repo, Users: users, Sender: sender}
}

// CheckAvailability resolves the slot and reports which spots are already
// booked for that exact window, plus the complementary free set.
func (s *ReservationService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	if req.Date == "" {
		return nil, apperrors.MissingField("date")
	}
	if req.Time == "" {
		return nil, apperrors.MissingField("time")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.InvalidRequest("invalid date, expected YYYY-MM-DD")
	}
	slot, ok := catalog.Resolve(req.Time)
	if !ok {
		return nil, apperrors.InvalidSlot(req.Time)
	}

	reserved, err := s.Repo.ReservedSpots(date, slot.Start, slot.End)
	if err != nil {
		return nil, err
	}

	reservedSet := make(map[string]bool, len(reserved))
	for _, id := range reserved {
		reservedSet[id] = true
	}
	available := []string{}
	for _, id := range catalog.Spots() {
		if !reservedSet[id] {
			available = append(available, id)
		}
	}
	if reserved == nil {
		reserved = []string{}
	}

	return &entities.AvailabilityResponse{
		Date:           req.Date,
		Slot:           slot.Name,
		StartTime:      slot.Start,
		EndTime:        slot.End,
		ReservedSpots:  reserved,
		AvailableSpots: available,
	}, nil
}

// CreateReservation books a spot for the caller. The slot window is always
// stamped from the catalog; raw start/end values are never accepted.
func (s *ReservationService) CreateReservation(userID int, req entities.CreateReservationRequest) (*entities.ReservationResponse, error) {
	required := []struct {
		field string
		value string
	}{
		{"phone", req.Phone},
		{"license_plate", req.LicensePlate},
		{"date", req.Date},
		{"time", req.Time},
		{"spot_id", req.SpotID},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, apperrors.MissingField(f.field)
		}
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.InvalidRequest("invalid date, expected YYYY-MM-DD")
	}
	slot, ok := catalog.Resolve(req.Time)
	if !ok {
		return nil, apperrors.InvalidSlot(req.Time)
	}

	reservation := &db.Reservation{
		UserID:       userID,
		Phone:        req.Phone,
		LicensePlate: utils.NormalizePlate(req.LicensePlate),
		SpotID:       req.SpotID,
		Date:         date,
		StartTime:    slot.Start,
		EndTime:      slot.End,
	}
	if err := s.Repo.Create(reservation); err != nil {
		return nil, err
	}

	s.notify(userID, reservation, "confirmed")

	resp := entities.NewReservationResponse(reservation)
	return &resp, nil
}

func (s *ReservationService) GetReservation(userID, id int) (*entities.ReservationResponse, error) {
	reservation, err := s.Repo.GetByIDAndOwner(id, userID)
	if err != nil {
		return nil, err
	}
	resp := entities.NewReservationResponse(reservation)
	return &resp, nil
}

func (s *ReservationService) ListReservations(userID int, date, spotID string) (*entities.ReservationsList, error) {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, apperrors.InvalidRequest("invalid date filter, expected YYYY-MM-DD")
		}
	}
	reservations, err := s.Repo.ListByOwner(userID, date, spotID)
	if err != nil {
		return nil, err
	}
	list := &entities.ReservationsList{
		Count:        len(reservations),
		Reservations: []entities.ReservationResponse{},
	}
	for i := range reservations {
		list.Reservations = append(list.Reservations, entities.NewReservationResponse(&reservations[i]))
	}
	return list, nil
}

// UpdateReservation applies a partial field set. A reservation owned by
// someone else fails exactly like a nonexistent one. A new slot name
// overwrites start and end together; partial window edits are impossible.
func (s *ReservationService) UpdateReservation(userID, id int, req entities.UpdateReservationRequest) (*entities.ReservationResponse, error) {
	reservation, err := s.Repo.GetByIDAndOwner(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" {
		reservation.Phone = req.Phone
	}
	if req.LicensePlate != "" {
		reservation.LicensePlate = utils.NormalizePlate(req.LicensePlate)
	}
	if req.SpotID != "" {
		reservation.SpotID = req.SpotID
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, apperrors.InvalidRequest("invalid date, expected YYYY-MM-DD")
		}
		reservation.Date = date
	}
	if req.Time != "" {
		slot, ok := catalog.Resolve(req.Time)
		if !ok {
			return nil, apperrors.InvalidSlot(req.Time)
		}
		reservation.StartTime = slot.Start
		reservation.EndTime = slot.End
	}

	if err := s.Repo.Update(reservation); err != nil {
		return nil, err
	}
	resp := entities.NewReservationResponse(reservation)
	return &resp, nil
}

func (s *ReservationService) DeleteReservation(userID, id int) error {
	reservation, err := s.Repo.GetByIDAndOwner(id, userID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id, userID); err != nil {
		return err
	}
	s.notify(userID, reservation, "cancelled")
	return nil
}

// notify sends confirmation email and SMS in the background. Failures are
// logged only; the booking outcome never depends on delivery.
func (s *ReservationService) notify(userID int, reservation *db.Reservation, status string) {
	if s.Sender == nil {
		return
	}
	user, err := s.Users.GetByID(userID)
	if err != nil {
		log.Printf("Skipping notification for reservation %d: %v", reservation.ID, err)
		return
	}
	data := entities.ReservationEmailData{
		UserEmail:    user.Email,
		UserPhone:    reservation.Phone,
		LicensePlate: reservation.LicensePlate,
		SpotID:       reservation.SpotID,
		Date:         reservation.Date.Format(dateLayout),
		StartTime:    reservation.StartTime,
		EndTime:      reservation.EndTime,
		Status:       status,
	}
	go s.Sender.SendReservationEmail(data)
	go s.Sender.SendReservationSMS(data)
}
