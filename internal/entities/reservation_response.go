package entities

import (
	"time"

	"parkgate/internal/db"
)

type ReservationResponse struct {
	ID           int       `json:"id"`
	Phone        string    `json:"phone"`
	LicensePlate string    `json:"license_plate"`
	SpotID       string    `json:"spot_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewReservationResponse(r *db.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		Phone:        r.Phone,
		LicensePlate: r.LicensePlate,
		SpotID:       r.SpotID,
		Date:         r.Date.Format("2006-01-02"),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
