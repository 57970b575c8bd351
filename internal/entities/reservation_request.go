package entities

// CreateReservationRequest books a spot for a catalog slot. Time is the slot
// name ("morning", "afternoon", "evening"); the resolved window is stamped
// onto the reservation server-side.
type CreateReservationRequest struct {
	Phone        string `json:"phone"`
	LicensePlate string `json:"license_plate"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // slot name
	SpotID       string `json:"spot_id"`
}

// UpdateReservationRequest carries a partial field set; empty fields are left
// unchanged. If Time is present the whole slot window is re-stamped.
type UpdateReservationRequest struct {
	Phone        string `json:"phone"`
	LicensePlate string `json:"license_plate"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	SpotID       string `json:"spot_id"`
}
