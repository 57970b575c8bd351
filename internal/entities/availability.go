package entities

type AvailabilityRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // slot name
}

type AvailabilityResponse struct {
	Date           string   `json:"date"`
	Slot           string   `json:"slot"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	ReservedSpots  []string `json:"reserved_spots"`
	AvailableSpots []string `json:"available_spots"`
}
