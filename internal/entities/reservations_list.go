package entities

type ReservationsList struct {
	Count        int                   `json:"count"`
	Reservations []ReservationResponse `json:"reservations"`
}
