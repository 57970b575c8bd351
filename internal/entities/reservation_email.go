package entities

type ReservationEmailData struct {
	UserEmail    string
	UserPhone    string
	LicensePlate string
	SpotID       string
	Date         string
	StartTime    string
	EndTime      string
	Status       string
}
