package db

import "time"

type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Reservation struct {
	ID           int
	UserID       int
	Phone        string
	LicensePlate string
	SpotID       string
	Date         time.Time // calendar date, time-of-day ignored
	StartTime    string    // wall-clock string stamped from the slot catalog, e.g. "13:00"
	EndTime      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
