package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"parkgate/internal/db"
	apperrors "parkgate/internal/errors"
)

type ReservationRepository interface {
	Create(res *db.Reservation) error
	GetByIDAndOwner(id, userID int) (*db.Reservation, error)
	ListByOwner(userID int, date, spotID string) ([]db.Reservation, error)
	ListByPlate(plate string) ([]db.Reservation, error)
	Update(res *db.Reservation) error
	Delete(id, userID int) error
	ReservedSpots(date time.Time, start, end string) ([]string, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(database *sql.DB) ReservationRepository {
	return &reservationRepository{db: database}
}

const reservationColumns = `id, user_id, phone, license_plate, spot_id, date, start_time, end_time, created_at, updated_at`

// start_time is TEXT with single-digit hours ("9:00"), so a plain ORDER BY
// would sort lexically ("10:00" before "9:00"). Order on the parsed minute
// of day instead.
const startMinuteExpr = `(split_part(start_time, ':', 1)::int * 60 + split_part(start_time, ':', 2)::int)`

func scanReservation(row interface{ Scan(...any) error }) (*db.Reservation, error) {
	var res db.Reservation
	err := row.Scan(
		&res.ID, &res.UserID, &res.Phone, &res.LicensePlate, &res.SpotID,
		&res.Date, &res.StartTime, &res.EndTime, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(res *db.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, phone, license_plate, spot_id, date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		res.UserID,
		res.Phone,
		res.LicensePlate,
		res.SpotID,
		res.Date,
		res.StartTime,
		res.EndTime,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.SpotTaken(res.SpotID)
		}
		return apperrors.StoreFailure(fmt.Errorf("inserting reservation: %w", err))
	}
	return nil
}

func (r *reservationRepository) GetByIDAndOwner(id, userID int) (*db.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 AND user_id = $2`
	res, err := scanReservation(r.db.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("reservation not found")
		}
		return nil, apperrors.StoreFailure(fmt.Errorf("querying reservation %d: %w", id, err))
	}
	return res, nil
}

func (r *reservationRepository) ListByOwner(userID int, date, spotID string) ([]db.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1`
	args := []any{userID}
	idx := 2

	if date != "" {
		query += " AND date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if spotID != "" {
		query += " AND spot_id = $" + strconv.Itoa(idx)
		args = append(args, spotID)
		idx++
	}
	query += " ORDER BY date, " + startMinuteExpr + ", id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.StoreFailure(fmt.Errorf("listing reservations: %w", err))
	}
	defer rows.Close()

	return collectReservations(rows)
}

// ListByPlate returns every reservation for a plate, earliest window first.
// The ordering makes the gate matcher's first-match rule deterministic.
func (r *reservationRepository) ListByPlate(plate string) ([]db.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE license_plate = $1 ORDER BY date, ` + startMinuteExpr + `, id`
	rows, err := r.db.Query(query, plate)
	if err != nil {
		return nil, apperrors.StoreFailure(fmt.Errorf("listing reservations by plate: %w", err))
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, apperrors.StoreFailure(fmt.Errorf("scanning reservation: %w", err))
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure(fmt.Errorf("iterating reservations: %w", err))
	}
	return reservations, nil
}

func (r *reservationRepository) Update(res *db.Reservation) error {
	query := `
		UPDATE reservations
		SET phone = $1, license_plate = $2, spot_id = $3, date = $4, start_time = $5, end_time = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING updated_at`
	err := r.db.QueryRow(query,
		res.Phone,
		res.LicensePlate,
		res.SpotID,
		res.Date,
		res.StartTime,
		res.EndTime,
		res.ID,
		res.UserID,
	).Scan(&res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("reservation not found")
		}
		if isUniqueViolation(err) {
			return apperrors.SpotTaken(res.SpotID)
		}
		return apperrors.StoreFailure(fmt.Errorf("updating reservation %d: %w", res.ID, err))
	}
	return nil
}

func (r *reservationRepository) Delete(id, userID int) error {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return apperrors.StoreFailure(fmt.Errorf("deleting reservation %d: %w", id, err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure(fmt.Errorf("deleting reservation %d: %w", id, err))
	}
	if affected == 0 {
		return apperrors.NotFound("reservation not found")
	}
	return nil
}

// ReservedSpots returns the distinct spot ids already booked for the exact
// slot window on the given date. Windows are compared by equality, not
// overlap: bookings are quantized to the catalog slots.
func (r *reservationRepository) ReservedSpots(date time.Time, start, end string) ([]string, error) {
	query := `SELECT DISTINCT spot_id FROM reservations WHERE date = $1 AND start_time = $2 AND end_time = $3 ORDER BY spot_id`
	rows, err := r.db.Query(query, date, start, end)
	if err != nil {
		return nil, apperrors.StoreFailure(fmt.Errorf("querying reserved spots: %w", err))
	}
	defer rows.Close()

	var spots []string
	for rows.Next() {
		var spotID string
		if err := rows.Scan(&spotID); err != nil {
			return nil, apperrors.StoreFailure(fmt.Errorf("scanning spot id: %w", err))
		}
		spots = append(spots, spotID)
	}
	if err = rows.Err(); err != nil {
		return nil, apperrors.StoreFailure(fmt.Errorf("iterating reserved spots: %w", err))
	}
	return spots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
