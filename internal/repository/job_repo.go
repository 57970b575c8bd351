package repository

import (
	"database/sql"
	"fmt"
	"time"

	apperrors "parkgate/internal/errors"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// DeleteReservationsBefore removes reservations dated strictly before the
// cutoff calendar date and reports how many were swept.
func (r *JobRepository) DeleteReservationsBefore(cutoff time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE date < $1`, cutoff)
	if err != nil {
		return 0, apperrors.StoreFailure(fmt.Errorf("deleting expired reservations: %w", err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.StoreFailure(fmt.Errorf("deleting expired reservations: %w", err))
	}
	return affected, nil
}
