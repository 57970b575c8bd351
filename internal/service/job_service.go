package service

import (
	"log"
	"time"

	"parkgate/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// PurgeExpiredReservations deletes reservations whose date is more than
// retentionDays in the past. Run nightly from the cron scheduler.
func (s *JobService) PurgeExpiredReservations(retentionDays int) error {
	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -retentionDays)
	log.Printf("Cron Job: purging reservations dated before %s", cutoff.Format("2006-01-02"))

	deleted, err := s.Repo.DeleteReservationsBefore(cutoff)
	if err != nil {
		return err
	}
	if deleted == 0 {
		log.Println("Cron Job: no expired reservations to purge.")
		return nil
	}
	log.Printf("Cron Job: purged %d expired reservations.", deleted)
	return nil
}
