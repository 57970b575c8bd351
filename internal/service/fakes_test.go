package service

import (
	"sort"
	"time"

	"parkgate/internal/db"
	apperrors "parkgate/internal/errors"
)

// fakeReservationRepo is an in-memory ReservationRepository for tests. It
// enforces the same uniqueness rule as the Postgres schema. ListByPlate
// deliberately returns rows in insertion order: decisions must not depend on
// how the store happens to order its results.
type fakeReservationRepo struct {
	reservations []db.Reservation
	nextID       int
	forcedErr    error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{nextID: 1}
}

func (f *fakeReservationRepo) slotTaken(res *db.Reservation, excludeID int) bool {
	for _, r := range f.reservations {
		if r.ID == excludeID {
			continue
		}
		if r.SpotID == res.SpotID &&
			r.Date.Format("2006-01-02") == res.Date.Format("2006-01-02") &&
			r.StartTime == res.StartTime && r.EndTime == res.EndTime {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) Create(res *db.Reservation) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if f.slotTaken(res, 0) {
		return apperrors.SpotTaken(res.SpotID)
	}
	res.ID = f.nextID
	f.nextID++
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationRepo) GetByIDAndOwner(id, userID int) (*db.Reservation, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, r := range f.reservations {
		if r.ID == id && r.UserID == userID {
			res := r
			return &res, nil
		}
	}
	return nil, apperrors.NotFound("reservation not found")
}

func (f *fakeReservationRepo) ListByOwner(userID int, date, spotID string) ([]db.Reservation, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var out []db.Reservation
	for _, r := range f.reservations {
		if r.UserID != userID {
			continue
		}
		if date != "" && r.Date.Format("2006-01-02") != date {
			continue
		}
		if spotID != "" && r.SpotID != spotID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByPlate(plate string) ([]db.Reservation, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var out []db.Reservation
	for _, r := range f.reservations {
		if r.LicensePlate == plate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(res *db.Reservation) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i, r := range f.reservations {
		if r.ID == res.ID && r.UserID == res.UserID {
			if f.slotTaken(res, res.ID) {
				return apperrors.SpotTaken(res.SpotID)
			}
			res.UpdatedAt = time.Now().UTC()
			f.reservations[i] = *res
			return nil
		}
	}
	return apperrors.NotFound("reservation not found")
}

func (f *fakeReservationRepo) Delete(id, userID int) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i, r := range f.reservations {
		if r.ID == id && r.UserID == userID {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("reservation not found")
}

func (f *fakeReservationRepo) ReservedSpots(date time.Time, start, end string) ([]string, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	seen := map[string]bool{}
	var out []string
	for _, r := range f.reservations {
		if r.Date.Format("2006-01-02") == date.Format("2006-01-02") &&
			r.StartTime == start && r.EndTime == end && !seen[r.SpotID] {
			seen[r.SpotID] = true
			out = append(out, r.SpotID)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeUserRepo struct {
	users  map[int]*db.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*db.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByEmail(email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id int) (*db.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserRepo) Create(email, password string) (int, error) {
	for _, u := range f.users {
		if u.Email == email {
			return 0, apperrors.AlreadyExists("email already registered")
		}
	}
	id := f.nextID
	f.nextID++
	f.users[id] = &db.User{ID: id, Email: email, PasswordHash: password, CreatedAt: time.Now().UTC()}
	return id, nil
}

func mustDate(t string) time.Time {
	d, err := time.Parse("2006-01-02", t)
	if err != nil {
		panic(err)
	}
	return d
}
