package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"parkgate/internal/db"
	apperrors "parkgate/internal/errors"
)

type UserRepository interface {
	GetByEmail(email string) (*db.User, error)
	GetByID(id int) (*db.User, error)
	Create(email, password string) (int, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

// GetByEmail returns (nil, nil) when no account exists, so the auth service
// can answer invalid-credential attempts without distinguishing the cause.
func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow(`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.StoreFailure(fmt.Errorf("querying user by email: %w", err))
	}
	return &user, nil
}

func (r *userRepository) GetByID(id int) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow(`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.StoreFailure(fmt.Errorf("querying user %d: %w", id, err))
	}
	return &user, nil
}

func (r *userRepository) Create(email, password string) (int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.StoreFailure(fmt.Errorf("hashing password: %w", err))
	}
	var id int
	err = r.db.QueryRow(`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`, email, hashed).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.AlreadyExists("email already registered")
		}
		return 0, apperrors.StoreFailure(fmt.Errorf("inserting user: %w", err))
	}
	return id, nil
}
