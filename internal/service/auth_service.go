package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "parkgate/internal/errors"
	"parkgate/internal/repository"
)

type AuthService interface {
	Register(email, password string) error
	Login(email, password string) (string, error)
}

type authService struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Register(email, password string) error {
	if email == "" {
		return apperrors.MissingField("email")
	}
	if password == "" {
		return apperrors.MissingField("password")
	}
	_, err := s.repo.Create(email, password)
	return err
}

func (s *authService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.Unauthorized("invalid credentials")
	}
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", apperrors.StoreFailure(errors.New("JWT_SECRET not set"))
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperrors.StoreFailure(err)
	}
	return signed, nil
}
