package services

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"catden/pkg/apperrors"
	"catden/pkg/models"
	"catden/pkg/repository"

	"golang.org/x/crypto/bcrypt"
)

// SessionTTL is the sliding window: every authenticated read pushes the
// deadline forward by this much.
const SessionTTL = 24 * time.Hour

type AuthService interface {
	Signup(req models.SignupRequest) error
	Login(req models.LoginRequest) (models.User, string, time.Time, error)
	Logout(token string) error
	Authenticate(token string) (models.User, time.Time, error)
}

type authService struct {
	repo repository.AuthRepository
}

func NewAuthService(repo repository.AuthRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Signup(req models.SignupRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.Validation("username, email and password are required")
	}
	if len(req.Username) > 255 || len(req.Email) > 255 {
		return apperrors.Validation("username or email too long")
	}
	if len(req.Password) > 128 {
		return apperrors.Validation("password too long")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.repo.CreateUser(req.Username, req.Email, string(hashed)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.Conflict("username or email already exists")
		}
		return err
	}
	return nil
}

func (s *authService) Login(req models.LoginRequest) (models.User, string, time.Time, error) {
	if req.Username == "" || req.Password == "" {
		return models.User{}, "", time.Time{}, apperrors.Validation("username and password are required")
	}

	user, hashedPw, err := s.repo.GetUserByUsername(strings.TrimSpace(req.Username))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", time.Time{}, apperrors.Unauthorized("invalid username or password")
	}
	if err != nil {
		return models.User{}, "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPw), []byte(req.Password)); err != nil {
		return models.User{}, "", time.Time{}, apperrors.Unauthorized("invalid username or password")
	}

	token := generateSessionToken()
	expiresAt := time.Now().Add(SessionTTL)
	if err := s.repo.CreateSession(token, user.ID, expiresAt); err != nil {
		return models.User{}, "", time.Time{}, err
	}

	return user, token, expiresAt, nil
}

// Logout is idempotent-safe: a missing or unknown token is not an error.
func (s *authService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSessionByToken(token)
}

// Authenticate resolves a session token to its user and slides the expiry.
// Expired sessions are deleted on sight.
func (s *authService) Authenticate(token string) (models.User, time.Time, error) {
	if token == "" {
		return models.User{}, time.Time{}, apperrors.Unauthorized("no active session")
	}

	session, user, err := s.repo.GetSessionByToken(token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, time.Time{}, apperrors.Unauthorized("invalid session")
	}
	if err != nil {
		return models.User{}, time.Time{}, err
	}

	if time.Now().After(session.ExpiresAt) {
		s.repo.DeleteSessionByToken(token)
		return models.User{}, time.Time{}, apperrors.Unauthorized("session expired")
	}

	newExpiry := time.Now().Add(SessionTTL)
	if err := s.repo.TouchSession(token, newExpiry); err != nil {
		return models.User{}, time.Time{}, err
	}

	return user, newExpiry, nil
}

func generateSessionToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
