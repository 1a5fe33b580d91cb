package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"catden/pkg/models"

	"github.com/lib/pq"
)

// ErrDuplicate marks a unique-constraint violation so the service layer can
// answer with a conflict instead of a bare 500.
var ErrDuplicate = errors.New("duplicate key")

type AuthRepository interface {
	CreateUser(username, email, hashedPassword string) (models.User, error)
	GetUserByUsername(username string) (models.User, string, error)
	CreateSession(token string, userID int, expiresAt time.Time) error
	GetSessionByToken(token string) (models.Session, models.User, error)
	TouchSession(token string, expiresAt time.Time) error
	DeleteSessionByToken(token string) error
	DeleteExpiredSessions() (int64, error)
}

type authRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(username, email, hashedPassword string) (models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3)
		 RETURNING id, username, email, created_at`,
		strings.ToLower(username), strings.ToLower(email), hashedPassword,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if isUniqueViolation(err) {
		return user, ErrDuplicate
	}
	return user, err
}

func (r *authRepository) GetUserByUsername(username string) (models.User, string, error) {
	var user models.User
	var hashedPw string
	err := r.db.QueryRow(
		`SELECT id, username, email, password, created_at FROM users WHERE username = $1`,
		strings.ToLower(username),
	).Scan(&user.ID, &user.Username, &user.Email, &hashedPw, &user.CreatedAt)
	return user, hashedPw, err
}

func (r *authRepository) CreateSession(token string, userID int, expiresAt time.Time) error {
	_, err := r.db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt,
	)
	return err
}

func (r *authRepository) GetSessionByToken(token string) (models.Session, models.User, error) {
	var session models.Session
	var user models.User
	err := r.db.QueryRow(
		`SELECT s.id, s.user_id, s.expires_at, s.created_at, u.username, u.email, u.created_at
		 FROM sessions s JOIN users u ON u.id = s.user_id
		 WHERE s.token = $1`, token,
	).Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
		&user.Username, &user.Email, &user.CreatedAt)
	session.Token = token
	user.ID = session.UserID
	return session, user, err
}

func (r *authRepository) TouchSession(token string, expiresAt time.Time) error {
	_, err := r.db.Exec(
		`UPDATE sessions SET expires_at = $1 WHERE token = $2`,
		expiresAt, token,
	)
	return err
}

func (r *authRepository) DeleteSessionByToken(token string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *authRepository) DeleteExpiredSessions() (int64, error) {
	res, err := r.db.Exec(`DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// unique_violation per the Postgres error code table.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
