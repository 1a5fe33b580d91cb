package repository

import (
	"database/sql"
	"errors"

	"catden/pkg/models"

	"github.com/lib/pq"
)

// ErrMissingCat marks a foreign-key violation on adopted.cat_id.
var ErrMissingCat = errors.New("cat does not exist")

type AdoptionRepository interface {
	Create(userID int, catID string) error
	ListByUser(userID int) ([]models.AdoptedCat, error)
}

type adoptionRepository struct {
	db *sql.DB
}

func NewAdoptionRepository(db *sql.DB) AdoptionRepository {
	return &adoptionRepository{db: db}
}

func (r *adoptionRepository) Create(userID int, catID string) error {
	_, err := r.db.Exec(
		`INSERT INTO adopted (cat_id, user_id) VALUES ($1, $2)`,
		catID, userID,
	)
	if isForeignKeyViolation(err) {
		return ErrMissingCat
	}
	return err
}

// ListByUser joins with cat at read time, so rows reflect the current cat
// attributes rather than a snapshot taken at adoption.
func (r *adoptionRepository) ListByUser(userID int) ([]models.AdoptedCat, error) {
	rows, err := r.db.Query(
		`SELECT a.id, a.cat_id, c.tag, c.img, c.description, a.adoption_date
		 FROM adopted a JOIN cat c ON c.id = a.cat_id
		 WHERE a.user_id = $1
		 ORDER BY a.adoption_date DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adopted := []models.AdoptedCat{}
	for rows.Next() {
		var a models.AdoptedCat
		if err := rows.Scan(&a.ID, &a.CatID, &a.Tag, &a.Img, &a.Description, &a.AdoptionDate); err != nil {
			return nil, err
		}
		adopted = append(adopted, a)
	}
	return adopted, rows.Err()
}

// foreign_key_violation per the Postgres error code table.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
