package repository

import (
	"database/sql"
	"strconv"
	"strings"

	"catden/pkg/models"
)

type CatRepository interface {
	List() ([]models.Cat, error)
	Get(id string) ([]models.Cat, error)
	Create(cat models.Cat) error
	Replace(id, tag, img, description string) (int64, error)
	Patch(id string, req models.PatchCatRequest) (int64, error)
	Delete(id string) error
}

type catRepository struct {
	db *sql.DB
}

func NewCatRepository(db *sql.DB) CatRepository {
	return &catRepository{db: db}
}

func (r *catRepository) List() ([]models.Cat, error) {
	rows, err := r.db.Query(`SELECT id, tag, img, description FROM cat ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCats(rows)
}

// Get keeps the original wire shape: a slice with zero or one element,
// a missing id is not an error.
func (r *catRepository) Get(id string) ([]models.Cat, error) {
	rows, err := r.db.Query(`SELECT id, tag, img, description FROM cat WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCats(rows)
}

func (r *catRepository) Create(cat models.Cat) error {
	_, err := r.db.Exec(
		`INSERT INTO cat (id, tag, img, description) VALUES ($1, $2, $3, $4)`,
		cat.ID, cat.Tag, cat.Img, cat.Description,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *catRepository) Replace(id, tag, img, description string) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE cat SET tag = $1, img = $2, description = $3 WHERE id = $4`,
		tag, img, description, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Patch builds the SET clause from the allow-listed request struct only.
// Column names are fixed literals; client input flows through args alone.
func (r *catRepository) Patch(id string, req models.PatchCatRequest) (int64, error) {
	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Tag != nil {
		sets = append(sets, "tag = $"+strconv.Itoa(argIdx))
		args = append(args, *req.Tag)
		argIdx++
	}
	if req.Img != nil {
		sets = append(sets, "img = $"+strconv.Itoa(argIdx))
		args = append(args, *req.Img)
		argIdx++
	}
	if req.Description != nil {
		sets = append(sets, "description = $"+strconv.Itoa(argIdx))
		args = append(args, *req.Description)
		argIdx++
	}

	query := "UPDATE cat SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(argIdx)
	args = append(args, id)

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *catRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM cat WHERE id = $1`, id)
	return err
}

func scanCats(rows *sql.Rows) ([]models.Cat, error) {
	cats := []models.Cat{}
	for rows.Next() {
		var c models.Cat
		if err := rows.Scan(&c.ID, &c.Tag, &c.Img, &c.Description); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
