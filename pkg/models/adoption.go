package models

import "time"

type AdoptRequest struct {
	CatID string `json:"catId"`
}

// AdoptedCat is an adoption row joined with the current cat attributes at
// read time. Duplicate adoptions of the same cat are allowed, so the same
// catId may appear more than once per user.
type AdoptedCat struct {
	ID           int       `json:"id"`
	CatID        string    `json:"catId"`
	Tag          string    `json:"tag"`
	Img          string    `json:"img"`
	Description  string    `json:"description"`
	AdoptionDate time.Time `json:"adoptionDate"`
}
