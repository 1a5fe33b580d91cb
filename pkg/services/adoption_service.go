package services

import (
	"errors"
	"fmt"
	"time"

	"catden/pkg/apperrors"
	"catden/pkg/models"
	"catden/pkg/repository"
)

const adoptionCacheTTL = 30 * time.Second

type AdoptionService interface {
	Adopt(userID int, catID string) error
	ListAdopted(userID int) ([]models.AdoptedCat, error)
}

type adoptionService struct {
	repo  repository.AdoptionRepository
	cache Cache
	hub   Broadcaster
}

func NewAdoptionService(repo repository.AdoptionRepository, cache Cache, hub Broadcaster) AdoptionService {
	return &adoptionService{repo: repo, cache: cache, hub: hub}
}

// Adopt inserts unconditionally; a user may adopt the same cat repeatedly.
func (s *adoptionService) Adopt(userID int, catID string) error {
	if catID == "" {
		return apperrors.Validation("catId is required")
	}

	if err := s.repo.Create(userID, catID); err != nil {
		if errors.Is(err, repository.ErrMissingCat) {
			return apperrors.Validation("cat %s does not exist", catID)
		}
		return err
	}

	s.cache.Del(adoptedKey(userID))
	s.hub.Broadcast("cat_adopted", catEvent{ID: catID})
	return nil
}

func (s *adoptionService) ListAdopted(userID int) ([]models.AdoptedCat, error) {
	key := adoptedKey(userID)
	var cached []models.AdoptedCat
	if s.cache.Get(key, &cached) {
		return cached, nil
	}

	adopted, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, adopted, adoptionCacheTTL)
	return adopted, nil
}

func adoptedKey(userID int) string {
	return fmt.Sprintf("adopted:user:%d", userID)
}
