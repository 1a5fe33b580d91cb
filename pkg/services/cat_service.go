package services

import (
	"errors"
	"time"

	"catden/pkg/apperrors"
	"catden/pkg/models"
	"catden/pkg/repository"
)

const catCacheTTL = 30 * time.Second

type CatService interface {
	List() ([]models.Cat, error)
	Get(id string) ([]models.Cat, error)
	Create(cat models.Cat) error
	Replace(id string, req models.ReplaceCatRequest) error
	Patch(id string, req models.PatchCatRequest) error
	Delete(id string) error
}

type catService struct {
	repo  repository.CatRepository
	cache Cache
	hub   Broadcaster
}

func NewCatService(repo repository.CatRepository, cache Cache, hub Broadcaster) CatService {
	return &catService{repo: repo, cache: cache, hub: hub}
}

func (s *catService) List() ([]models.Cat, error) {
	var cached []models.Cat
	if s.cache.Get("cats:all", &cached) {
		return cached, nil
	}

	cats, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	s.cache.Set("cats:all", cats, catCacheTTL)
	return cats, nil
}

func (s *catService) Get(id string) ([]models.Cat, error) {
	key := "cats:item:" + id
	var cached []models.Cat
	if s.cache.Get(key, &cached) {
		return cached, nil
	}

	cats, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, cats, catCacheTTL)
	return cats, nil
}

func (s *catService) Create(cat models.Cat) error {
	if cat.ID == "" {
		return apperrors.Validation("cat id is required")
	}

	if err := s.repo.Create(cat); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.Conflict("cat %s already exists", cat.ID)
		}
		return err
	}

	s.invalidate()
	s.hub.Broadcast("cat_created", cat)
	return nil
}

func (s *catService) Replace(id string, req models.ReplaceCatRequest) error {
	rows, err := s.repo.Replace(id, req.Tag, req.Img, req.Description)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("cat %s not found", id)
	}

	s.invalidate()
	s.cache.Del("cats:item:" + id)
	s.hub.Broadcast("cat_updated", catEvent{ID: id})
	return nil
}

func (s *catService) Patch(id string, req models.PatchCatRequest) error {
	if req.Empty() {
		return apperrors.Validation("no fields provided for update")
	}

	rows, err := s.repo.Patch(id, req)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFound("cat %s not found", id)
	}

	s.invalidate()
	s.cache.Del("cats:item:" + id)
	s.hub.Broadcast("cat_updated", catEvent{ID: id})
	return nil
}

// Delete reports success even when the row was already gone; the row being
// absent afterwards is the whole contract.
func (s *catService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate()
	s.cache.Del("cats:item:" + id)
	// adoptions cascade with the cat
	s.cache.DelPattern("adopted:*")
	s.hub.Broadcast("cat_deleted", catEvent{ID: id})
	return nil
}

func (s *catService) invalidate() {
	s.cache.DelPattern("cats:*")
}

type catEvent struct {
	ID string `json:"id"`
}
