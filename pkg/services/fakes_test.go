package services

import (
	"encoding/json"
	"time"

	"catden/pkg/models"
)

// -------- shared test fakes --------

type fakeCache struct {
	store      map[string][]byte
	sets       []string
	dels       []string
	delPattern []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) Get(key string, dest interface{}) bool {
	_, ok := f.store[key]
	return ok && jsonInto(f.store[key], dest)
}

func (f *fakeCache) Set(key string, value interface{}, ttl time.Duration) {
	f.sets = append(f.sets, key)
	if raw, ok := jsonFrom(value); ok {
		f.store[key] = raw
	}
}

func (f *fakeCache) Del(keys ...string) {
	f.dels = append(f.dels, keys...)
	for _, k := range keys {
		delete(f.store, k)
	}
}

func (f *fakeCache) DelPattern(pattern string) {
	f.delPattern = append(f.delPattern, pattern)
}

type broadcastCall struct {
	action string
	data   interface{}
}

type fakeHub struct {
	calls []broadcastCall
}

func (f *fakeHub) Broadcast(action string, data interface{}) {
	f.calls = append(f.calls, broadcastCall{action: action, data: data})
}

type fakeAuthRepo struct {
	createUserErr  error
	createdUser    models.User
	createdHash    string
	userByName     models.User
	userHash       string
	userErr        error
	session        models.Session
	sessionUser    models.User
	sessionErr     error
	createdToken   string
	createdExpires time.Time
	touchedToken   string
	touchedExpires time.Time
	deletedTokens  []string
}

func (f *fakeAuthRepo) CreateUser(username, email, hashedPassword string) (models.User, error) {
	if f.createUserErr != nil {
		return models.User{}, f.createUserErr
	}
	f.createdHash = hashedPassword
	return f.createdUser, nil
}

func (f *fakeAuthRepo) GetUserByUsername(username string) (models.User, string, error) {
	if f.userErr != nil {
		return models.User{}, "", f.userErr
	}
	return f.userByName, f.userHash, nil
}

func (f *fakeAuthRepo) CreateSession(token string, userID int, expiresAt time.Time) error {
	f.createdToken = token
	f.createdExpires = expiresAt
	return nil
}

func (f *fakeAuthRepo) GetSessionByToken(token string) (models.Session, models.User, error) {
	if f.sessionErr != nil {
		return models.Session{}, models.User{}, f.sessionErr
	}
	return f.session, f.sessionUser, nil
}

func (f *fakeAuthRepo) TouchSession(token string, expiresAt time.Time) error {
	f.touchedToken = token
	f.touchedExpires = expiresAt
	return nil
}

func (f *fakeAuthRepo) DeleteSessionByToken(token string) error {
	f.deletedTokens = append(f.deletedTokens, token)
	return nil
}

func (f *fakeAuthRepo) DeleteExpiredSessions() (int64, error) { return 0, nil }

type fakeCatRepo struct {
	cats       []models.Cat
	listErr    error
	createErr  error
	created    []models.Cat
	replaceN   int64
	replaceErr error
	patchN     int64
	patchErr   error
	patched    []models.PatchCatRequest
	deleted    []string
	deleteErr  error
}

func (f *fakeCatRepo) List() ([]models.Cat, error) {
	return f.cats, f.listErr
}

func (f *fakeCatRepo) Get(id string) ([]models.Cat, error) {
	out := []models.Cat{}
	for _, c := range f.cats {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out, f.listErr
}

func (f *fakeCatRepo) Create(cat models.Cat) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, cat)
	return nil
}

func (f *fakeCatRepo) Replace(id, tag, img, description string) (int64, error) {
	return f.replaceN, f.replaceErr
}

func (f *fakeCatRepo) Patch(id string, req models.PatchCatRequest) (int64, error) {
	if f.patchErr != nil {
		return 0, f.patchErr
	}
	f.patched = append(f.patched, req)
	return f.patchN, nil
}

func (f *fakeCatRepo) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdoptionRepo struct {
	createErr error
	created   [][2]interface{}
	rows      []models.AdoptedCat
	listErr   error
}

func (f *fakeAdoptionRepo) Create(userID int, catID string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, [2]interface{}{userID, catID})
	return nil
}

func (f *fakeAdoptionRepo) ListByUser(userID int) ([]models.AdoptedCat, error) {
	return f.rows, f.listErr
}

// tiny helpers so the fake cache round-trips values like the real one

func jsonFrom(v interface{}) ([]byte, bool) {
	raw, err := json.Marshal(v)
	return raw, err == nil
}

func jsonInto(raw []byte, dest interface{}) bool {
	return json.Unmarshal(raw, dest) == nil
}
