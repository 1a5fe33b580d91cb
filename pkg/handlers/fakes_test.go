package handlers

import (
	"time"

	"catden/pkg/apperrors"
	"catden/pkg/models"
)

// -------- test fakes --------

type fakeAuthService struct {
	signupErr error
	loginUser models.User
	loginErr  error
	authUser  models.User
	authErr   error
	loggedOut []string
}

func (f *fakeAuthService) Signup(req models.SignupRequest) error {
	return f.signupErr
}

func (f *fakeAuthService) Login(req models.LoginRequest) (models.User, string, time.Time, error) {
	if f.loginErr != nil {
		return models.User{}, "", time.Time{}, f.loginErr
	}
	return f.loginUser, "sessiontoken", time.Now().Add(24 * time.Hour), nil
}

func (f *fakeAuthService) Logout(token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) Authenticate(token string) (models.User, time.Time, error) {
	if f.authErr != nil {
		return models.User{}, time.Time{}, f.authErr
	}
	return f.authUser, time.Now().Add(24 * time.Hour), nil
}

func deniedAuth() *fakeAuthService {
	return &fakeAuthService{authErr: apperrors.Unauthorized("no active session")}
}

func grantedAuth(user models.User) *fakeAuthService {
	return &fakeAuthService{authUser: user}
}

type fakeCatService struct {
	cats       []models.Cat
	listErr    error
	createErr  error
	created    []models.Cat
	replaceErr error
	patchErr   error
	patched    []models.PatchCatRequest
	deleteErr  error
	deleted    []string
}

func (f *fakeCatService) List() ([]models.Cat, error) { return f.cats, f.listErr }

func (f *fakeCatService) Get(id string) ([]models.Cat, error) {
	out := []models.Cat{}
	for _, c := range f.cats {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out, f.listErr
}

func (f *fakeCatService) Create(cat models.Cat) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, cat)
	return nil
}

func (f *fakeCatService) Replace(id string, req models.ReplaceCatRequest) error {
	return f.replaceErr
}

func (f *fakeCatService) Patch(id string, req models.PatchCatRequest) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	if req.Empty() {
		return apperrors.Validation("no fields provided for update")
	}
	f.patched = append(f.patched, req)
	return nil
}

func (f *fakeCatService) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdoptionService struct {
	adoptErr error
	adopted  []string
	rows     []models.AdoptedCat
	listErr  error
}

func (f *fakeAdoptionService) Adopt(userID int, catID string) error {
	if catID == "" {
		return apperrors.Validation("catId is required")
	}
	if f.adoptErr != nil {
		return f.adoptErr
	}
	f.adopted = append(f.adopted, catID)
	return nil
}

func (f *fakeAdoptionService) ListAdopted(userID int) ([]models.AdoptedCat, error) {
	return f.rows, f.listErr
}
