package services

import (
	"testing"

	"catden/pkg/apperrors"
	"catden/pkg/models"
	"catden/pkg/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatServiceForTest(repo *fakeCatRepo) (CatService, *fakeCache, *fakeHub) {
	cache := newFakeCache()
	hub := &fakeHub{}
	return NewCatService(repo, cache, hub), cache, hub
}

func TestCatList_CachesResult(t *testing.T) {
	repo := &fakeCatRepo{cats: []models.Cat{{ID: "1", Tag: "tabby"}}}
	svc, cache, _ := newCatServiceForTest(repo)

	cats, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Contains(t, cache.sets, "cats:all")

	// second read comes from cache even if the repo changes underneath
	repo.cats = nil
	cats, err = svc.List()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestCatCreate_RequiresID(t *testing.T) {
	repo := &fakeCatRepo{}
	svc, _, hub := newCatServiceForTest(repo)

	err := svc.Create(models.Cat{Tag: "tabby"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, repo.created)
	assert.Empty(t, hub.calls)
}

func TestCatCreate_Conflict(t *testing.T) {
	repo := &fakeCatRepo{createErr: repository.ErrDuplicate}
	svc, _, _ := newCatServiceForTest(repo)

	err := svc.Create(models.Cat{ID: "42"})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCatCreate_InvalidatesAndBroadcasts(t *testing.T) {
	repo := &fakeCatRepo{}
	svc, cache, hub := newCatServiceForTest(repo)

	require.NoError(t, svc.Create(models.Cat{ID: "42", Tag: "tabby"}))

	assert.Contains(t, cache.delPattern, "cats:*")
	require.Len(t, hub.calls, 1)
	assert.Equal(t, "cat_created", hub.calls[0].action)
}

func TestCatReplace_MissingID(t *testing.T) {
	repo := &fakeCatRepo{replaceN: 0}
	svc, _, hub := newCatServiceForTest(repo)

	err := svc.Replace("missing", models.ReplaceCatRequest{Tag: "x"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, hub.calls)
}

func TestCatPatch_EmptyBody(t *testing.T) {
	repo := &fakeCatRepo{}
	svc, _, _ := newCatServiceForTest(repo)

	err := svc.Patch("42", models.PatchCatRequest{})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, repo.patched, "repo must not be touched on an empty patch")
}

func TestCatPatch_SingleField(t *testing.T) {
	repo := &fakeCatRepo{patchN: 1}
	svc, _, hub := newCatServiceForTest(repo)

	tag := "X"
	require.NoError(t, svc.Patch("42", models.PatchCatRequest{Tag: &tag}))

	require.Len(t, repo.patched, 1)
	assert.Equal(t, "X", *repo.patched[0].Tag)
	assert.Nil(t, repo.patched[0].Img)
	require.Len(t, hub.calls, 1)
	assert.Equal(t, "cat_updated", hub.calls[0].action)
}

func TestCatDelete_AbsentStillSucceeds(t *testing.T) {
	repo := &fakeCatRepo{}
	svc, cache, hub := newCatServiceForTest(repo)

	require.NoError(t, svc.Delete("missing"))

	assert.Equal(t, []string{"missing"}, repo.deleted)
	assert.Contains(t, cache.delPattern, "cats:*")
	assert.Contains(t, cache.delPattern, "adopted:*")
	require.Len(t, hub.calls, 1)
	assert.Equal(t, "cat_deleted", hub.calls[0].action)
}
