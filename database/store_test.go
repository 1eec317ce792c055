package database

import (
	"context"
	"errors"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend wraps a backend and fails reads or writes on demand.
type failingBackend struct {
	Backend
	failGet bool
	failPut bool
}

func (b *failingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if b.failGet {
		return nil, false, errors.New("read refused")
	}
	return b.Backend.Get(ctx, key)
}

func (b *failingBackend) Put(ctx context.Context, key string, value []byte) error {
	if b.failPut {
		return errors.New("quota exceeded")
	}
	return b.Backend.Put(ctx, key, value)
}

func newMemoryStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	backend, err := NewMemoryBackend()
	require.NoError(t, err)
	return NewStore(backend), backend
}

func TestLoadAbsentReturnsFallbackSilently(t *testing.T) {
	s, _ := newMemoryStore(t)
	got, err := LoadChecked(context.Background(), s, "missing", 42, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s, _ := newMemoryStore(t)

	require.NoError(t, Save(ctx, s, "numbers", []int{3, 1, 2}))
	assert.Equal(t, []int{3, 1, 2}, Load(ctx, s, "numbers", []int{}, nil))
}

func TestLoadCorruptFallsBack(t *testing.T) {
	ctx := context.Background()
	s, backend := newMemoryStore(t)
	require.NoError(t, backend.Put(ctx, "k", []byte("{not json")))

	got, err := LoadChecked(ctx, s, "k", "fallback", nil)
	assert.Equal(t, "fallback", got)
	assert.True(t, errs.IsStorageCorrupt(err))
}

func TestLoadValidationFailureIsCorrupt(t *testing.T) {
	ctx := context.Background()
	s, backend := newMemoryStore(t)
	require.NoError(t, backend.Put(ctx, "k", []byte(`-1`)))

	got, err := LoadChecked(ctx, s, "k", 7, func(n int) error {
		if n < 0 {
			return errors.New("negative")
		}
		return nil
	})
	assert.Equal(t, 7, got)
	assert.True(t, errs.IsStorageCorrupt(err))
}

func TestLoadBackendFailureFallsBack(t *testing.T) {
	mem, err := NewMemoryBackend()
	require.NoError(t, err)
	s := NewStore(&failingBackend{Backend: mem, failGet: true})

	got, err := LoadChecked(context.Background(), s, "k", "fallback", nil)
	assert.Equal(t, "fallback", got)
	assert.True(t, errs.IsStorageUnavailable(err))
}

func TestSaveFailureKeepsPriorValue(t *testing.T) {
	ctx := context.Background()
	mem, err := NewMemoryBackend()
	require.NoError(t, err)
	fb := &failingBackend{Backend: mem}
	s := NewStore(fb)

	require.NoError(t, Save(ctx, s, "k", "first"))
	fb.failPut = true
	err = Save(ctx, s, "k", "second")
	assert.True(t, errs.IsStorageUnavailable(err))
	assert.Equal(t, "first", Load(ctx, s, "k", "", nil))
}

func TestProjectRepoSeedsSamples(t *testing.T) {
	db, err := NewInMemory()
	require.NoError(t, err)

	got := db.ProjectRepo().Load(context.Background())
	assert.Equal(t, models.SampleProjects(), got)
}

func TestProjectRepoRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	s, backend := newMemoryStore(t)
	repo := NewProjectRepo(s)
	require.NoError(t, backend.Put(ctx, ProjectsKey, []byte(
		`[{"id":"1","title":"A","type":"Frontend"},{"id":"1","title":"B","type":"Frontend"}]`)))

	assert.Equal(t, models.SampleProjects(), repo.Load(ctx))
}

func TestProjectRepoRoundTripNormalizesLists(t *testing.T) {
	ctx := context.Background()
	s, backend := newMemoryStore(t)
	repo := NewProjectRepo(s)
	require.NoError(t, backend.Put(ctx, ProjectsKey, []byte(
		`[{"id":"1713200000000","title":"Legacy","type":"UX Design","date":"2024-04-15"}]`)))

	got := repo.Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Legacy", got[0].Title)
	assert.Equal(t, []string{}, got[0].Tags)
	assert.Equal(t, []string{}, got[0].Stack)

	got[0].Title = "Renamed"
	require.NoError(t, repo.Save(ctx, got))
	assert.Equal(t, "Renamed", repo.Load(ctx)[0].Title)
}

func TestCredentialRepo(t *testing.T) {
	ctx := context.Background()
	s, backend := newMemoryStore(t)
	repo := NewCredentialRepo(s)

	assert.Equal(t, "default", repo.Load(ctx, "default"))
	require.NoError(t, repo.Save(ctx, "s3cret"))
	assert.Equal(t, "s3cret", repo.Load(ctx, "default"))

	require.NoError(t, backend.Put(ctx, PasswordKey, []byte(`"   "`)))
	assert.Equal(t, "default", repo.Load(ctx, "default"))
}

func TestReposReportUnreadableStore(t *testing.T) {
	ctx := context.Background()
	mem, err := NewMemoryBackend()
	require.NoError(t, err)
	fb := &failingBackend{Backend: mem}
	s := NewStore(fb)
	require.NoError(t, NewCredentialRepo(s).Save(ctx, "s3cret"))

	fb.failGet = true
	projects, err := NewProjectRepo(s).LoadChecked(ctx)
	assert.True(t, errs.IsStorageUnavailable(err))
	assert.Equal(t, models.SampleProjects(), projects)

	credential, err := NewCredentialRepo(s).LoadChecked(ctx, "")
	assert.True(t, errs.IsStorageUnavailable(err))
	assert.Empty(t, credential)

	fb.failGet = false
	credential, err = NewCredentialRepo(s).LoadChecked(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", credential)
}
