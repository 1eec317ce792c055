package site

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProjectStore persists the whole catalog. LoadChecked returns the samples with a nil error when
// nothing is stored, and the samples with a StorageCorrupt or StorageUnavailable error otherwise.
type ProjectStore interface {
	LoadChecked(ctx context.Context) ([]models.Project, error)
	Save(ctx context.Context, projects []models.Project) error
}

// CredentialStore persists the admin credential.
type CredentialStore interface {
	LoadChecked(ctx context.Context, fallback string) (string, error)
	Save(ctx context.Context, credential string) error
}

// State is the application state shared by every view: the catalog and the admin credential.
// It is only changed through its methods, and every change is written through to the stores.
type State struct {
	mu         sync.RWMutex
	projects   []models.Project
	credential string

	projectStore    ProjectStore
	credentialStore CredentialStore
	logger          zerolog.Logger

	newID func() string
	today func() string
}

// NewState loads the catalog and credential, seeding samples and defaultPassword when nothing valid
// is stored, and writes the loaded values back. An unreadable store is returned as an error and
// nothing is written.
func NewState(ctx context.Context, projectStore ProjectStore, credentialStore CredentialStore, defaultPassword string) (*State, error) {
	s := &State{
		projectStore:    projectStore,
		credentialStore: credentialStore,
		logger:          log.With().Str("component", "state").Logger(),
		newID:           uuid.NewString,
		today:           models.Today,
	}

	projects, err := projectStore.LoadChecked(ctx)
	if errs.IsStorageUnavailable(err) {
		return nil, err
	}
	s.projects = projects

	credential, err := credentialStore.LoadChecked(ctx, "")
	if errs.IsStorageUnavailable(err) {
		return nil, err
	}
	if credential == "" {
		hash, err := HashPassword(defaultPassword)
		if err != nil {
			return nil, err
		}
		credential = hash
	}
	s.credential = credential

	s.persistProjects(ctx, s.projects)
	s.persistCredential(ctx, s.credential)
	return s, nil
}

// Projects returns a copy of the catalog in canonical order.
func (s *State) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *State) Project(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := catalog.IndexOf(s.projects, id); i >= 0 {
		return s.projects[i], true
	}
	return models.Project{}, false
}

// Tags is the facet over the whole catalog.
func (s *State) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.TagFacet(s.projects)
}

// Query runs the public filter pipeline.
func (s *State) Query(q catalog.Query) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Filter(s.projects, q)
}

// CreateProject assigns a fresh id and today's date and prepends the project.
func (s *State) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = s.newID()
	p.Date = s.today()
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return models.Project{}, errs.NewInvalidFieldError("project", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = catalog.Upsert(s.projects, p)
	s.persistProjects(ctx, s.projects)
	return p, nil
}

// UpdateProject replaces the project in place. Its id and date are kept from the stored record.
func (s *State) UpdateProject(ctx context.Context, id string, p models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := catalog.IndexOf(s.projects, id)
	if i < 0 {
		return models.Project{}, errs.NewNotFoundError("project not found")
	}
	p.ID = s.projects[i].ID
	p.Date = s.projects[i].Date
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return models.Project{}, errs.NewInvalidFieldError("project", err.Error())
	}

	s.projects = catalog.Upsert(s.projects, p)
	s.persistProjects(ctx, s.projects)
	return p, nil
}

func (s *State) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, ok := catalog.Remove(s.projects, id)
	if !ok {
		return errs.NewNotFoundError("project not found")
	}
	s.projects = projects
	s.persistProjects(ctx, s.projects)
	return nil
}

// MoveProject makes the project at from land at to; this becomes the canonical order.
func (s *State) MoveProject(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := catalog.Move(s.projects, from, to)
	if err != nil {
		return err
	}
	s.projects = projects
	s.persistProjects(ctx, s.projects)
	return nil
}

// ReorderProjects sets an explicit order given as the full list of ids.
func (s *State) ReorderProjects(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := catalog.Reorder(s.projects, ids)
	if err != nil {
		return err
	}
	s.projects = projects
	s.persistProjects(ctx, s.projects)
	return nil
}

// Authenticate compares password with the credential. A legacy plaintext credential is replaced by
// its hash after the first successful login.
func (s *State) Authenticate(ctx context.Context, password string) error {
	s.mu.RLock()
	credential := s.credential
	s.mu.RUnlock()

	if !VerifyPassword(credential, password) {
		return errs.NewInvalidCredentialsError()
	}
	if !IsHashed(credential) {
		if hash, err := HashPassword(password); err == nil {
			s.mu.Lock()
			if s.credential == credential {
				s.credential = hash
				s.persistCredential(ctx, hash)
			}
			s.mu.Unlock()
		}
	}
	return nil
}

// ChangePassword validates and replaces the credential. On error nothing changes.
func (s *State) ChangePassword(ctx context.Context, newPassword, confirmPassword string) error {
	if err := ValidatePasswordChange(newPassword, confirmPassword); err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = hash
	s.persistCredential(ctx, hash)
	return nil
}

// persist* are best-effort: the store logs failures and the in-memory state keeps the change.
func (s *State) persistProjects(ctx context.Context, projects []models.Project) {
	if err := s.projectStore.Save(ctx, projects); err != nil {
		s.logger.Warn().Err(err).Int("projects", len(projects)).Msg("catalog not persisted")
	}
}

func (s *State) persistCredential(ctx context.Context, credential string) {
	if err := s.credentialStore.Save(ctx, credential); err != nil {
		s.logger.Warn().Err(err).Msg("credential not persisted")
	}
}
