package database

import (
	"context"

	"github.com/rpupo63/portfolio-site/models"
)

// ProjectsKey holds the serialized project collection.
const ProjectsKey = "portfolio-projects"

type ProjectRepo struct {
	store *Store
}

func NewProjectRepo(store *Store) *ProjectRepo {
	return &ProjectRepo{store}
}

// Load returns the stored catalog, or the built-in samples when nothing valid is stored.
func (r *ProjectRepo) Load(ctx context.Context) []models.Project {
	projects, _ := r.LoadChecked(ctx)
	return projects
}

// LoadChecked is Load that also reports a corrupt value or an unreadable store.
func (r *ProjectRepo) LoadChecked(ctx context.Context) ([]models.Project, error) {
	projects, err := LoadChecked(ctx, r.store, ProjectsKey, models.SampleProjects(), models.ValidateCatalog)
	for i := range projects {
		projects[i] = projects[i].Normalize()
	}
	return projects, err
}

// Save replaces the whole stored catalog.
func (r *ProjectRepo) Save(ctx context.Context, projects []models.Project) error {
	return Save(ctx, r.store, ProjectsKey, projects)
}
