package catalog

import (
	"fmt"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// IndexOf returns the position of id in projects, or -1.
func IndexOf(projects []models.Project, id string) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Upsert replaces the project with the same id in place, or prepends it when the id is new.
func Upsert(projects []models.Project, project models.Project) []models.Project {
	if i := IndexOf(projects, project.ID); i >= 0 {
		out := clone(projects)
		out[i] = project
		return out
	}
	out := make([]models.Project, 0, len(projects)+1)
	out = append(out, project)
	return append(out, projects...)
}

// Remove drops the project with id; the relative order of the rest is unchanged.
func Remove(projects []models.Project, id string) ([]models.Project, bool) {
	i := IndexOf(projects, id)
	if i < 0 {
		return projects, false
	}
	out := make([]models.Project, 0, len(projects)-1)
	out = append(out, projects[:i]...)
	return append(out, projects[i+1:]...), true
}

// Move removes the element at from and reinserts it at to.
func Move(projects []models.Project, from, to int) ([]models.Project, error) {
	if from < 0 || from >= len(projects) || to < 0 || to >= len(projects) {
		return nil, errs.NewValidationError(errs.ErrInvalidMove, "from")
	}
	out := clone(projects)
	if from == to {
		return out, nil
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]models.Project{moved}, out[to:]...)...)
	return out, nil
}

// Reorder arranges projects to follow ids, which must be a permutation of the current ids.
func Reorder(projects []models.Project, ids []string) ([]models.Project, error) {
	if len(ids) != len(projects) {
		return nil, errs.NewValidationError(errs.ErrInvalidOrder, "ids")
	}
	byID := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, errs.NewConflictError(fmt.Sprintf("Project %q is listed more than once", id))
		}
		seen[id] = struct{}{}
		p, ok := byID[id]
		if !ok {
			return nil, errs.NewValidationError(errs.ErrInvalidOrder, "ids")
		}
		out = append(out, p)
	}
	return out, nil
}

func clone(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}
