package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of a single record.
func (p Project) Validate() error {
	return validate.Struct(p)
}

// ValidateCatalog checks every record and that ids are unique.
func ValidateCatalog(projects []Project) error {
	seen := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("project %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("project %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Normalize replaces nil lists so records always serialize as arrays.
func (p Project) Normalize() Project {
	if p.Stack == nil {
		p.Stack = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
