package site

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
)

// ProjectDraft is the editable state of the project form. Stack and tags are kept as the raw
// comma-separated text the admin typed.
type ProjectDraft struct {
	Title      string
	Type       string
	ImageURL   string
	Duration   string
	Difficulty string
	Outcome    string
	StackText  string
	TagsText   string
}

// NewDraft is an empty create-mode draft.
func NewDraft() ProjectDraft {
	return ProjectDraft{
		Type:       string(models.ProjectTypeFrontend),
		Difficulty: string(models.DifficultyMedium),
	}
}

// DraftFrom pre-populates an edit-mode draft.
func DraftFrom(p models.Project) ProjectDraft {
	return ProjectDraft{
		Title:      p.Title,
		Type:       string(p.Type),
		ImageURL:   p.ImageURL,
		Duration:   p.Duration,
		Difficulty: string(p.Difficulty),
		Outcome:    p.Outcome,
		StackText:  catalog.JoinList(p.Stack),
		TagsText:   catalog.JoinList(p.Tags),
	}
}

func (d ProjectDraft) Stack() []string {
	return catalog.SplitList(d.StackText)
}

func (d ProjectDraft) Tags() []string {
	return catalog.SplitList(d.TagsText)
}

// AttachImage reads an uploaded image and replaces ImageURL with its data URI.
func (d *ProjectDraft) AttachImage(r io.Reader, maxBytes int64) error {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return errs.NewMalformedPayloadError("image", err)
	}
	if int64(len(data)) > maxBytes {
		return errs.NewValidationError(errs.ErrImageTooLarge, "imageFile")
	}
	if len(data) == 0 {
		return nil
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return errs.NewValidationError(errs.ErrNotAnImage, "imageFile")
	}
	d.ImageURL = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return nil
}

// Build turns the draft into a project without id or date; those are owned by State.
func (d ProjectDraft) Build() (models.Project, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return models.Project{}, errs.NewValidationError(errs.ErrTitleRequired, "title")
	}

	projectType := models.ProjectType(strings.TrimSpace(d.Type))
	if projectType == "" {
		projectType = models.ProjectTypeFrontend
	}
	if !projectType.Valid() {
		return models.Project{}, errs.NewValidationError(errs.ErrInvalidProjectType, "type")
	}

	difficulty := models.Difficulty(strings.TrimSpace(d.Difficulty))
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !difficulty.Valid() {
		return models.Project{}, errs.NewValidationError(errs.ErrInvalidDifficulty, "difficulty")
	}

	return models.Project{
		Title:      title,
		Type:       projectType,
		ImageURL:   strings.TrimSpace(d.ImageURL),
		Duration:   strings.TrimSpace(d.Duration),
		Difficulty: difficulty,
		Outcome:    d.Outcome,
		Stack:      d.Stack(),
		Tags:       d.Tags(),
	}, nil
}
