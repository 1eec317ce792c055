package site

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header is enough for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDraftParsesListsOnEveryRead(t *testing.T) {
	d := NewDraft()
	d.StackText = "React, TypeScript,  Node.js"
	assert.Equal(t, []string{"React", "TypeScript", "Node.js"}, d.Stack())

	d.StackText += ", Go,"
	assert.Equal(t, []string{"React", "TypeScript", "Node.js", "Go"}, d.Stack())

	d.TagsText = " ,Mobile ,"
	assert.Equal(t, []string{"Mobile"}, d.Tags())
}

func TestDraftBuildRequiresTitle(t *testing.T) {
	d := NewDraft()
	d.Title = "   "
	_, err := d.Build()
	assert.True(t, errors.Is(err, errs.ErrTitleRequired))
}

func TestDraftBuildDefaultsAndValidation(t *testing.T) {
	d := ProjectDraft{Title: " Site "}
	p, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, "Site", p.Title)
	assert.Equal(t, models.ProjectTypeFrontend, p.Type)
	assert.Equal(t, models.DifficultyMedium, p.Difficulty)
	assert.Empty(t, p.ID)
	assert.Empty(t, p.Date)

	d.Type = "Backend"
	_, err = d.Build()
	assert.True(t, errors.Is(err, errs.ErrInvalidProjectType))

	d.Type = "UX Design"
	d.Difficulty = "Impossible"
	_, err = d.Build()
	assert.True(t, errors.Is(err, errs.ErrInvalidDifficulty))
}

func TestDraftFromRoundTrips(t *testing.T) {
	sample := models.SampleProjects()[1]
	p, err := DraftFrom(sample).Build()
	require.NoError(t, err)
	assert.Equal(t, sample.Title, p.Title)
	assert.Equal(t, sample.Stack, p.Stack)
	assert.Equal(t, sample.Tags, p.Tags)
	assert.Equal(t, sample.Type, p.Type)
}

func TestAttachImageOverwritesURL(t *testing.T) {
	d := NewDraft()
	d.ImageURL = "https://example.com/old.png"

	require.NoError(t, d.AttachImage(bytes.NewReader(pngHeader), 1024))
	assert.True(t, strings.HasPrefix(d.ImageURL, "data:image/png;base64,"))
}

func TestAttachImageLimits(t *testing.T) {
	d := NewDraft()
	d.ImageURL = "https://example.com/keep.png"

	err := d.AttachImage(bytes.NewReader(pngHeader), 4)
	assert.True(t, errors.Is(err, errs.ErrImageTooLarge))

	err = d.AttachImage(strings.NewReader("plain text, not an image"), 1024)
	assert.True(t, errors.Is(err, errs.ErrNotAnImage))
	assert.Equal(t, "File is not an image", errs.InlineMessage(err))

	require.NoError(t, d.AttachImage(bytes.NewReader(nil), 1024))
	assert.Equal(t, "https://example.com/keep.png", d.ImageURL)
}
