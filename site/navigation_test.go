package site

import (
	"testing"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	for _, requested := range []Page{PageFrontend, PageUXDesign, PageAbout, PageAdminLogin, "", "bogus"} {
		assert.Equal(t, PageAdmin, ResolvePage(true, requested), "logged in overrides %q", requested)
	}

	assert.Equal(t, PageUXDesign, ResolvePage(false, PageUXDesign))
	assert.Equal(t, PageAbout, ResolvePage(false, PageAbout))
	assert.Equal(t, PageAdminLogin, ResolvePage(false, PageAdminLogin))
	assert.Equal(t, PageFrontend, ResolvePage(false, PageAdmin))
	assert.Equal(t, PageFrontend, ResolvePage(false, ""))
}

func TestPageProjectType(t *testing.T) {
	pt, ok := PageUXDesign.ProjectType()
	assert.True(t, ok)
	assert.Equal(t, models.ProjectTypeUXDesign, pt)

	_, ok = PageAbout.ProjectType()
	assert.False(t, ok)

	assert.Equal(t, "/ux-design", PageUXDesign.Path())
	assert.Equal(t, "/frontend", Page("").Path())
}
