package catalog

import (
	"sort"
	"strings"

	"github.com/rpupo63/portfolio-site/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortDateDesc  SortOrder = "date-desc"
	SortDateAsc   SortOrder = "date-asc"
	SortTitleAsc  SortOrder = "title-asc"
	SortTitleDesc SortOrder = "title-desc"
)

// SortOrders lists the options in the order the sort control shows them.
var SortOrders = []SortOrder{SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc}

// ParseSortOrder falls back to SortDateDesc for anything unknown.
func ParseSortOrder(s string) SortOrder {
	for _, o := range SortOrders {
		if SortOrder(s) == o {
			return o
		}
	}
	return SortDateDesc
}

func (o SortOrder) Label() string {
	switch o {
	case SortDateAsc:
		return "Oldest first"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	default:
		return "Newest first"
	}
}

// Query describes one view of the public portfolio. An empty Type matches both partitions.
type Query struct {
	Type   models.ProjectType
	Search string
	Tags   []string
	Sort   SortOrder
}

// Filter applies, in order: type partition, search term, selected tags (all required), then a
// stable sort. The search term is matched as typed, so whitespace counts. The canonical order of
// projects is never modified.
func Filter(projects []models.Project, q Query) []models.Project {
	search := strings.ToLower(q.Search)

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if !hasAllTags(p, q.Tags) {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, q.Sort)
	return out
}

func matchesSearch(p models.Project, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowered) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}

func hasAllTags(p models.Project, selected []string) bool {
	for _, tag := range selected {
		if !p.HasTag(tag) {
			return false
		}
	}
	return true
}

func sortProjects(projects []models.Project, order SortOrder) {
	switch ParseSortOrder(string(order)) {
	case SortDateAsc:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Time().Before(projects[j].Time())
		})
	case SortTitleAsc, SortTitleDesc:
		// collate.Collator keeps an internal buffer and is not safe for concurrent use
		c := collate.New(language.English)
		desc := order == SortTitleDesc
		sort.SliceStable(projects, func(i, j int) bool {
			cmp := c.CompareString(projects[i].Title, projects[j].Title)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	default:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Time().After(projects[j].Time())
		})
	}
}

// TagFacet returns the sorted, de-duplicated union of tags over the whole catalog.
func TagFacet(projects []models.Project) []string {
	seen := make(map[string]struct{})
	facet := []string{}
	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			facet = append(facet, tag)
		}
	}
	sort.Strings(facet)
	return facet
}

// ToggleTag adds tag to the selection or removes it when already selected.
func ToggleTag(selected []string, tag string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, t := range selected {
		if t == tag {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}
