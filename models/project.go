package models

import "time"

// ProjectType partitions the catalog into the two public views.
type ProjectType string

const (
	ProjectTypeFrontend ProjectType = "Frontend"
	ProjectTypeUXDesign ProjectType = "UX Design"
)

// ProjectTypes lists the partitions in navigation order.
var ProjectTypes = []ProjectType{ProjectTypeFrontend, ProjectTypeUXDesign}

func (t ProjectType) Valid() bool {
	return t == ProjectTypeFrontend || t == ProjectTypeUXDesign
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}

func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// DateLayout is the format of Project.Date.
const DateLayout = "2006-01-02"

// Project represents one showcased work item. The JSON shape is the stored record shape.
type Project struct {
	ID         string      `json:"id" validate:"required"`
	Title      string      `json:"title" validate:"required"`
	Type       ProjectType `json:"type" validate:"required,oneof=Frontend 'UX Design'"`
	ImageURL   string      `json:"imageUrl"`
	Duration   string      `json:"duration"`
	Difficulty Difficulty  `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard Expert"`
	Outcome    string      `json:"outcome"`
	Stack      []string    `json:"stack"`
	Tags       []string    `json:"tags"`
	Date       string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Time parses Date. Records with an unparseable date sort as the zero time.
func (p Project) Time() time.Time {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasTag reports whether the project carries tag exactly.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
