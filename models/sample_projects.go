package models

// SampleProjects returns the built-in catalog seeded on first run, in canonical order.
func SampleProjects() []Project {
	return []Project{
		{
			ID:         "1",
			Title:      "E-Commerce Dashboard",
			Type:       ProjectTypeFrontend,
			ImageURL:   "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			Duration:   "6 Weeks",
			Difficulty: DifficultyHard,
			Outcome:    "Built a real-time analytics dashboard for an online store.\nCut report generation time from minutes to seconds.",
			Stack:      []string{"React", "TypeScript", "Tailwind CSS", "Chart.js"},
			Tags:       []string{"Dashboard", "Analytics", "E-Commerce"},
			Date:       "2024-03-15",
		},
		{
			ID:         "2",
			Title:      "Mobile Banking App Concept",
			Type:       ProjectTypeUXDesign,
			ImageURL:   "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=800",
			Duration:   "4 Weeks",
			Difficulty: DifficultyMedium,
			Outcome:    "Designed an accessible banking flow validated with five rounds of user testing.",
			Stack:      []string{"Figma", "Maze", "Principle"},
			Tags:       []string{"Mobile", "Fintech", "User Research"},
			Date:       "2024-01-20",
		},
		{
			ID:         "3",
			Title:      "Task Management App",
			Type:       ProjectTypeFrontend,
			ImageURL:   "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800",
			Duration:   "3 Weeks",
			Difficulty: DifficultyMedium,
			Outcome:    "Kanban-style task board with drag and drop and offline support.",
			Stack:      []string{"Vue", "Pinia", "Vite"},
			Tags:       []string{"Productivity", "Drag and Drop"},
			Date:       "2023-11-02",
		},
		{
			ID:         "4",
			Title:      "Healthcare Portal Redesign",
			Type:       ProjectTypeUXDesign,
			ImageURL:   "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800",
			Duration:   "8 Weeks",
			Difficulty: DifficultyExpert,
			Outcome:    "Reworked the patient portal information architecture.\nAppointment booking completion rose by 40%.",
			Stack:      []string{"Figma", "Miro", "Hotjar"},
			Tags:       []string{"Healthcare", "User Research", "Accessibility"},
			Date:       "2023-08-10",
		},
	}
}
