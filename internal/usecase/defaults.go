package usecase

import "cv-exporter/internal/domain"

// Hard-coded fallbacks. The public document must always look complete,
// so every value here is non-empty.

func DefaultProfile(locale string) domain.Profile {
	p := domain.Profile{
		FullName: "Loïc Ghanem",
		Role:     "Composer & Producer",
		Headline: "Original music for film, games and artists",
		Bio:      "Composer and producer crafting cinematic scores, hybrid electronic textures and bespoke sound identities.",
		Email:    "contact@loicghanem.com",
		Phone:    "+33 6 00 00 00 00",
		Website:  "loicghanem.com",
		Location: "Paris, France",
		PhotoURL: "",
	}
	if locale == "fr" {
		p.Role = "Compositeur & Producteur"
		p.Headline = "Musique originale pour le film, le jeu vidéo et les artistes"
		p.Bio = "Compositeur et producteur, entre partitions cinématographiques, textures électroniques hybrides et identités sonores sur mesure."
	}
	return p
}

func DefaultTheme() domain.Theme {
	return domain.Theme{
		Primary:   "#D5FF0A",
		Secondary: "#1A1A1A",
		Header:    "#0E0E0E",
		Sidebar:   "#161616",
		Surface:   "#FFFFFF",
		Text:      "#111111",
		Muted:     "#6B7280",
		Border:    "#E5E7EB",
		Badge:     "#F3F4F6",
	}
}

// sectionTemplate drives the fixed six-section layout substituted
// when the CMS holds no sections yet.
type sectionTemplate struct {
	typ       string
	layout    string
	placement string
	entryType string
	titleFr   string
	titleEn   string
}

var defaultSections = []sectionTemplate{
	{"experience", domain.LayoutTimeline, domain.PlacementMain, "experience", "Expérience", "Experience"},
	{"awards", domain.LayoutList, domain.PlacementMain, "award", "Distinctions", "Awards"},
	{"skills", domain.LayoutSkillBars, domain.PlacementSidebar, "technical", "Compétences", "Skills"},
	{"clients", domain.LayoutTagCloud, domain.PlacementSidebar, "client", "Clients", "Clients"},
	{"languages", domain.LayoutSidebarList, domain.PlacementSidebar, "language", "Langues", "Languages"},
	{"interests", domain.LayoutTagCloud, domain.PlacementSidebar, "interest", "Centres d'intérêt", "Interests"},
}

// DefaultSectionTemplate returns the six-section structure (experience,
// awards, skills, clients, languages, interests) with fixed layout
// types and entry types, titled for the requested locale.
func DefaultSectionTemplate(locale string) []domain.Section {
	out := make([]domain.Section, 0, len(defaultSections))
	for i, s := range defaultSections {
		title := s.titleEn
		if locale == "fr" {
			title = s.titleFr
		}
		out = append(out, domain.Section{
			ID:         s.typ,
			Type:       s.typ,
			Placement:  s.placement,
			LayoutType: s.layout,
			Order:      i + 1,
			Title:      title,
			EntryType:  s.entryType,
			Items:      []domain.Item{},
		})
	}
	return out
}

// SampleDocument is the populated exemplar substituted on the PDF path
// when no CV has been configured: a downloadable CV must carry
// plausible content, not an empty shell. One experience section, one
// education section, three representative skills.
func SampleDocument(locale string) *domain.DocumentModel {
	theme := DefaultTheme()

	expTitle, eduTitle := "Experience", "Education"
	if locale == "fr" {
		expTitle, eduTitle = "Expérience", "Formation"
	}

	start2019 := "2019-01-01T00:00:00.000Z"
	end2023 := "2023-06-30T00:00:00.000Z"
	start2015 := "2015-09-01T00:00:00.000Z"
	end2018 := "2018-06-30T00:00:00.000Z"

	experience := domain.Section{
		ID: "sample-experience", Type: "experience",
		Placement: domain.PlacementMain, LayoutType: domain.LayoutTimeline,
		Order: 1, Title: expTitle,
		Items: []domain.Item{
			{
				ID: "sample-exp-1", Type: "experience", Order: 1, IsCurrent: true,
				StartDate: &start2019,
				Title:     pick(locale, "Compositeur indépendant", "Freelance Composer"),
				Subtitle:  pick(locale, "Film, jeu vidéo, publicité", "Film, games, advertising"),
				Location:  "Paris",
				Description: pick(locale,
					"Composition et production de musiques originales pour courts-métrages, trailers et artistes.",
					"Composing and producing original music for short films, trailers and recording artists."),
			},
			{
				ID: "sample-exp-2", Type: "experience", Order: 2,
				StartDate: &start2019, EndDate: &end2023,
				Title:    pick(locale, "Producteur en studio", "Studio Producer"),
				Subtitle: "Hybrid Studio",
				Location: "Paris",
				Description: pick(locale,
					"Direction artistique, arrangement et mixage pour des productions indépendantes.",
					"Artistic direction, arrangement and mixing for independent productions."),
			},
		},
	}

	education := domain.Section{
		ID: "sample-education", Type: "education",
		Placement: domain.PlacementMain, LayoutType: domain.LayoutTimeline,
		Order: 2, Title: eduTitle,
		Items: []domain.Item{
			{
				ID: "sample-edu-1", Type: "education", Order: 1,
				StartDate: &start2015, EndDate: &end2018,
				Title:    pick(locale, "Composition & orchestration", "Composition & Orchestration"),
				Subtitle: pick(locale, "Conservatoire", "Conservatory"),
				Location: "Paris",
			},
		},
	}

	skills := []domain.Skill{
		{ID: "sample-skill-1", Category: "technical", Level: 95, ShowAsBar: true, Order: 1,
			Name: pick(locale, "Composition", "Composition")},
		{ID: "sample-skill-2", Category: "software", Level: 90, ShowAsBar: true, Order: 2,
			Name: "Ableton Live"},
		{ID: "sample-skill-3", Category: "technical", Level: 85, ShowAsBar: true, Order: 3,
			Name: pick(locale, "Mixage", "Mixing")},
	}

	return &domain.DocumentModel{
		Locale:      locale,
		Sample:      true,
		Profile:     DefaultProfile(locale),
		Theme:       theme,
		Accent:      theme.Primary,
		Main:        []domain.Section{experience, education},
		Sidebar:     []domain.Section{},
		SkillBars:   skills,
		SkillTags:   []domain.Skill{},
		SocialLinks: []domain.SocialLink{},
		Labels:      LabelsFor(locale),
	}
}

func pick(locale, fr, en string) string {
	if locale == "fr" {
		return fr
	}
	return en
}
