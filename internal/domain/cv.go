package domain

import (
	"github.com/google/uuid"
)

// Placement values for a section.
const (
	PlacementMain    = "main"
	PlacementSidebar = "sidebar"
)

// Layout types recognised by the placement resolver.
const (
	LayoutTimeline    = "timeline"
	LayoutList        = "list"
	LayoutSkillBars   = "skill_bars"
	LayoutTagCloud    = "tag_cloud"
	LayoutSidebarList = "sidebar_list"
	LayoutGrid        = "grid"
)

// RawCV is the aggregate the repository fetches for one configured CV.
// Scalar fields on the profile and theme may be empty; the slice fields
// are always non-nil (possibly empty) when a CV exists at all.
type RawCV struct {
	Profile     *RawProfile     `json:"profile"`
	Theme       *RawTheme       `json:"theme"`
	AccentColor string          `json:"accent_color,omitempty"`
	Sections    []RawSection    `json:"sections"`
	Skills      []RawSkill      `json:"skills"`
	SocialLinks []RawSocialLink `json:"social_links"`
}

type RawProfile struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	RoleFr     string    `json:"role_fr"`
	RoleEn     string    `json:"role_en"`
	HeadlineFr string    `json:"headline_fr"`
	HeadlineEn string    `json:"headline_en"`
	BioFr      string    `json:"bio_fr"`
	BioEn      string    `json:"bio_en"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Website    string    `json:"website"`
	Location   string    `json:"location"`
	PhotoURL   string    `json:"photo_url"`
}

// RawTheme is the flat palette record as stored. Empty strings mean
// "not set"; the normalizer substitutes defaults key-by-key.
type RawTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Header    string `json:"header"`
	Sidebar   string `json:"sidebar"`
	Surface   string `json:"surface"`
	Text      string `json:"text"`
	Muted     string `json:"muted"`
	Border    string `json:"border"`
	Badge     string `json:"badge"`
}

type RawSection struct {
	ID           uuid.UUID               `json:"id"`
	Type         string                  `json:"type"`
	Placement    string                  `json:"placement"`
	LayoutType   string                  `json:"layout_type"`
	Order        int                     `json:"order"`
	IsActive     bool                    `json:"is_active"`
	Color        string                  `json:"color,omitempty"`
	EntryIDs     []string                `json:"entry_ids,omitempty"`
	EntryType    string                  `json:"entry_type,omitempty"`
	Translations []RawSectionTranslation `json:"translations"`
	Items        []RawItem               `json:"items"`
}

type RawSectionTranslation struct {
	Locale string `json:"locale"`
	Title  string `json:"title"`
}

// RawItem carries its dates as `any` because the source representation
// varies (timestamp, string, convertible object); ToISOString settles them.
type RawItem struct {
	ID           uuid.UUID            `json:"id"`
	SectionID    uuid.UUID            `json:"section_id"`
	Type         string               `json:"type"`
	Order        int                  `json:"order"`
	IsActive     bool                 `json:"is_active"`
	IsCurrent    bool                 `json:"is_current"`
	StartDate    any                  `json:"start_date"`
	EndDate      any                  `json:"end_date"`
	Translations []RawItemTranslation `json:"translations"`
}

type RawItemTranslation struct {
	Locale      string `json:"locale"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
}

type RawSkill struct {
	ID           uuid.UUID             `json:"id"`
	Category     string                `json:"category"`
	Level        int                   `json:"level"`
	ShowAsBar    bool                  `json:"show_as_bar"`
	Order        int                   `json:"order"`
	IsActive     bool                  `json:"is_active"`
	Translations []RawSkillTranslation `json:"translations"`
}

type RawSkillTranslation struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

type RawSocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
	Order    int    `json:"order"`
}
