package domain

// DocumentModel is the canonical, locale-resolved, fully-defaulted
// structure both renderers consume. It is built fresh per request and
// never mutated after Normalize returns; preview and PDF export read
// the same shape. Text fields are always present (possibly "") so
// renderers never null-check.
type DocumentModel struct {
	Locale      string       `json:"locale"`
	Sample      bool         `json:"sample"`
	Profile     Profile      `json:"profile"`
	Theme       Theme        `json:"theme"`
	Accent      string       `json:"accent"`
	Sidebar     []Section    `json:"sidebar"`
	Main        []Section    `json:"main"`
	SkillBars   []Skill      `json:"skill_bars"`
	SkillTags   []Skill      `json:"skill_tags"`
	SocialLinks []SocialLink `json:"social_links"`
	Labels      Labels       `json:"labels"`
}

// Profile is the locale-selected profile; no FR/EN pairs survive here.
type Profile struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Headline string `json:"headline"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
	PhotoURL string `json:"photo_url"`
}

// Theme always carries all 9 keys resolved.
type Theme struct {
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

type Section struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Placement  string   `json:"placement"`
	LayoutType string   `json:"layout_type"`
	Order      int      `json:"order"`
	Color      string   `json:"color"`
	Title      string   `json:"title"`
	EntryIDs   []string `json:"entry_ids,omitempty"`
	EntryType  string   `json:"entry_type,omitempty"`
	Items      []Item   `json:"items"`
}

type Item struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Order       int     `json:"order"`
	IsCurrent   bool    `json:"is_current"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	DateRange   string  `json:"date_range"`
}

type Skill struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	ShowAsBar bool   `json:"show_as_bar"`
	Order     int    `json:"order"`
	Name      string `json:"name"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
	Order    int    `json:"order"`
}

// Labels are the static UI headings rendered around the document.
type Labels struct {
	Contact   string `json:"contact"`
	Skills    string `json:"skills"`
	Languages string `json:"languages"`
	Follow    string `json:"follow"`
	Present   string `json:"present"`
}
