package usecase

import (
	"sort"
	"strings"

	"cv-exporter/internal/domain"
)

// Normalize converts the raw fetched aggregate (or its absence) into
// one complete DocumentModel for the requested locale. It never
// returns an error: missing or partially-null records degrade to
// defaults field-by-field, because a broken CMS entry must never break
// the public preview or the downloadable PDF.
func Normalize(raw *domain.RawCV, locale string) *domain.DocumentModel {
	locale = NormalizeLocale(locale)

	doc := &domain.DocumentModel{
		Locale:      locale,
		Profile:     DefaultProfile(locale),
		Theme:       DefaultTheme(),
		Sidebar:     []domain.Section{},
		Main:        []domain.Section{},
		SkillBars:   []domain.Skill{},
		SkillTags:   []domain.Skill{},
		SocialLinks: []domain.SocialLink{},
		Labels:      LabelsFor(locale),
	}
	doc.Accent = doc.Theme.Primary

	if raw == nil {
		return doc
	}

	doc.Profile = normalizeProfile(raw.Profile, locale)
	doc.Theme = resolveTheme(raw.Theme)
	doc.Accent = resolveAccent(raw.AccentColor, rawPrimary(raw.Theme), DefaultTheme().Primary)

	sections, allItems := normalizeSections(raw.Sections, locale)
	if len(sections) == 0 {
		sections = DefaultSectionTemplate(locale)
	}
	for i := range sections {
		sections[i].Items = ResolveItemsForSection(sections[i], allItems)
	}
	doc.Sidebar, doc.Main = BucketSections(sections)

	doc.SkillBars, doc.SkillTags = normalizeSkills(raw.Skills, locale)
	doc.SocialLinks = normalizeSocialLinks(raw.SocialLinks)

	return doc
}

// NormalizeLocale collapses anything that is not French to "en".
func NormalizeLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "fr") {
		return "fr"
	}
	return "en"
}

// resolveText applies the locale-fallback rule to one bilingual pair:
// requested language first, the other as fallback, "" when both empty.
func resolveText(locale, fr, en string) string {
	if locale == "fr" {
		if fr != "" {
			return fr
		}
		return en
	}
	if en != "" {
		return en
	}
	return fr
}

// firstNonEmpty is the named fallback policy for colour chains: the
// candidates are evaluated in priority order, first non-empty wins.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// resolveAccent implements the accent priority: explicit override,
// then the theme's primary, then the default primary.
func resolveAccent(override, themePrimary, defaultPrimary string) string {
	return firstNonEmpty(override, themePrimary, defaultPrimary)
}

func rawPrimary(t *domain.RawTheme) string {
	if t == nil {
		return ""
	}
	return t.Primary
}

func normalizeProfile(p *domain.RawProfile, locale string) domain.Profile {
	out := DefaultProfile(locale)
	if p == nil {
		return out
	}
	if p.FullName != "" {
		out.FullName = p.FullName
	}
	if role := resolveText(locale, p.RoleFr, p.RoleEn); role != "" {
		out.Role = role
	}
	if headline := resolveText(locale, p.HeadlineFr, p.HeadlineEn); headline != "" {
		out.Headline = headline
	}
	if bio := resolveText(locale, p.BioFr, p.BioEn); bio != "" {
		out.Bio = bio
	}
	if p.Email != "" {
		out.Email = p.Email
	}
	if p.Phone != "" {
		out.Phone = p.Phone
	}
	if p.Website != "" {
		out.Website = p.Website
	}
	if p.Location != "" {
		out.Location = p.Location
	}
	out.PhotoURL = p.PhotoURL
	return out
}

// resolveTheme substitutes defaults key-by-key, never interpolating
// between palettes.
func resolveTheme(t *domain.RawTheme) domain.Theme {
	def := DefaultTheme()
	if t == nil {
		return def
	}
	return domain.Theme{
		Primary:   firstNonEmpty(t.Primary, def.Primary),
		Secondary: firstNonEmpty(t.Secondary, def.Secondary),
		Header:    firstNonEmpty(t.Header, def.Header),
		Sidebar:   firstNonEmpty(t.Sidebar, def.Sidebar),
		Surface:   firstNonEmpty(t.Surface, def.Surface),
		Text:      firstNonEmpty(t.Text, def.Text),
		Muted:     firstNonEmpty(t.Muted, def.Muted),
		Border:    firstNonEmpty(t.Border, def.Border),
		Badge:     firstNonEmpty(t.Badge, def.Badge),
	}
}

// normalizeSections filters inactive sections, resolves titles for the
// locale and sorts by ascending order (stable, fetch order on ties).
// It also flattens every active item across the CV into the pool the
// placement resolver selects from, in fetch order.
func normalizeSections(sections []domain.RawSection, locale string) ([]domain.Section, []domain.Item) {
	out := []domain.Section{}
	allItems := []domain.Item{}

	for _, rs := range sections {
		if !rs.IsActive {
			continue
		}
		s := domain.Section{
			ID:         rs.ID.String(),
			Type:       rs.Type,
			Placement:  rs.Placement,
			LayoutType: rs.LayoutType,
			Order:      rs.Order,
			Color:      rs.Color,
			Title:      resolveSectionTitle(rs.Translations, locale),
			EntryIDs:   rs.EntryIDs,
			EntryType:  rs.EntryType,
			Items:      []domain.Item{},
		}
		out = append(out, s)
		allItems = append(allItems, normalizeItems(rs, locale)...)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, allItems
}

func resolveSectionTitle(translations []domain.RawSectionTranslation, locale string) string {
	var fr, en string
	for _, tr := range translations {
		switch NormalizeLocale(tr.Locale) {
		case "fr":
			if fr == "" {
				fr = tr.Title
			}
		default:
			if en == "" {
				en = tr.Title
			}
		}
	}
	return resolveText(locale, fr, en)
}

// normalizeItems filters inactive items, coerces both dates and sorts
// by ascending order. An item without a type inherits its owning
// section's content category.
func normalizeItems(rs domain.RawSection, locale string) []domain.Item {
	out := []domain.Item{}
	for _, ri := range rs.Items {
		if !ri.IsActive {
			continue
		}
		it := domain.Item{
			ID:        ri.ID.String(),
			Type:      firstNonEmpty(ri.Type, rs.Type),
			Order:     ri.Order,
			IsCurrent: ri.IsCurrent,
			StartDate: domain.ToISOString(ri.StartDate),
			EndDate:   domain.ToISOString(ri.EndDate),
		}
		var frT, enT domain.RawItemTranslation
		var hasFr, hasEn bool
		for _, tr := range ri.Translations {
			switch NormalizeLocale(tr.Locale) {
			case "fr":
				if !hasFr {
					frT, hasFr = tr, true
				}
			default:
				if !hasEn {
					enT, hasEn = tr, true
				}
			}
		}
		it.Title = resolveText(locale, frT.Title, enT.Title)
		it.Subtitle = resolveText(locale, frT.Subtitle, enT.Subtitle)
		it.Location = resolveText(locale, frT.Location, enT.Location)
		it.Description = resolveText(locale, frT.Description, enT.Description)
		it.DateRange = resolveText(locale, frT.DateRange, enT.DateRange)
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// normalizeSkills filters inactive skills, sorts them and splits by
// presentation: bar skills carry a meaningful level, tag skills render
// as plain badges.
func normalizeSkills(skills []domain.RawSkill, locale string) (bars, tags []domain.Skill) {
	bars = []domain.Skill{}
	tags = []domain.Skill{}
	active := []domain.Skill{}
	for _, rs := range skills {
		if !rs.IsActive {
			continue
		}
		var fr, en string
		for _, tr := range rs.Translations {
			switch NormalizeLocale(tr.Locale) {
			case "fr":
				if fr == "" {
					fr = tr.Name
				}
			default:
				if en == "" {
					en = tr.Name
				}
			}
		}
		active = append(active, domain.Skill{
			ID:        rs.ID.String(),
			Category:  rs.Category,
			Level:     rs.Level,
			ShowAsBar: rs.ShowAsBar,
			Order:     rs.Order,
			Name:      resolveText(locale, fr, en),
		})
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Order < active[j].Order })
	for _, s := range active {
		if s.ShowAsBar {
			bars = append(bars, s)
		} else {
			tags = append(tags, s)
		}
	}
	return bars, tags
}

func normalizeSocialLinks(links []domain.RawSocialLink) []domain.SocialLink {
	out := make([]domain.SocialLink, 0, len(links))
	for _, l := range links {
		out = append(out, domain.SocialLink{
			Platform: l.Platform,
			URL:      l.URL,
			Label:    firstNonEmpty(l.Label, linkLabel(l.URL), l.Platform),
			Order:    l.Order,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
