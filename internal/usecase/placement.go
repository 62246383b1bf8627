package usecase

import "cv-exporter/internal/domain"

// sidebarLayouts maps a section's layout type to the sidebar column.
// Grid sections are the CMS's client/interest tag clouds and render as
// sidebar tag clouds; everything else (timeline, list) goes to main.
var sidebarLayouts = map[string]bool{
	domain.LayoutSkillBars:   true,
	domain.LayoutTagCloud:    true,
	domain.LayoutSidebarList: true,
	domain.LayoutGrid:        true,
}

// BucketSections partitions normalized sections into the sidebar and
// main columns. Order within a bucket preserves the incoming order.
func BucketSections(sections []domain.Section) (sidebar, main []domain.Section) {
	sidebar = []domain.Section{}
	main = []domain.Section{}
	for _, s := range sections {
		if sidebarLayouts[s.LayoutType] {
			s.Placement = domain.PlacementSidebar
			sidebar = append(sidebar, s)
		} else {
			s.Placement = domain.PlacementMain
			main = append(main, s)
		}
	}
	return sidebar, main
}

// ResolveItemsForSection picks the concrete item list for a section out
// of the CV-wide item pool. An explicit entry_ids list wins; matched
// items keep the pool's order, not the order of the id list. Without
// ids, entry_type filters by item type. A section declaring neither
// renders with no items.
func ResolveItemsForSection(section domain.Section, allItems []domain.Item) []domain.Item {
	out := []domain.Item{}
	if len(section.EntryIDs) > 0 {
		wanted := make(map[string]bool, len(section.EntryIDs))
		for _, id := range section.EntryIDs {
			wanted[id] = true
		}
		for _, it := range allItems {
			if wanted[it.ID] {
				out = append(out, it)
			}
		}
		return out
	}
	if section.EntryType != "" {
		for _, it := range allItems {
			if it.Type == section.EntryType {
				out = append(out, it)
			}
		}
		return out
	}
	return out
}
