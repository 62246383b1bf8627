package usecase

import (
	"testing"

	"cv-exporter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, typ string) domain.Item {
	return domain.Item{ID: id, Type: typ, Title: id}
}

func TestResolveItemsByExplicitIDsKeepsPoolOrder(t *testing.T) {
	// the pool holds y before x; the requested order is x then y
	pool := []domain.Item{item("y", "experience"), item("x", "experience"), item("z", "experience")}
	sec := domain.Section{EntryIDs: []string{"x", "y"}}

	got := ResolveItemsForSection(sec, pool)
	require.Len(t, got, 2)
	// pool order wins over entry id order
	assert.Equal(t, "y", got[0].ID)
	assert.Equal(t, "x", got[1].ID)
}

func TestResolveItemsByEntryType(t *testing.T) {
	pool := []domain.Item{item("a", "experience"), item("b", "award"), item("c", "experience")}
	sec := domain.Section{EntryType: "experience"}

	got := ResolveItemsForSection(sec, pool)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestResolveItemsEntryIDsWinOverEntryType(t *testing.T) {
	pool := []domain.Item{item("a", "experience"), item("b", "award")}
	sec := domain.Section{EntryIDs: []string{"b"}, EntryType: "experience"}

	got := ResolveItemsForSection(sec, pool)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestResolveItemsWithoutSelectorsIsEmptyNotError(t *testing.T) {
	pool := []domain.Item{item("a", "experience")}
	got := ResolveItemsForSection(domain.Section{}, pool)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBucketSectionsByLayout(t *testing.T) {
	sections := []domain.Section{
		{ID: "1", LayoutType: domain.LayoutTimeline},
		{ID: "2", LayoutType: domain.LayoutSkillBars},
		{ID: "3", LayoutType: domain.LayoutList},
		{ID: "4", LayoutType: domain.LayoutTagCloud},
		{ID: "5", LayoutType: domain.LayoutSidebarList},
		{ID: "6", LayoutType: domain.LayoutGrid},
	}

	sidebar, main := BucketSections(sections)

	mainIDs := []string{}
	for _, s := range main {
		mainIDs = append(mainIDs, s.ID)
		assert.Equal(t, domain.PlacementMain, s.Placement)
	}
	sideIDs := []string{}
	for _, s := range sidebar {
		sideIDs = append(sideIDs, s.ID)
		assert.Equal(t, domain.PlacementSidebar, s.Placement)
	}

	assert.Equal(t, []string{"1", "3"}, mainIDs)
	// grid counts as a sidebar tag cloud
	assert.Equal(t, []string{"2", "4", "5", "6"}, sideIDs)
}

func TestBucketSectionsPreservesOrderWithinBucket(t *testing.T) {
	sections := []domain.Section{
		{ID: "b", Order: 1, LayoutType: domain.LayoutTagCloud},
		{ID: "a", Order: 2, LayoutType: domain.LayoutTimeline},
		{ID: "c", Order: 3, LayoutType: domain.LayoutTagCloud},
	}
	sidebar, _ := BucketSections(sections)
	require.Len(t, sidebar, 2)
	assert.Equal(t, "b", sidebar[0].ID)
	assert.Equal(t, "c", sidebar[1].ID)
}

func TestDefaultSectionTemplateShape(t *testing.T) {
	fr := DefaultSectionTemplate("fr")
	en := DefaultSectionTemplate("en")
	require.Len(t, fr, 6)
	require.Len(t, en, 6)

	assert.Equal(t, "experience", fr[0].Type)
	assert.Equal(t, domain.LayoutTimeline, fr[0].LayoutType)
	assert.Equal(t, "experience", fr[0].EntryType)
	assert.Equal(t, "Expérience", fr[0].Title)
	assert.Equal(t, "Experience", en[0].Title)

	assert.Equal(t, "skills", fr[2].Type)
	assert.Equal(t, domain.LayoutSkillBars, fr[2].LayoutType)
	assert.Equal(t, domain.PlacementSidebar, fr[2].Placement)

	for i, s := range fr {
		assert.Equal(t, i+1, s.Order)
		assert.NotNil(t, s.Items)
	}
}
