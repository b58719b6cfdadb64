package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ourstory/pkg/domain"
)

func TestMemoryStoreMemoryCRUD(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateMemory(domain.Memory{
		Title:   "First date",
		Content: "Coffee that turned into dinner.",
		Date:    time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, ok, err := s.GetMemory(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "First date", got.Title)

	got.Title = "Our first date"
	updated, ok, err := s.UpdateMemory(got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Our first date", updated.Title)

	_, ok, err = s.UpdateMemory(domain.Memory{ID: 99, Title: "x", Content: "y"})
	require.NoError(t, err)
	require.False(t, ok)

	deleted, err := s.DeleteMemory(created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteMemory(created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestMemoryStoreIDsNeverReused(t *testing.T) {
	s := NewMemoryStore()

	a, err := s.CreateQuote(domain.Quote{Text: "a"})
	require.NoError(t, err)
	b, err := s.CreateQuote(domain.Quote{Text: "b"})
	require.NoError(t, err)
	require.Equal(t, a.ID+1, b.ID)

	_, err = s.DeleteQuote(a.ID)
	require.NoError(t, err)

	c, err := s.CreateQuote(domain.Quote{Text: "c"})
	require.NoError(t, err)
	require.Equal(t, b.ID+1, c.ID)
}

func TestMemoryStoreDeleteGalleryItemRemovesCaptions(t *testing.T) {
	s := NewMemoryStore()

	img, err := s.CreateGalleryItem(domain.GalleryItem{ImageURL: "/uploads/a.jpg"})
	require.NoError(t, err)
	other, err := s.CreateGalleryItem(domain.GalleryItem{ImageURL: "/uploads/b.jpg"})
	require.NoError(t, err)

	_, err = s.CreateCaption(domain.Caption{ImageID: &img.ID, Caption: "sunset"})
	require.NoError(t, err)
	_, err = s.CreateCaption(domain.Caption{ImageID: &other.ID, Caption: "sunrise"})
	require.NoError(t, err)

	deleted, err := s.DeleteGalleryItem(img.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	gone, err := s.CaptionsForImage(img.ID)
	require.NoError(t, err)
	require.Empty(t, gone)

	kept, err := s.CaptionsForImage(other.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestMemoryStoreFeaturedFilters(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 3; i++ {
		_, err := s.CreateQuote(domain.Quote{Text: "plain"})
		require.NoError(t, err)
	}
	f1, err := s.CreateQuote(domain.Quote{Text: "featured one", IsFeatured: true})
	require.NoError(t, err)
	f2, err := s.CreateQuote(domain.Quote{Text: "featured two", IsFeatured: true})
	require.NoError(t, err)
	f3, err := s.CreateQuote(domain.Quote{Text: "featured three", IsFeatured: true})
	require.NoError(t, err)

	featured, err := s.FeaturedQuotes(2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	// newest first
	require.Equal(t, f3.ID, featured[0].ID)
	require.Equal(t, f2.ID, featured[1].ID)
	_ = f1
}

func TestMemoryStoreRecentMemoriesOrdersByDate(t *testing.T) {
	s := NewMemoryStore()

	old, err := s.CreateMemory(domain.Memory{
		Title: "old", Content: "c",
		Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	newer, err := s.CreateMemory(domain.Memory{
		Title: "newer", Content: "c",
		Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	mid, err := s.CreateMemory(domain.Memory{
		Title: "mid", Content: "c",
		Date: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	recent, err := s.RecentMemories(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, newer.ID, recent[0].ID)
	require.Equal(t, mid.ID, recent[1].ID)
	_ = old
}

func TestMemoryStoreNavigationOrder(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateNavigationItem(domain.NavigationItem{Title: "Gallery", Path: "/gallery", Order: 2, IsVisible: true})
	require.NoError(t, err)
	_, err = s.CreateNavigationItem(domain.NavigationItem{Title: "Home", Path: "/", Order: 1, IsVisible: true})
	require.NoError(t, err)
	_, err = s.CreateNavigationItem(domain.NavigationItem{Title: "Memories", Path: "/memories", Order: 1, IsVisible: true})
	require.NoError(t, err)

	items, err := s.ListNavigation()
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Home", items[0].Title)
	require.Equal(t, "Memories", items[1].Title) // same order, created later
	require.Equal(t, "Gallery", items[2].Title)
}

func TestMemoryStoreUpsertPageContent(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.UpsertPageContent(domain.PageContent{
		PageName: "home", Title: "Welcome", IsPublished: true,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := s.UpsertPageContent(domain.PageContent{
		PageName: "home", Title: "Welcome back", IsPublished: true,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Welcome back", second.Title)

	all, err := s.ListPageContent()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestMemoryStoreAdminLookupIsCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateAdmin(domain.Admin{Email: "Us@example.com", PasswordHash: "h", Name: "Us"})
	require.NoError(t, err)

	_, ok, err := s.GetAdminByEmail("us@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	n, err := s.CountAdmins()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	mem, err := s.CreateMemory(domain.Memory{
		Title: "Picnic", Content: "By the lake.",
		Date: time.Date(2023, 7, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = s.CreateAdmin(domain.Admin{Email: "us@example.com", PasswordHash: "hash", Name: "Us"})
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	got, ok, err := reopened.GetMemory(mem.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Picnic", got.Title)

	admin, ok, err := reopened.GetAdminByEmail("us@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hash", admin.PasswordHash)

	// ids keep counting after a reload
	next, err := reopened.CreateMemory(domain.Memory{Title: "Next", Content: "c", Date: time.Now()})
	require.NoError(t, err)
	require.Equal(t, mem.ID+1, next.ID)
}

func TestFileStoreVisitorMetaRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	v, err := s.CreateVisitor(domain.Visitor{
		IP: "203.0.113.9", UserAgent: "test", Verified: true,
		Meta: map[string]string{"question": "where did we meet"},
	})
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	visitors, err := reopened.ListVisitors()
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	require.Equal(t, v.IP, visitors[0].IP)
	require.Equal(t, "where did we meet", visitors[0].Meta["question"])
	require.True(t, visitors[0].Verified)
}
