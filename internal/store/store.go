package store

import (
	"time"

	"ourstory/pkg/domain"
)

// Store defines persistence for all site content. Three implementations
// exist: GormStore (Postgres, primary), FileStore (local JSON files,
// offline mode) and MemoryStore (tests).
//
// Get and Update report a missing row via the bool return; Delete reports
// whether a row was removed. List order is creation time descending
// unless noted otherwise.
type Store interface {
	// memories
	ListMemories() ([]domain.Memory, error)
	RecentMemories(limit int) ([]domain.Memory, error) // most recent by Date
	GetMemory(id int64) (domain.Memory, bool, error)
	CreateMemory(m domain.Memory) (domain.Memory, error)
	UpdateMemory(m domain.Memory) (domain.Memory, bool, error)
	DeleteMemory(id int64) (bool, error) // also removes dependent captions

	// gallery
	ListGallery() ([]domain.GalleryItem, error)
	FeaturedGallery(limit int) ([]domain.GalleryItem, error)
	GetGalleryItem(id int64) (domain.GalleryItem, bool, error)
	CreateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, error)
	UpdateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, bool, error)
	DeleteGalleryItem(id int64) (bool, error) // also removes dependent captions

	// quotes
	ListQuotes() ([]domain.Quote, error)
	FeaturedQuotes(limit int) ([]domain.Quote, error)
	GetQuote(id int64) (domain.Quote, bool, error)
	CreateQuote(q domain.Quote) (domain.Quote, error)
	UpdateQuote(q domain.Quote) (domain.Quote, bool, error)
	DeleteQuote(id int64) (bool, error)

	// favorite foods
	ListFoods() ([]domain.Food, error)
	GetFood(id int64) (domain.Food, bool, error)
	CreateFood(f domain.Food) (domain.Food, error)
	UpdateFood(f domain.Food) (domain.Food, bool, error)
	DeleteFood(id int64) (bool, error)

	// favorite songs
	ListSongs() ([]domain.Song, error)
	GetSong(id int64) (domain.Song, bool, error)
	CreateSong(s domain.Song) (domain.Song, error)
	UpdateSong(s domain.Song) (domain.Song, bool, error)
	DeleteSong(id int64) (bool, error)

	// favorite movies
	ListMovies() ([]domain.Movie, error)
	GetMovie(id int64) (domain.Movie, bool, error)
	CreateMovie(m domain.Movie) (domain.Movie, error)
	UpdateMovie(m domain.Movie) (domain.Movie, bool, error)
	DeleteMovie(id int64) (bool, error)

	// memory books
	ListMemoryBooks() ([]domain.MemoryBook, error)
	GetMemoryBook(id int64) (domain.MemoryBook, bool, error)
	CreateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, error)
	UpdateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, bool, error)
	DeleteMemoryBook(id int64) (bool, error)

	// navigation, ordered by Order ascending with insertion-order ties
	ListNavigation() ([]domain.NavigationItem, error)
	GetNavigationItem(id int64) (domain.NavigationItem, bool, error)
	CreateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, error)
	UpdateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, bool, error)
	DeleteNavigationItem(id int64) (bool, error)

	// page content, keyed by page name
	ListPageContent() ([]domain.PageContent, error)
	PageContentByName(pageName string) ([]domain.PageContent, error)
	UpsertPageContent(pc domain.PageContent) (domain.PageContent, error)

	// generated captions
	CaptionsForImage(imageID int64) ([]domain.Caption, error)
	CreateCaption(c domain.Caption) (domain.Caption, error)

	// admin account
	CountAdmins() (int, error)
	GetAdminByEmail(email string) (domain.Admin, bool, error)
	CreateAdmin(a domain.Admin) (domain.Admin, error)
	TouchAdminLastLogin(id int64, at time.Time) error

	// visitor audit log, listed by VisitedAt descending
	ListVisitors() ([]domain.Visitor, error)
	CreateVisitor(v domain.Visitor) (domain.Visitor, error)
}
